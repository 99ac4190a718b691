// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage mirrors the in-memory conversation store to durable local
// storage and restores it at startup.
//
// The layout is deliberately primitive: one named slot
// (~/.cosmic-archive/conversations.json) holding the complete conversation
// list as a single JSON blob. There are no partial updates, no schema
// version field, and no migrations - every save overwrites the whole blob
// atomically, and every load reads the whole blob.
//
// The blob is an advisory cache, not a source of truth beyond process
// restart: a corrupt blob is logged, discarded, and replaced by an empty
// list rather than failing startup.
package storage
