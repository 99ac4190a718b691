// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing chat conversations with the space-biology archive.
//
// # Key Types
//
//   - Conversation: Container for one chat with an append-only message list
//   - Message: Single message with role, content, and optional related articles
//   - Article: A knowledge-base article reference (title, summary, link)
//   - Role: Message role enumeration (user, assistant)
//   - Store: The authoritative in-memory conversation list and its only
//     mutation surface
//
// # Usage
//
// Create a store and start a conversation:
//
//	store := model.NewStore()
//	conv := store.Create()
//	store.Append(conv.ID, model.NewUserMessage("What is microgravity?"))
//
// The Store is an injected dependency, never a package-level singleton, so
// each test can instantiate its own.
package model
