// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the cosmic-archive TUI.
//
// # Contents
//
//   - String truncation helpers that are safe for UTF-8 and wide (CJK)
//     characters, backed by go-runewidth
//   - AtomicWriteFile for crash-safe persistence writes
//   - OpenURL for launching article links in the system browser
//   - Small numeric-to-string conversion helpers
//
// All functions are pure or operate only on their arguments; the package
// holds no state.
package util
