// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Cosmic Archive
// TUI. All colors use Lip Gloss AdaptiveColor so the same palette reads well
// on light and dark terminals, and the Theme detects terminal capabilities
// via termenv at startup.
//
// The palette leans into the archive's space-biology identity: deep indigo
// surfaces, a violet accent for the archive's answers, and cyan for the
// user's side of the conversation.
package styles
