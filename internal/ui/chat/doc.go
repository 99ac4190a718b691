// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main Bubble Tea model for the Cosmic Archive
// TUI: the conversation transcript, the question input, the conversation
// sidebar, and the deep-search toggle.
//
// The model owns no conversation state itself; it delegates to the session
// controller and re-renders from the store after every mutation. Answers
// are fetched by a tea.Cmd that carries the session.Ask it was started
// with, so a response always lands in the conversation that asked for it
// even if the user has switched conversations in the meantime.
package chat
