// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Cosmic
// Archive TUI: message bubbles, the related-article cards that accompany
// deep-search answers, the conversation sidebar, and the welcome-screen
// fun fact card.
//
// Components are plain structs with a View() method. They hold no update
// logic; the chat model owns all state transitions and hands components
// the data they render.
package components
