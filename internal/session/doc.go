// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates user intent against the conversation store
// and the archive backend.
//
// The Controller is a small state machine: each conversation is either Idle
// or AwaitingAnswer. Submit appends the user's question (creating a
// conversation when none is active), captures the history as it stood
// before the question, and hands back an Ask descriptor carrying the target
// conversation ID. Resolve applies the outcome - answer or failure notice -
// to the conversation captured in that descriptor, never to whichever
// conversation happens to be selected when the response arrives. Switching
// or starting conversations while a request is pending therefore can never
// misattribute an answer.
//
// The Controller runs entirely on the Bubble Tea event loop; the only
// concurrency it owns is the fire-and-forget persistence write, which
// operates on a cloned snapshot.
package session
