// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rag provides the HTTP client for the archive's question-answering
// backend.
//
// The backend is consumed as an opaque endpoint: POST /rag/ask takes a
// question, the conversation history, and a search-mode flag, and returns an
// answer plus related articles. GET /rag/funfact returns a short fact for
// the welcome view.
//
// The client makes exactly one attempt per call - no retries, no caching,
// and no timeout beyond the transport default. Failure classification is the
// caller's interface: transport failures are ErrTypeNetwork, non-2xx
// responses are ErrTypeAPI carrying the server's message when it sent one.
//
// Example:
//
//	client := rag.NewClient(rag.ClientConfig{BaseURL: "https://archive.example.org"})
//	resp, err := client.Ask(ctx, "What is microgravity?", history, false)
package rag
