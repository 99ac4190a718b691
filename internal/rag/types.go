// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rag provides the HTTP client for the archive's question-answering
// backend.
package rag

import (
	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// HistoryMessage is the wire form of a prior message sent as context.
type HistoryMessage struct {
	ID           string          `json:"id"`
	Sender       string          `json:"sender"`
	Text         string          `json:"text"`
	ShowArticles bool            `json:"showArticles,omitempty"`
	Articles     []model.Article `json:"relatedArticles,omitempty"`
}

// AskRequest is the body of POST /rag/ask. History carries the conversation
// as it stood before the question; the question itself travels in its own
// field, never duplicated into History.
type AskRequest struct {
	Question     string           `json:"question"`
	History      []HistoryMessage `json:"history"`
	IsSearchMode bool             `json:"isSearchMode"`
}

// AskResponse is the body of a successful POST /rag/ask.
type AskResponse struct {
	Answer   string          `json:"answer"`
	Articles []model.Article `json:"relatedArticles"`
}

// FunFactResponse is the body of GET /rag/funfact.
type FunFactResponse struct {
	FunFact string `json:"funFact"`
}

// apiError is the optional error body a failing endpoint may send.
type apiError struct {
	Message string `json:"message"`
}

// HistoryFromMessages converts stored messages to their wire form.
func HistoryFromMessages(messages []model.Message) []HistoryMessage {
	history := make([]HistoryMessage, 0, len(messages))
	for _, msg := range messages {
		history = append(history, HistoryMessage{
			ID:           msg.ID,
			Sender:       msg.Role.String(),
			Text:         msg.Content,
			ShowArticles: msg.ShowArticles,
			Articles:     msg.Articles,
		})
	}
	return history
}
