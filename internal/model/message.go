// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message. There are exactly two variants;
// the archive has no system or tool turns.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Archive"
	default:
		return string(r)
	}
}

// =============================================================================
// ARTICLE TYPE
// =============================================================================

// Article is a reference to a knowledge-base article returned alongside an
// answer. All three fields are required; Link is an absolute external URL
// that is always opened in the system browser, never in-app.
type Article struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Link    string `json:"link"`
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"sender"`
	Timestamp time.Time `json:"timestamp"`

	// Content is plain text for user messages and markdown for assistant
	// messages.
	Content string `json:"text"`

	// ShowArticles is true only for assistant messages produced under
	// search mode with a non-empty article result.
	ShowArticles bool `json:"showArticles,omitempty"`

	// Articles is attached only to assistant messages.
	Articles []Article `json:"relatedArticles,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        generateMessageID(role),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates a new assistant message carrying an answer and
// its related articles. The ShowArticles flag is computed from the search
// mode the request was made under and whether any articles came back.
func NewAssistantMessage(answer string, articles []Article, searchMode bool) Message {
	msg := NewMessage(RoleAssistant, answer)
	msg.Articles = articles
	msg.ShowArticles = searchMode && len(articles) > 0
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Preview returns a one-line truncated preview of the message content.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.CollapseWhitespace(m.Content), maxRunes)
}

// IsEmpty returns true if the message has no content.
func (m Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// messageSeq breaks ties between messages created within the same clock
// tick. The clock alone is not guaranteed to advance between two calls.
var messageSeq atomic.Uint64

// generateMessageID creates a message ID from the role and the current time,
// with a sequence suffix so IDs stay unique even when the clock does not
// advance between calls.
func generateMessageID(role Role) string {
	return string(role) + "_" +
		strconv.FormatInt(time.Now().UnixNano(), 10) + "_" +
		strconv.FormatUint(messageSeq.Add(1), 10)
}
