// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// TitleMaxRunes is the number of runes of the first user message used for an
// auto-derived conversation title. Longer messages get an ellipsis marker.
const TitleMaxRunes = 30

// PlaceholderTitle is shown in the sidebar until the first user message
// gives the conversation a real title.
const PlaceholderTitle = "New conversation"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds one chat with the archive: an identity, a derived
// title, and an append-only, chronologically ordered message list.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// NewConversation creates a new conversation with a generated ID and an
// empty message list.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: time.Now(),
		Messages:  make([]Message, 0),
	}
}

// AddMessage appends a message to the conversation. The message list only
// ever grows and is never reordered. The title is derived from the first
// user message.
func (c *Conversation) AddMessage(msg Message) {
	c.Messages = append(c.Messages, msg)
	if c.Title == "" && msg.Role == RoleUser {
		c.Title = DeriveTitle(msg.Content)
	}
}

// GetLastMessage returns the most recent message, or a zero Message and
// false if the conversation is empty.
func (c *Conversation) GetLastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// History returns a copy of the current message list. Callers capture this
// before appending a new question so the remote call sees the history as it
// stood at submission time.
func (c *Conversation) History() []Message {
	history := make([]Message, len(c.Messages))
	copy(history, c.Messages)
	return history
}

// GetTitle returns the conversation title or the placeholder.
func (c *Conversation) GetTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return PlaceholderTitle
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// DeriveTitle builds a conversation title from the first user message:
// the first TitleMaxRunes runes, with an ellipsis marker when truncated.
// Strings at or under the limit pass through unchanged, so the function is
// idempotent on short input.
func DeriveTitle(firstMessageText string) string {
	return util.TruncateRunes(util.CollapseWhitespace(firstMessageText), TitleMaxRunes)
}

// Clone creates a deep copy of the conversation. Persistence snapshots are
// cloned on the event loop so a background write never races an append.
func (c *Conversation) Clone() *Conversation {
	clone := &Conversation{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		Messages:  make([]Message, len(c.Messages)),
	}
	copy(clone.Messages, c.Messages)
	return clone
}

// =============================================================================
// CONVERSATION SUMMARY
// =============================================================================

// Summary holds the lightweight projection the sidebar renders.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// Store is the authoritative list of conversations and the only mutation
// surface. Ordering is most-recently-created first. The store is owned by
// whoever constructs it and passed down explicitly; the single-threaded
// Bubble Tea event loop is the only writer, so no locking is needed.
type Store struct {
	order []*Conversation
	byID  map[string]*Conversation
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{
		order: make([]*Conversation, 0),
		byID:  make(map[string]*Conversation),
	}
}

// NewStoreWith creates a store seeded with previously persisted
// conversations, preserving their order.
func NewStoreWith(conversations []*Conversation) *Store {
	s := NewStore()
	for _, conv := range conversations {
		s.order = append(s.order, conv)
		s.byID[conv.ID] = conv
	}
	return s
}

// Create inserts a fresh conversation at the front of the list and returns
// it. Never fails.
func (s *Store) Create() *Conversation {
	conv := NewConversation()
	s.order = append([]*Conversation{conv}, s.order...)
	s.byID[conv.ID] = conv
	return conv
}

// Get looks up a conversation by ID.
func (s *Store) Get(id string) (*Conversation, bool) {
	conv, ok := s.byID[id]
	return conv, ok
}

// Append appends a message to the target conversation. An unknown ID is
// tolerated defensively and reported as ErrConversationNotFound; it should
// never happen under normal single-threaded operation.
func (s *Store) Append(id string, msg Message) error {
	conv, ok := s.byID[id]
	if !ok {
		return ErrConversationNotFound
	}
	conv.AddMessage(msg)
	return nil
}

// Summaries returns the sidebar projection, in store order
// (most-recently-created first).
func (s *Store) Summaries() []Summary {
	summaries := make([]Summary, 0, len(s.order))
	for _, conv := range s.order {
		summaries = append(summaries, Summary{ID: conv.ID, Title: conv.GetTitle()})
	}
	return summaries
}

// Conversations returns the ordered conversation list for persistence.
// The persisted snapshot is always the complete store, never a partial
// update.
func (s *Store) Conversations() []*Conversation {
	convs := make([]*Conversation, len(s.order))
	copy(convs, s.order)
	return convs
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	return len(s.order)
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrConversationNotFound is returned when an operation targets a
// conversation ID that is not in the store.
// Use errors.Is(err, ErrConversationNotFound) to check for this error.
var ErrConversationNotFound = &ConversationError{Message: "conversation not found"}

// ConversationError represents a conversation-related error.
type ConversationError struct {
	Message string
}

// Error implements the error interface.
func (e *ConversationError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing conversation errors.
func (e *ConversationError) Is(target error) bool {
	t, ok := target.(*ConversationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
