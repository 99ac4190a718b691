// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates user intent against the conversation store
// and the archive backend.
package session

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/rag"
)

// ErrorNoticeText is the synthetic assistant message shown when a request
// fails without a server-provided explanation.
const ErrorNoticeText = "Sorry, something went wrong while reaching the archive. Please try asking again."

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrEmptyQuestion is returned when the submitted text is blank.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrConversationBusy is returned when the active conversation already
	// has a request in flight. There is no global lock - only the target
	// conversation is guarded.
	ErrConversationBusy = errors.New("a question is already pending for this conversation")
)

// =============================================================================
// ASK DESCRIPTOR
// =============================================================================

// Ask describes one submitted question. ConversationID is bound at
// submission time and is the only routing key for the eventual answer.
type Ask struct {
	ConversationID string
	Question       string
	// History is the conversation as it stood BEFORE the question was
	// appended; the question travels separately.
	History    []model.Message
	SearchMode bool
}

// =============================================================================
// PERSISTER
// =============================================================================

// Persister mirrors the full conversation list to durable storage.
type Persister interface {
	Save(conversations []*model.Conversation) error
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the session state machine. It is not safe for concurrent
// use; all methods run on the event loop.
type Controller struct {
	store   *model.Store
	persist Persister
	logger  *zap.Logger

	// activeID is the conversation being viewed, empty when none.
	activeID string

	// pending tracks conversations in the AwaitingAnswer state.
	pending map[string]bool

	// saves feeds the single persistence writer. Capacity one: a queued
	// snapshot still waiting for the writer is superseded by a newer one.
	saves chan []*model.Conversation
}

// NewController creates a controller over the given store.
func NewController(store *model.Store, persist Persister, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		store:   store,
		persist: persist,
		logger:  logger,
		pending: make(map[string]bool),
	}
	if persist != nil {
		c.saves = make(chan []*model.Conversation, 1)
		go c.saveLoop()
	}
	return c
}

// Store exposes the underlying conversation store for read-only projection.
func (c *Controller) Store() *model.Store {
	return c.store
}

// =============================================================================
// SELECTION
// =============================================================================

// ActiveID returns the selected conversation ID, empty when none.
func (c *Controller) ActiveID() string {
	return c.activeID
}

// Active returns the selected conversation.
func (c *Controller) Active() (*model.Conversation, bool) {
	if c.activeID == "" {
		return nil, false
	}
	return c.store.Get(c.activeID)
}

// Select switches which conversation is displayed. It is valid in any state
// and does not affect requests in flight. An unknown ID leaves the
// selection unchanged and is reported to the caller.
func (c *Controller) Select(id string) (*model.Conversation, error) {
	conv, ok := c.store.Get(id)
	if !ok {
		return nil, model.ErrConversationNotFound
	}
	c.activeID = id
	return conv, nil
}

// NewConversation clears the selection so the next Submit starts a fresh
// conversation. It is valid in any state and never cancels an in-flight
// request; a pending answer still lands in the conversation that asked.
func (c *Controller) NewConversation() {
	c.activeID = ""
}

// =============================================================================
// STATE
// =============================================================================

// Pending reports whether the given conversation is awaiting an answer.
func (c *Controller) Pending(id string) bool {
	return c.pending[id]
}

// ActivePending reports whether the selected conversation is awaiting an
// answer. The input is disabled off this flag.
func (c *Controller) ActivePending() bool {
	return c.activeID != "" && c.pending[c.activeID]
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit appends the user's question and returns the Ask descriptor the
// caller uses to issue the remote request. When no conversation is active a
// new one is created and selected, its title derived from the question.
func (c *Controller) Submit(question string, searchMode bool) (Ask, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Ask{}, ErrEmptyQuestion
	}

	if c.ActivePending() {
		return Ask{}, ErrConversationBusy
	}

	conv, ok := c.Active()
	if !ok {
		conv = c.store.Create()
		c.activeID = conv.ID
	}

	// Capture history before appending: the question travels in its own
	// request field and must not be duplicated into the history.
	history := conv.History()

	if err := c.store.Append(conv.ID, model.NewUserMessage(question)); err != nil {
		// Unreachable for a conversation we just looked up; tolerated
		// defensively per the store contract.
		c.logger.Error("failed to append user message", zap.Error(err))
		return Ask{}, err
	}

	c.pending[conv.ID] = true
	c.persistAsync()

	return Ask{
		ConversationID: conv.ID,
		Question:       question,
		History:        history,
		SearchMode:     searchMode,
	}, nil
}

// =============================================================================
// RESOLVE
// =============================================================================

// Resolve applies the outcome of a request to the conversation captured in
// the Ask descriptor. On failure a synthetic assistant notice is appended:
// the server's own message verbatim for API errors, a generic notice
// otherwise. Exactly one message is appended per resolved request.
func (c *Controller) Resolve(ask Ask, resp *rag.AskResponse, err error) {
	delete(c.pending, ask.ConversationID)

	var msg model.Message
	switch {
	case err == nil:
		msg = model.NewAssistantMessage(resp.Answer, resp.Articles, ask.SearchMode)
	case rag.IsAPIError(err):
		msg = model.NewAssistantMessage(err.Error(), nil, false)
	default:
		c.logger.Warn("ask request failed",
			zap.String("conversation", ask.ConversationID),
			zap.Error(err))
		msg = model.NewAssistantMessage(ErrorNoticeText, nil, false)
	}

	if appendErr := c.store.Append(ask.ConversationID, msg); appendErr != nil {
		// The conversation vanished while the request was in flight.
		// Dropped and logged, never fatal.
		c.logger.Warn("dropping answer for unknown conversation",
			zap.String("conversation", ask.ConversationID),
			zap.Error(appendErr))
		return
	}

	c.persistAsync()
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// persistAsync mirrors the full store to durable storage without blocking
// the event loop. The snapshot is cloned here, on the loop, so the
// background write never races later appends. Persistence failure is logged
// and never surfaces to the user.
//
// All writes go through a single writer goroutine, so the durable blob can
// never regress to an older snapshot when one write is slower than the
// next. Every snapshot mirrors the whole store, so when the writer falls
// behind, a snapshot still in the queue is replaced rather than queued
// behind.
func (c *Controller) persistAsync() {
	if c.persist == nil {
		return
	}

	conversations := c.store.Conversations()
	snapshot := make([]*model.Conversation, len(conversations))
	for i, conv := range conversations {
		snapshot[i] = conv.Clone()
	}

	for {
		select {
		case c.saves <- snapshot:
			return
		default:
			// Drop the superseded snapshot and try again.
			select {
			case <-c.saves:
			default:
			}
		}
	}
}

// saveLoop is the single persistence writer.
func (c *Controller) saveLoop() {
	for snapshot := range c.saves {
		if err := c.persist.Save(snapshot); err != nil {
			c.logger.Warn("failed to persist conversations", zap.Error(err))
		}
	}
}
