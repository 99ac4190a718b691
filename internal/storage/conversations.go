// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage mirrors the in-memory conversation store to durable local
// storage and restores it at startup.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// SlotFileName is the single persistence slot inside the data directory.
const SlotFileName = "conversations.json"

// =============================================================================
// CONVERSATION STORE ADAPTER
// =============================================================================

// ConversationStore persists the full conversation list as one JSON blob.
// Saves run off the event loop, so concurrent writers are serialized here.
type ConversationStore struct {
	// BaseDir is the data directory, default ~/.cosmic-archive/.
	BaseDir string

	mu     sync.Mutex
	logger *zap.Logger
}

// NewConversationStore creates a store rooted at the user's home directory.
func NewConversationStore(logger *zap.Logger) (*ConversationStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewConversationStoreWithDir(filepath.Join(homeDir, ".cosmic-archive"), logger)
}

// NewConversationStoreWithDir creates a store with a custom data directory.
func NewConversationStoreWithDir(baseDir string, logger *zap.Logger) (*ConversationStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversationStore{BaseDir: baseDir, logger: logger}, nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the persisted conversation list. An absent blob yields an empty
// list. A malformed blob is treated as corrupt: it is logged, the stored
// blob is cleared, and an empty list is returned - startup never fails on
// bad stored state.
func (s *ConversationStore) Load() ([]*model.Conversation, error) {
	path := s.slotPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*model.Conversation{}, nil
		}
		return nil, err
	}

	var conversations []*model.Conversation
	if err := json.Unmarshal(data, &conversations); err != nil {
		s.logger.Warn("conversation blob is corrupt, resetting",
			zap.String("path", path),
			zap.Error(err))
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("failed to clear corrupt blob", zap.Error(rmErr))
		}
		return []*model.Conversation{}, nil
	}

	if conversations == nil {
		conversations = []*model.Conversation{}
	}
	return conversations, nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save serializes the complete conversation list and overwrites the slot.
// Called after every mutation of the conversation list or any message list;
// never called for transient UI state such as which conversation is viewed.
func (s *ConversationStore) Save(conversations []*model.Conversation) error {
	if conversations == nil {
		conversations = []*model.Conversation{}
	}

	data, err := json.MarshalIndent(conversations, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	return util.AtomicWriteFile(s.slotPath(), data, 0644)
}

// slotPath returns the path of the single persistence slot.
func (s *ConversationStore) slotPath() string {
	return filepath.Join(s.BaseDir, SlotFileName)
}
