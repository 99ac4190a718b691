// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher re-reads the config file when it changes and delivers the fresh
// config on Updates. Editors replace files with rename-over-temp, so the
// parent directory is watched rather than the file itself, and events are
// debounced before the reload.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	dirty   bool
	lastHit time.Time

	updates chan *Config
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     path,
		watcher:  fsw,
		logger:   logger,
		debounce: 250 * time.Millisecond,
		updates:  make(chan *Config, 1),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Updates delivers freshly loaded configs. Invalid or unreadable rewrites
// are logged and skipped; the previous config stays in effect.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Watch starts watching for config file changes.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()
	return nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.dirty = true
				w.lastHit = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			ready := w.dirty && time.Since(w.lastHit) >= w.debounce
			if ready {
				w.dirty = false
			}
			w.mu.Unlock()

			if ready {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous config",
			zap.String("path", w.path),
			zap.Error(err))
		return
	}

	// Keep only the newest config if the consumer is behind.
	select {
	case w.updates <- cfg:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- cfg
	}

	w.logger.Info("config reloaded", zap.String("path", w.path))
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}
