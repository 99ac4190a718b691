// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/AngelZurita28/cosmic-archive-proto/internal/config"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/rag"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/session"
)

// =============================================================================
// BUBBLE TEA MESSAGES
// =============================================================================

// AnswerMsg delivers the outcome of an archive request. Ask is the request
// as it was submitted, including the conversation it belongs to; the
// response is appended there regardless of the current selection.
type AnswerMsg struct {
	Ask  session.Ask
	Resp *rag.AskResponse
	Err  error
}

// FunFactMsg delivers the welcome-screen fun fact. A fetch failure leaves
// Fact empty and the welcome screen simply omits the card.
type FunFactMsg struct {
	Fact string
	Err  error
}

// ConfigReloadedMsg delivers a freshly reloaded config from the file
// watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// OpenedArticleMsg reports the result of handing an article link to the
// system browser.
type OpenedArticleMsg struct {
	URL string
	Err error
}

// StatusExpiredMsg clears a temporary status-bar message.
type StatusExpiredMsg struct{}
