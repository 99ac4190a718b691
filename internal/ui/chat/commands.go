// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/config"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/rag"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/session"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// AskCmd creates a command that sends the question to the archive backend.
// The Ask travels with the result so the answer is routed to the
// conversation that submitted it. The request itself carries no timeout;
// retrieval-augmented answers can take a while and the user can keep
// working in other conversations meanwhile.
func AskCmd(client *rag.Client, ask session.Ask) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Ask(context.Background(), ask.Question, ask.History, ask.SearchMode)
		return AnswerMsg{Ask: ask, Resp: resp, Err: err}
	}
}

// FunFactCmd creates a command that fetches the welcome-screen fun fact.
// Capped at a few seconds so a slow backend never delays startup polish.
func FunFactCmd(client *rag.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fact, err := client.FunFact(ctx)
		if err != nil {
			return FunFactMsg{Err: err}
		}
		return FunFactMsg{Fact: fact}
	}
}

// OpenArticleCmd creates a command that opens an article link in the
// system browser.
func OpenArticleCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return OpenedArticleMsg{URL: url, Err: util.OpenURL(url)}
	}
}

// WaitForConfigCmd creates a command that blocks until the config watcher
// publishes a reloaded config. Re-issued after every delivery so reloads
// keep flowing for the lifetime of the program.
func WaitForConfigCmd(updates <-chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// StatusExpiryCmd clears the status message after the given duration.
func StatusExpiryCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusExpiredMsg{}
	})
}
