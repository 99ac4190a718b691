// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/session"
)

// statusDuration is how long transient status-bar messages stay visible.
const statusDuration = 4 * time.Second

// Update handles all incoming Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AnswerMsg:
		return m.handleAnswer(msg)

	case FunFactMsg:
		if msg.Err != nil {
			m.logger.Debug("fun fact fetch failed", zap.Error(msg.Err))
			return m, nil
		}
		m.funFact = msg.Fact
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.client.SetBaseURL(msg.Config.Archive.BaseURL)
		m.statusMsg = "config reloaded"
		m.logger.Info("applied reloaded config",
			zap.String("base_url", msg.Config.Archive.BaseURL))
		return m, tea.Batch(
			WaitForConfigCmd(m.configUpdates),
			StatusExpiryCmd(statusDuration),
		)

	case OpenedArticleMsg:
		if msg.Err != nil {
			m.statusMsg = "could not open browser"
			m.logger.Warn("article open failed", zap.String("url", msg.URL), zap.Error(msg.Err))
		} else {
			m.statusMsg = "opened in browser"
		}
		return m, StatusExpiryCmd(statusDuration)

	case StatusExpiredMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.Resize(msg.Width, msg.Height)

	viewportHeight := m.height - 7
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	m.viewport.Width = m.transcriptWidth()
	m.viewport.Height = viewportHeight
	m.input.Width = m.width - 6
	m.sidebar.SetSize(m.sidebarWidth(), viewportHeight)

	m.renderer = newRenderer(m.transcriptWidth() - 8)
	m.refreshTranscript()
	return m
}

// =============================================================================
// KEYS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keyMap.NewChat):
		m.controller.NewConversation()
		m.state = StateReady
		m.input.Reset()
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keyMap.Sidebar):
		m.sidebarVisible = !m.sidebarVisible
		m.viewport.Width = m.transcriptWidth()
		m.renderer = newRenderer(m.transcriptWidth() - 8)
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keyMap.SearchMode):
		m.searchMode = !m.searchMode
		if m.searchMode {
			m.input.Placeholder = placeholderSearch
		} else {
			m.input.Placeholder = placeholderChat
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PrevConv):
		m.selectAdjacent(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.NextConv):
		m.selectAdjacent(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown),
		key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// While an answer is pending the input box is hidden behind the
	// spinner; swallow typing so nothing pops into the box when the
	// answer lands.
	if m.state == StateAsking {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selectAdjacent moves the selection up or down the sidebar list.
func (m *Model) selectAdjacent(delta int) {
	summaries := m.controller.Store().Summaries()
	if len(summaries) == 0 {
		return
	}

	idx := -1
	for i, s := range summaries {
		if s.ID == m.controller.ActiveID() {
			idx = i
			break
		}
	}

	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(summaries) {
		idx = len(summaries) - 1
	}

	if _, err := m.controller.Select(summaries[idx].ID); err != nil {
		m.logger.Warn("sidebar selection failed", zap.Error(err))
		return
	}
	m.syncState()
	m.refreshTranscript()
	m.viewport.GotoBottom()
}

// =============================================================================
// SUBMIT
// =============================================================================

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		return m.handleSlashCommand(text)
	}

	ask, err := m.controller.Submit(text, m.searchMode)
	switch {
	case errors.Is(err, session.ErrConversationBusy):
		m.statusMsg = "still waiting on the archive, try a new conversation"
		return m, StatusExpiryCmd(statusDuration)
	case err != nil:
		return m, nil
	}

	m.input.Reset()
	m.syncState()
	m.refreshTranscript()
	m.viewport.GotoBottom()

	return m, AskCmd(m.client, ask)
}

// handleSlashCommand dispatches /commands typed into the input.
func (m Model) handleSlashCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/quit", "/q":
		return m, tea.Quit

	case "/new":
		m.controller.NewConversation()
		m.state = StateReady
		m.input.Reset()
		m.refreshTranscript()
		return m, nil

	case "/help":
		m.showHelp = !m.showHelp
		m.input.Reset()
		return m, nil

	case "/search":
		m.searchMode = !m.searchMode
		if m.searchMode {
			m.input.Placeholder = placeholderSearch
		} else {
			m.input.Placeholder = placeholderChat
		}
		m.input.Reset()
		return m, nil

	case "/open":
		m.input.Reset()
		n := 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil || parsed < 1 {
				m.statusMsg = "usage: /open <article number>"
				return m, StatusExpiryCmd(statusDuration)
			}
			n = parsed
		}
		articles := m.latestArticles()
		if n > len(articles) {
			m.statusMsg = "no such article"
			return m, StatusExpiryCmd(statusDuration)
		}
		return m, OpenArticleCmd(articles[n-1].Link)

	default:
		m.statusMsg = "unknown command: " + cmd
		m.input.Reset()
		return m, StatusExpiryCmd(statusDuration)
	}
}

// latestArticles returns the article list of the most recent archive
// message that carries one, or nil.
func (m *Model) latestArticles() []model.Article {
	conv, ok := m.controller.Active()
	if !ok {
		return nil
	}
	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		if msg.Role == model.RoleAssistant && len(msg.Articles) > 0 {
			return msg.Articles
		}
	}
	return nil
}

// =============================================================================
// ANSWERS
// =============================================================================

func (m Model) handleAnswer(msg AnswerMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("archive request failed",
			zap.String("conversation_id", msg.Ask.ConversationID),
			zap.Error(msg.Err))
	}

	m.controller.Resolve(msg.Ask, msg.Resp, msg.Err)
	m.syncState()

	// Only redraw the transcript when the answer landed in the
	// conversation being viewed.
	if m.controller.ActiveID() == msg.Ask.ConversationID {
		m.refreshTranscript()
		m.viewport.GotoBottom()
	}
	return m, nil
}

// syncState aligns the view state with the controller's pending flag for
// the active conversation.
func (m *Model) syncState() {
	if m.controller.ActivePending() {
		m.state = StateAsking
	} else {
		m.state = StateReady
	}
}
