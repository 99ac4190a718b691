// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/components"
)

const appTitle = "COSMIC ARCHIVE"
const appSubtitle = "El Archivo Biocósmico"

// View renders the complete chat interface.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	body := m.renderBody()
	sections = append(sections, body)

	sections = append(sections, m.renderInput())
	sections = append(sections, m.renderStatusBar())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return view
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render(appTitle)
	subtitle := m.theme.HeaderSubtitle.Render(appSubtitle)
	return m.theme.Header.Width(m.width - 2).Render(title + "  " + subtitle)
}

// =============================================================================
// BODY - sidebar + transcript or welcome screen
// =============================================================================

func (m Model) renderBody() string {
	conv, hasActive := m.controller.Active()
	showWelcome := !hasActive || conv.IsEmpty()

	var transcript string
	if showWelcome {
		transcript = m.renderWelcome()
	} else {
		transcript = m.viewport.View()
	}

	if !m.sidebarVisible {
		return transcript
	}

	m.sidebar.Summaries = m.controller.Store().Summaries()
	m.sidebar.ActiveID = m.controller.ActiveID()
	m.sidebar.Pending = m.pendingByID()

	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), transcript)
}

func (m Model) pendingByID() map[string]bool {
	pending := make(map[string]bool)
	for _, s := range m.controller.Store().Summaries() {
		if m.controller.Pending(s.ID) {
			pending[s.ID] = true
		}
	}
	return pending
}

// =============================================================================
// WELCOME SCREEN
// =============================================================================

func (m Model) renderWelcome() string {
	width := m.transcriptWidth()

	logo := m.theme.WelcomeLogo.Render(appTitle)
	sub := m.theme.HeaderSubtitle.Render(appSubtitle)
	info := m.theme.WelcomeInfo.Render(
		"Ask about space biology: microgravity, radiation,\n" +
			"plants in orbit, and everything the archive holds.")

	parts := []string{logo, sub, "", info}

	// The fun fact yields the space back once the user starts typing.
	if m.funFact != "" && m.input.Value() == "" {
		card := components.NewFunFactCard(m.theme)
		card.Fact = m.funFact
		card.SetWidth(minWidth(width-4, 64))
		parts = append(parts, card.View())
	}

	parts = append(parts, "",
		m.theme.SidebarHint.Render("Enter to ask · C-s deep search · C-h help"))

	box := m.theme.WelcomeBox.Width(width - 4).Render(
		lipgloss.JoinVertical(lipgloss.Center, parts...))

	height := m.viewport.Height
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func minWidth(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshTranscript rebuilds the viewport content from the active
// conversation.
func (m *Model) refreshTranscript() {
	conv, ok := m.controller.Active()
	if !ok {
		m.viewport.SetContent("")
		return
	}

	width := m.transcriptWidth()
	var blocks []string

	for _, msg := range conv.Messages {
		bubble := components.NewMessageBubble(msg, m.theme)
		bubble.SetWidth(width)
		if msg.Role == model.RoleAssistant {
			bubble.RenderedContent = strings.TrimRight(m.renderMarkdown(msg.Content), "\n")
		}
		blocks = append(blocks, bubble.View())

		if msg.ShowArticles {
			cards := components.NewArticleCards(msg.Articles, m.theme)
			cards.SetWidth(width)
			blocks = append(blocks, cards.View())
		}
	}

	if m.controller.Pending(conv.ID) {
		blocks = append(blocks, m.renderThinking())
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m Model) renderThinking() string {
	return m.spinner.View() + " " + m.theme.ThinkingText.Render("consulting the archive...")
}

// =============================================================================
// INPUT
// =============================================================================

func (m Model) renderInput() string {
	if m.state == StateAsking {
		waiting := m.spinner.View() + " " +
			m.theme.ThinkingText.Render("consulting the archive...")
		return m.theme.InputContainer.Width(m.width - 2).Render(waiting)
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	var left string
	if m.searchMode {
		left = m.theme.SearchModeOn.Render("● deep search")
	} else {
		left = m.theme.ShortcutDesc.Render("○ chat")
	}

	if m.statusMsg != "" {
		left += m.theme.ShortcutDesc.Render("  ·  ") + m.theme.ShortcutDesc.Render(m.statusMsg)
	}

	var hints []string
	for _, binding := range m.keyMap.ShortHelp() {
		help := binding.Help()
		hints = append(hints,
			m.theme.ShortcutKey.Render(help.Key)+" "+m.theme.ShortcutDesc.Render(help.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return m.theme.StatusBar.Width(m.width - 2).Render(
		left + strings.Repeat(" ", gap) + right)
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, m.theme.HeaderTitle.Render("Keyboard shortcuts"), "")

	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			lines = append(lines,
				m.theme.ShortcutKey.Render(padRight(help.Key, 10))+
					m.theme.ShortcutDesc.Render(help.Desc))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		m.theme.ShortcutDesc.Render("Slash commands: /new /search /open <n> /help /quit"),
		"",
		m.theme.SidebarHint.Render("C-h to close"))

	box := m.theme.WelcomeBox.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
