// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// =============================================================================
// CONVERSATION SIDEBAR COMPONENT
// =============================================================================

// DefaultSidebarWidth is the column width of the conversation sidebar.
const DefaultSidebarWidth = 28

// Sidebar renders the conversation list, most recent first, with the
// selected conversation highlighted. A pending marker shows next to
// conversations still waiting on an answer.
type Sidebar struct {
	Summaries []model.Summary
	ActiveID  string
	Pending   map[string]bool
	Width     int
	Height    int
	theme     *styles.Theme
}

// NewSidebar creates a new Sidebar component.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{
		Width:  DefaultSidebarWidth,
		Height: 24,
		theme:  theme,
	}
}

// SetSize sets the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	var lines []string
	lines = append(lines, s.theme.SidebarTitle.Render("Conversations"))

	if len(s.Summaries) == 0 {
		lines = append(lines, s.theme.SidebarHint.Render("No conversations yet."))
		lines = append(lines, s.theme.SidebarHint.Render("Ask something to begin."))
	} else {
		maxItems := s.Height - 5
		if maxItems < 1 {
			maxItems = 1
		}
		for i, summary := range s.Summaries {
			if i >= maxItems {
				remaining := len(s.Summaries) - maxItems
				lines = append(lines, s.theme.SidebarHint.Render(
					"… "+util.IntToString(remaining)+" more"))
				break
			}
			lines = append(lines, s.renderItem(summary))
		}
	}

	lines = append(lines, "")
	lines = append(lines, s.theme.SidebarHint.Render("ctrl+n new chat"))

	content := strings.Join(lines, "\n")
	return s.theme.Sidebar.
		Width(s.Width).
		Height(s.Height).
		Render(content)
}

func (s *Sidebar) renderItem(summary model.Summary) string {
	title := util.TruncateWidth(summary.Title, s.Width-6)

	marker := " "
	if s.Pending[summary.ID] {
		marker = "•"
	}

	line := marker + " " + title
	if summary.ID == s.ActiveID {
		return s.theme.SidebarItemSelected.Render(line)
	}
	return s.theme.SidebarItem.Render(line)
}

// SelectedIndex returns the position of the active conversation in the
// summary list, or -1 when nothing is selected.
func (s *Sidebar) SelectedIndex() int {
	for i, summary := range s.Summaries {
		if summary.ID == s.ActiveID {
			return i
		}
	}
	return -1
}
