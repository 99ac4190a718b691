// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme("auto")
}

// =============================================================================
// HELPER TESTS
// =============================================================================

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		maxWidth int
	}{
		{"short line untouched", "hello world", 40, 11},
		{"long line wrapped", "the quick brown fox jumps over the lazy dog", 15, 15},
		{"zero width untouched", "hello world", 0, 11},
		{"preserves breaks", "line one\nline two", 40, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wordWrap(tc.input, tc.width)
			for _, line := range strings.Split(got, "\n") {
				if runeLen(line) > tc.maxWidth {
					t.Errorf("line %q exceeds width %d", line, tc.maxWidth)
				}
			}
		})
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth("ab\nabcd\nabc"); got != 4 {
		t.Errorf("maxLineWidth = %d, want 4", got)
	}
}

// =============================================================================
// MESSAGE BUBBLE TESTS
// =============================================================================

func TestMessageBubble_UserAndArchive(t *testing.T) {
	theme := testTheme()

	user := NewMessageBubble(model.NewUserMessage("what is microgravity?"), theme)
	userView := user.View()
	if !strings.Contains(userView, "what is microgravity?") {
		t.Error("user bubble missing content")
	}
	if !strings.Contains(userView, "you") {
		t.Error("user bubble missing role label")
	}

	archive := NewMessageBubble(model.NewAssistantMessage("Near-weightlessness.", nil, false), theme)
	archiveView := archive.View()
	if !strings.Contains(archiveView, "Near-weightlessness.") {
		t.Error("archive bubble missing content")
	}
	if !strings.Contains(archiveView, "archive") {
		t.Error("archive bubble missing role label")
	}
}

func TestMessageBubble_RenderedContentOverride(t *testing.T) {
	theme := testTheme()

	bubble := NewMessageBubble(model.NewAssistantMessage("raw **markdown**", nil, false), theme)
	bubble.RenderedContent = "pretty markdown"

	view := bubble.View()
	if !strings.Contains(view, "pretty markdown") {
		t.Error("bubble should prefer rendered content")
	}
	if strings.Contains(view, "raw **markdown**") {
		t.Error("bubble should not show raw content when rendered is set")
	}
}

// =============================================================================
// ARTICLE CARDS TESTS
// =============================================================================

func TestArticleCards(t *testing.T) {
	theme := testTheme()

	articles := []model.Article{
		{Title: "Plant growth aboard the ISS", Summary: "How roots find down.", Link: "https://example.org/iss-plants"},
		{Title: "Bone density in orbit", Summary: "", Link: "https://example.org/bones"},
	}

	cards := NewArticleCards(articles, theme)
	view := cards.View()

	if !strings.Contains(view, "Related articles") {
		t.Error("missing heading")
	}
	if !strings.Contains(view, "Plant growth aboard the ISS") {
		t.Error("missing first article title")
	}
	if !strings.Contains(view, "https://example.org/bones") {
		t.Error("missing second article link")
	}
	if !strings.Contains(view, "[1]") || !strings.Contains(view, "[2]") {
		t.Error("missing card numbering")
	}
}

func TestArticleCards_Empty(t *testing.T) {
	cards := NewArticleCards(nil, testTheme())
	if cards.View() != "" {
		t.Error("empty article list should render nothing")
	}
}

// =============================================================================
// SIDEBAR TESTS
// =============================================================================

func TestSidebar(t *testing.T) {
	theme := testTheme()
	sb := NewSidebar(theme)
	sb.Summaries = []model.Summary{
		{ID: "conv_b", Title: "Radiation shielding"},
		{ID: "conv_a", Title: "Tardigrade survival"},
	}
	sb.ActiveID = "conv_a"
	sb.Pending = map[string]bool{"conv_b": true}

	view := sb.View()
	if !strings.Contains(view, "Radiation shielding") {
		t.Error("missing conversation title")
	}
	if !strings.Contains(view, "Tardigrade survival") {
		t.Error("missing second conversation title")
	}
	if !strings.Contains(view, "•") {
		t.Error("missing pending marker")
	}

	if got := sb.SelectedIndex(); got != 1 {
		t.Errorf("SelectedIndex = %d, want 1", got)
	}
}

func TestSidebar_Empty(t *testing.T) {
	sb := NewSidebar(testTheme())
	view := sb.View()
	if !strings.Contains(view, "No conversations yet.") {
		t.Error("empty sidebar should show the hint")
	}
	if sb.SelectedIndex() != -1 {
		t.Error("SelectedIndex should be -1 with no selection")
	}
}

// =============================================================================
// FUN FACT TESTS
// =============================================================================

func TestFunFactCard(t *testing.T) {
	card := NewFunFactCard(testTheme())

	if card.View() != "" {
		t.Error("empty fact should render nothing")
	}

	card.Fact = "Tardigrades survived ten days of open space exposure."
	view := card.View()
	if !strings.Contains(view, "Did you know?") {
		t.Error("missing label")
	}
	if !strings.Contains(view, "Tardigrades") {
		t.Error("missing fact text")
	}
}
