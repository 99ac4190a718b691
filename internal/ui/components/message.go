// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders a single conversation message as a styled bubble.
// User messages sit on the right in cyan/blue, the archive's answers on the
// left in violet.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool

	// RenderedContent, when set, replaces Message.Content in the bubble.
	// The chat view uses it to show glamour-rendered markdown for the
	// archive's answers.
	RenderedContent string

	theme *styles.Theme
}

// NewMessageBubble creates a new MessageBubble.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.Role == model.RoleUser {
		return b.renderUserBubble()
	}
	return b.renderArchiveBubble()
}

func (b *MessageBubble) content() string {
	if b.RenderedContent != "" {
		return b.RenderedContent
	}
	return b.Message.Content
}

// ==========================================================================
// USER BUBBLE - Right-aligned
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.content()
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubble := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.UserBubbleBorder).
		Padding(0, 2).
		Width(contentWidth).
		Render(wrappedContent)

	header := b.renderHeader()

	// Right-align with a left margin.
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(lipgloss.Right,
		marginStyle.Render(header),
		marginStyle.Render(bubble))
}

// ==========================================================================
// ARCHIVE BUBBLE - Left-aligned
// ==========================================================================

func (b *MessageBubble) renderArchiveBubble() string {
	content := b.content()
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	// Glamour output arrives pre-wrapped; only wrap raw content.
	wrappedContent := content
	if b.RenderedContent == "" {
		wrappedContent = wordWrap(content, maxContentWidth)
	}
	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubble := lipgloss.NewStyle().
		Foreground(styles.ArchiveBubbleFg).
		Background(styles.ArchiveBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.ArchiveBubbleBorder).
		Padding(0, 2).
		Width(contentWidth).
		MarginRight(4).
		Render(wrappedContent)

	return lipgloss.JoinVertical(lipgloss.Left, b.renderHeader(), bubble)
}

// ==========================================================================
// SHARED PIECES
// ==========================================================================

func (b *MessageBubble) renderHeader() string {
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	parts := []string{roleStyle.Render(strings.ToLower(b.Message.Role.DisplayName()))}

	if b.ShowTimestamp {
		parts = append(parts, b.renderTimestamp())
	}
	return strings.Join(parts, " ")
}

func (b *MessageBubble) renderTimestamp() string {
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(formatTime(b.Message.Timestamp))
}

// formatTime formats a time as "3:04 PM"
func formatTime(t time.Time) string {
	hour := t.Hour()
	minute := t.Minute()
	ampm := "AM"

	if hour >= 12 {
		ampm = "PM"
		if hour > 12 {
			hour -= 12
		}
	}
	if hour == 0 {
		hour = 12
	}

	minuteStr := util.IntToString(minute)
	if minute < 10 {
		minuteStr = "0" + minuteStr
	}

	return util.IntToString(hour) + ":" + minuteStr + " " + ampm
}
