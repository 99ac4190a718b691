// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the cosmic-archive TUI.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// Truncating on byte offsets would corrupt UTF-8 strings mid-character.

// TruncateRunes truncates a string to a maximum number of runes (characters).
// If the string is truncated, "..." is appended; the result is therefore at
// most maxRunes+3 runes long.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// TruncateWidth truncates a string to a maximum display width in terminal
// columns. Double-width characters (CJK) count as 2 columns. An ellipsis is
// appended when the string is cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CollapseWhitespace replaces newlines and carriage returns with single
// spaces so a multi-line message can be shown on a one-line sidebar row.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}

// RuneLen returns the number of runes (characters) in a string.
// This is safer than len() for UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
