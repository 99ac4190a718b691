// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "strings"

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// wordWrap wraps text at word boundaries to fit within the given width.
// Preserves existing line breaks.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for lineIdx, line := range lines {
		if lineIdx > 0 {
			result.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		currentLine := words[0]

		for _, word := range words[1:] {
			if runeLen(currentLine)+1+runeLen(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}

		result.WriteString(currentLine)
	}

	return result.String()
}

// maxLineWidth returns the width of the longest line in runes.
func maxLineWidth(text string) int {
	maxWidth := 0
	for _, line := range strings.Split(text, "\n") {
		lineWidth := runeLen(line)
		if lineWidth > maxWidth {
			maxWidth = lineWidth
		}
	}
	return maxWidth
}

// minInt returns the minimum of two integers
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// runeLen returns the number of runes in a string.
// Correctly handles Unicode text where len() would return byte count.
func runeLen(s string) int {
	return len([]rune(s))
}
