// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
)

// =============================================================================
// FUN FACT CARD COMPONENT
// =============================================================================

// FunFactCard renders the space-biology fun fact shown on the welcome
// screen. An empty fact renders nothing, so a failed or disabled fetch
// simply leaves the card out.
type FunFactCard struct {
	Fact  string
	Width int
	theme *styles.Theme
}

// NewFunFactCard creates a new FunFactCard.
func NewFunFactCard(theme *styles.Theme) *FunFactCard {
	return &FunFactCard{
		Width: 60,
		theme: theme,
	}
}

// SetWidth sets the card width.
func (f *FunFactCard) SetWidth(width int) {
	f.Width = width
}

// View renders the fun fact card.
func (f *FunFactCard) View() string {
	if f.Fact == "" {
		return ""
	}

	innerWidth := f.Width - 8
	if innerWidth < 20 {
		innerWidth = 20
	}

	label := f.theme.FunFactLabel.Render("Did you know?")
	body := wordWrap(f.Fact, innerWidth)

	return f.theme.FunFactCard.Width(f.Width - 4).Render(label + "\n" + body)
}
