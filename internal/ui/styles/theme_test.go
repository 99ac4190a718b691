// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme("auto")
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Spot-check that the core styles carry their intended attributes.
	if !theme.HeaderTitle.GetBold() {
		t.Error("HeaderTitle should be bold")
	}
	if !theme.SidebarItemSelected.GetBold() {
		t.Error("SidebarItemSelected should be bold")
	}
	if !theme.ArticleLink.GetUnderline() {
		t.Error("ArticleLink should be underlined")
	}
	if !theme.InputPlaceholder.GetItalic() {
		t.Error("InputPlaceholder should be italic")
	}
}

func TestNewTheme_ModeForcesPaletteVariant(t *testing.T) {
	dark := NewTheme("dark")
	if !dark.IsDark {
		t.Error(`NewTheme("dark") should force the dark palette`)
	}
	if !lipgloss.DefaultRenderer().HasDarkBackground() {
		t.Error("dark mode should reach the lipgloss renderer")
	}

	light := NewTheme("light")
	if light.IsDark {
		t.Error(`NewTheme("light") should force the light palette`)
	}
	if lipgloss.DefaultRenderer().HasDarkBackground() {
		t.Error("light mode should reach the lipgloss renderer")
	}
}

func TestThemeResize(t *testing.T) {
	theme := NewTheme("auto")
	theme.Resize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("Resize stored %dx%d, want 120x40", theme.Width, theme.Height)
	}
}
