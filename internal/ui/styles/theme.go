// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble    lipgloss.Style
	ArchiveBubble lipgloss.Style
	RoleLabel     lipgloss.Style
	Timestamp     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	SearchModeOn lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar             lipgloss.Style
	SidebarTitle        lipgloss.Style
	SidebarItem         lipgloss.Style
	SidebarItemSelected lipgloss.Style
	SidebarHint         lipgloss.Style

	// ==========================================================================
	// ARTICLE CARD STYLES
	// ==========================================================================

	ArticleCard    lipgloss.Style
	ArticleTitle   lipgloss.Style
	ArticleSummary lipgloss.Style
	ArticleLink    lipgloss.Style
	ArticleHeading lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox   lipgloss.Style
	WelcomeLogo  lipgloss.Style
	WelcomeInfo  lipgloss.Style
	FunFactCard  lipgloss.Style
	FunFactLabel lipgloss.Style

	// ==========================================================================
	// ERROR STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorMessage lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. The mode forces
// the palette variant: "dark" and "light" override terminal detection,
// anything else (notably "auto") keeps it.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	isDark := termenv.HasDarkBackground()
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}

	// Adaptive colors resolve against the renderer's idea of the
	// background, so the override has to land there as well.
	lipgloss.DefaultRenderer().SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.ArchiveBubble = lipgloss.NewStyle().
		Foreground(ArchiveBubbleFg).
		Background(ArchiveBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ArchiveBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.RoleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.SearchModeOn = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner
	t.Spinner = lipgloss.NewStyle().
		Foreground(Violet)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet).
		MarginBottom(1)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.SidebarItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true).
		Padding(0, 1)

	t.SidebarHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Article cards
	t.ArticleCard = lipgloss.NewStyle().
		Background(ArticleCardBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 2).
		MarginRight(4)

	t.ArticleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArticleTitleFg)

	t.ArticleSummary = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ArticleLink = lipgloss.NewStyle().
		Foreground(ArticleLinkFg).
		Underline(true)

	t.ArticleHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		MarginTop(1)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FunFactCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Foreground(TextPrimary).
		Padding(0, 2).
		MarginTop(1)

	t.FunFactLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	// Errors
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(Rose)
}

// Resize updates the theme's layout dimensions.
func (t *Theme) Resize(width, height int) {
	t.Width = width
	t.Height = height
}
