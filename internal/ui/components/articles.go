// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/util"
)

// =============================================================================
// ARTICLE CARDS COMPONENT
// =============================================================================

// ArticleCards renders the related-article list that accompanies a
// deep-search answer. Each card shows the article's title, summary, and
// link, numbered so the keyboard shortcut for opening it is visible.
type ArticleCards struct {
	Articles []model.Article
	Width    int
	theme    *styles.Theme
}

// NewArticleCards creates a new ArticleCards component.
func NewArticleCards(articles []model.Article, theme *styles.Theme) *ArticleCards {
	return &ArticleCards{
		Articles: articles,
		Width:    80,
		theme:    theme,
	}
}

// SetWidth sets the rendering width.
func (a *ArticleCards) SetWidth(width int) {
	a.Width = width
}

// View renders the article cards stacked vertically under a heading.
func (a *ArticleCards) View() string {
	if len(a.Articles) == 0 {
		return ""
	}

	heading := a.theme.ArticleHeading.Render("Related articles")

	cardWidth := a.Width - 8
	if cardWidth < 24 {
		cardWidth = 24
	}

	parts := []string{heading}
	for i, article := range a.Articles {
		parts = append(parts, a.renderCard(i+1, article, cardWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *ArticleCards) renderCard(n int, article model.Article, width int) string {
	innerWidth := width - 6
	if innerWidth < 16 {
		innerWidth = 16
	}

	title := a.theme.ArticleTitle.Render(
		"[" + util.IntToString(n) + "] " + wordWrap(article.Title, innerWidth))

	var lines []string
	lines = append(lines, title)

	if article.Summary != "" {
		lines = append(lines, a.theme.ArticleSummary.Render(wordWrap(article.Summary, innerWidth)))
	}
	if article.Link != "" {
		lines = append(lines, a.theme.ArticleLink.Render(article.Link))
	}

	return a.theme.ArticleCard.Width(width).Render(strings.Join(lines, "\n"))
}
