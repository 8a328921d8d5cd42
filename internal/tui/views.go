package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jaytaylor/html2text"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/navigator"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/tui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.state {
	case viewMenu:
		body = m.renderMenu()
	case viewSearchInput:
		body = m.renderSearchInput()
	case viewResults:
		body = m.renderResults()
	case viewFavorites:
		body = m.renderFavorites()
	case viewEpisodes:
		body = m.renderEpisodes()
	case viewLocate:
		body = m.renderLocate()
	case viewDetail:
		body = m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(body)

	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render("✗ "+m.errText))
	}
	if m.status != "" {
		b.WriteString("\n" + styles.StatusStyle.Render(m.status))
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("epview") + "  " +
		styles.DimStyle.Render("Spotify episode browser") + "\n\n")

	for i, item := range menuItems {
		if i == m.menuCursor {
			b.WriteString(styles.SelectedStyle.Render("> "+item) + "\n")
		} else {
			b.WriteString("  " + item + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderSearchInput() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Search shows") + "\n\n")
	b.WriteString(styles.FocusedBorder.Render(m.searchInput.View()) + "\n")
	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " searching...\n")
	}
	return b.String()
}

func (m *Model) renderResults() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Results") + "  " +
		styles.DimStyle.Render(fmt.Sprintf("%q", m.lastQuery)) + "\n\n")

	if len(m.shows) == 0 {
		b.WriteString(styles.DimStyle.Render("no shows found") + "\n")
		return b.String()
	}

	for i, show := range m.shows {
		line := m.renderShowLine(show)
		if i == m.showCursor {
			b.WriteString(styles.SelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderShowLine(show domain.Show) string {
	var parts []string
	if m.favorites.IsFavorite(show.ID) {
		parts = append(parts, styles.FavoriteStyle.Render(styles.FavoriteDot))
	}
	parts = append(parts, show.Name)
	if show.Explicit {
		parts = append(parts, styles.ExplicitStyle.Render(styles.ExplicitTag))
	}
	parts = append(parts, styles.DimStyle.Render(
		fmt.Sprintf("· %s · %d episodes", show.Publisher, show.TotalEpisodes)))
	return strings.Join(parts, " ")
}

func (m *Model) renderFavorites() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Favorites") + "\n\n")

	if m.filtering || m.favFilter.Value() != "" {
		border := styles.PanelBorder
		if m.filtering {
			border = styles.FocusedBorder
		}
		b.WriteString(border.Render(m.favFilter.View()) + "\n\n")
	}

	if len(m.favMatches) == 0 {
		b.WriteString(styles.DimStyle.Render("no favorites yet") + "\n")
		return b.String()
	}

	for i, match := range m.favMatches {
		name := highlightMatches(match.Favorite.Show.Name, match.MatchedIndexes)
		line := name + " " + styles.DimStyle.Render("· "+match.Favorite.Show.Publisher)
		if i == m.favCursor {
			b.WriteString(styles.SelectedStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

// highlightMatches underlines the characters the fuzzy filter matched.
func highlightMatches(s string, indexes []int) string {
	if len(indexes) == 0 {
		return s
	}
	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i, r := range s {
		if matched[i] {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m *Model) renderEpisodes() string {
	var b strings.Builder

	title := "Episodes"
	if m.currentShow != nil {
		title = m.currentShow.Name
	}
	b.WriteString(styles.TitleStyle.Render(title))
	if m.synced {
		b.WriteString(" " + styles.AccentStyle.Render("●"))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " loading...\n")
		return b.String()
	}

	if len(m.listing.Episodes) == 0 {
		b.WriteString(styles.DimStyle.Render("no episodes") + "\n")
	}

	numberWidth := len(fmt.Sprintf("%d", m.listing.Pagination.TotalItems))
	for i, ep := range m.listing.Episodes {
		line := fmt.Sprintf("#%-*d %s", numberWidth, ep.EpisodeNumber, episodeLine(ep))
		if i == m.epCursor {
			b.WriteString(styles.SelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + m.renderPageFooter())

	if m.gotoActive {
		b.WriteString("\n" + styles.FocusedBorder.Render("go to "+m.gotoInput.View()))
	}
	return b.String()
}

func episodeLine(ep navigator.NavigationEpisode) string {
	var parts []string
	parts = append(parts, ep.Title)
	if ep.Explicit {
		parts = append(parts, styles.ExplicitStyle.Render(styles.ExplicitTag))
	}
	parts = append(parts, styles.DimStyle.Render(
		"· "+ep.FormattedReleaseDate()+" · "+ep.FormattedDuration()))
	return strings.Join(parts, " ")
}

// renderPageFooter shows the window: "page 3/5 · 100 episodes · size 20".
func (m *Model) renderPageFooter() string {
	win := m.listing.Pagination

	size := "all"
	if !win.PageSize.IsUnlimited() {
		size = fmt.Sprintf("%d", int(win.PageSize))
	}

	var nav []string
	if win.HasPrevious {
		nav = append(nav, "← p")
	}
	if win.HasNext {
		nav = append(nav, "n →")
	}

	footer := fmt.Sprintf("page %d/%d · %d episodes · size %s",
		win.CurrentPage, win.TotalPages, win.TotalItems, size)
	if len(nav) > 0 {
		footer += "  " + strings.Join(nav, " ")
	}
	return styles.SubtitleStyle.Render(footer)
}

func (m *Model) renderLocate() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Go to episode") + "\n\n")

	if m.locate == nil {
		return b.String()
	}

	if !m.locate.Success {
		b.WriteString(styles.ErrorStyle.Render(m.locate.Error) + "\n\n")
		b.WriteString(styles.DimStyle.Render("g to try another number, esc to go back") + "\n")
		return b.String()
	}

	data := m.locate.Data
	ep := data.Episodes[0]
	b.WriteString(styles.HighlightStyle.Render(fmt.Sprintf("#%d", ep.EpisodeNumber)) +
		" " + styles.TitleStyle.Render(ep.Title) + "\n\n")
	b.WriteString(styles.SubtitleStyle.Render(
		ep.FormattedReleaseDate()+" · "+ep.FormattedDuration()) + "\n")

	method := "indexed lookup"
	if data.SearchMethod == navigator.SearchMethodScan {
		method = "page scan"
	}
	b.WriteString(styles.DimStyle.Render("resolved via "+method) + "\n\n")
	b.WriteString(styles.DimStyle.Render("enter for details, esc to go back") + "\n")
	return b.String()
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return ""
	}
	ep := m.detail

	var b strings.Builder
	b.WriteString(styles.HighlightStyle.Render(fmt.Sprintf("#%d", ep.EpisodeNumber)) +
		" " + styles.TitleStyle.Render(ep.Title) + "\n\n")
	b.WriteString(styles.SubtitleStyle.Render(
		ep.FormattedReleaseDate()+" · "+ep.FormattedDuration()))
	if ep.Explicit {
		b.WriteString(" " + styles.ExplicitStyle.Render(styles.ExplicitTag))
	}
	b.WriteString("\n\n")

	desc := renderDescription(ep.Description, m.width)
	if desc != "" {
		b.WriteString(desc + "\n\n")
	}

	if ep.SourceURL != "" {
		b.WriteString(styles.DimStyle.Render(ep.SourceURL) + "\n")
	}
	return b.String()
}

// renderDescription converts the catalog's HTML description to plain text.
func renderDescription(html string, width int) string {
	if html == "" {
		return ""
	}
	text, err := html2text.FromString(html, html2text.Options{TextOnly: true})
	if err != nil {
		text = html
	}
	text = strings.TrimSpace(text)
	if width > 4 {
		return lipgloss.NewStyle().Width(width - 4).Render(text)
	}
	return text
}
