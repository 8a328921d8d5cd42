// Package tui implements the interactive terminal client: menu, show search,
// favorites, and the paged episode browser with number-indexed navigation.
package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/navigator"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/search"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/service"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/tui/styles"
)

// viewState identifies which screen has focus
type viewState int

const (
	viewMenu viewState = iota
	viewSearchInput
	viewResults
	viewFavorites
	viewEpisodes
	viewLocate
	viewDetail
)

// menu entries, in display order
var menuItems = []string{
	"Search shows",
	"Favorites",
	"Quit",
}

// pageSizeOptions is the cycle order for the 's' key in the episode browser.
var pageSizeOptions = []paging.Size{10, 25, 50, paging.Unlimited}

// Model is the bubbletea model for the whole application.
type Model struct {
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	catalog   *service.Catalog
	favorites *service.Favorites
	nav       *navigator.Navigator
	logger    *slog.Logger

	width  int
	height int

	state   viewState
	loading bool
	status  string
	errText string

	// Menu
	menuCursor int

	// Search
	searchInput textinput.Model
	searchLimit int
	shows       []domain.Show
	showCursor  int
	lastQuery   string

	// Favorites
	favFilter  textinput.Model
	filtering  bool
	favMatches []search.FavoriteMatch
	favCursor  int

	// Episode browser
	currentShow  *domain.Show
	listing      navigator.Listing
	epCursor     int
	sizeIdx      int
	synced       bool
	episodesFrom viewState

	// Go-to prompt
	gotoInput  textinput.Model
	gotoActive bool

	// Locate result
	locate *navigator.LocateResult

	// Episode detail
	detail     *navigator.NavigationEpisode
	detailFrom viewState
}

// Options configures the TUI.
type Options struct {
	DefaultPageSize int
	SearchLimit     int
}

// NewModel creates the application model.
func NewModel(catalog *service.Catalog, favorites *service.Favorites, nav *navigator.Navigator, opts Options, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AccentStyle

	searchInput := textinput.New()
	searchInput.Placeholder = "show name"
	searchInput.CharLimit = 100

	gotoInput := textinput.New()
	gotoInput.Placeholder = "episode #"
	gotoInput.CharLimit = 6

	favFilter := textinput.New()
	favFilter.Placeholder = "filter"
	favFilter.CharLimit = 50

	sizeIdx := 0
	for i, s := range pageSizeOptions {
		if int(s) == opts.DefaultPageSize {
			sizeIdx = i
		}
	}
	searchLimit := opts.SearchLimit
	if searchLimit <= 0 {
		searchLimit = 20
	}

	return &Model{
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		catalog:     catalog,
		favorites:   favorites,
		nav:         nav,
		logger:      logger,
		searchInput: searchInput,
		gotoInput:   gotoInput,
		favFilter:   favFilter,
		sizeIdx:     sizeIdx,
		searchLimit: searchLimit,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// pageSize returns the currently selected page size.
func (m *Model) pageSize() paging.Size {
	return pageSizeOptions[m.sizeIdx]
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ErrMsg:
		m.loading = false
		m.errText = msg.Error()
		m.logger.Error("tui error", "error", msg.Err, "context", msg.Context)
		return m, nil

	case StatusMsg:
		m.status = string(msg)
		return m, clearStatusCmd()

	case ClearStatusMsg:
		m.status = ""
		return m, nil

	case ShowsFoundMsg:
		m.loading = false
		m.errText = ""
		m.shows = search.RankShows(msg.Query, msg.Shows)
		m.showCursor = 0
		m.lastQuery = msg.Query
		m.state = viewResults
		return m, nil

	case EpisodePageMsg:
		if m.currentShow == nil || msg.ShowID != m.currentShow.ID {
			return m, nil // Stale response from a show we already left
		}
		m.loading = false
		m.errText = ""
		m.listing = msg.Listing
		if m.epCursor >= len(m.listing.Episodes) {
			m.epCursor = 0
		}
		m.state = viewEpisodes
		return m, nil

	case LocateDoneMsg:
		if m.currentShow == nil || msg.ShowID != m.currentShow.ID {
			return m, nil
		}
		m.loading = false
		result := msg.Result
		m.locate = &result
		m.state = viewLocate
		return m, nil

	case SyncedMsg:
		if m.currentShow != nil && msg.ShowID == m.currentShow.ID {
			m.synced = true
		}
		return m, nil

	case refreshFavoritesMsg:
		m.favMatches = search.FilterFavorites(m.favFilter.Value(), m.favorites.List())
		if m.favCursor >= len(m.favMatches) && m.favCursor > 0 {
			m.favCursor = len(m.favMatches) - 1
		}
		return m, nil

	case FavoriteToggledMsg:
		if msg.IsFavorite {
			m.status = "added to favorites"
		} else {
			m.status = "removed from favorites"
		}
		return m, clearStatusCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses to the focused view.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs swallow everything except their control keys.
	switch {
	case m.state == viewSearchInput:
		return m.handleSearchInputKey(msg)
	case m.gotoActive:
		return m.handleGotoKey(msg)
	case m.filtering:
		return m.handleFilterKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case viewMenu:
		return m.handleMenuKey(msg)
	case viewResults:
		return m.handleResultsKey(msg)
	case viewFavorites:
		return m.handleFavoritesKey(msg)
	case viewEpisodes:
		return m.handleEpisodesKey(msg)
	case viewLocate:
		return m.handleLocateKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Search):
		return m.openSearch()
	case key.Matches(msg, m.keys.Enter):
		switch m.menuCursor {
		case 0:
			return m.openSearch()
		case 1:
			return m.openFavorites()
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) openSearch() (tea.Model, tea.Cmd) {
	m.state = viewSearchInput
	m.errText = ""
	m.searchInput.SetValue("")
	return m, m.searchInput.Focus()
}

func (m *Model) openFavorites() (tea.Model, tea.Cmd) {
	m.state = viewFavorites
	m.errText = ""
	m.filtering = false
	m.favFilter.SetValue("")
	m.favMatches = search.FilterFavorites("", m.favorites.List())
	m.favCursor = 0
	return m, nil
}

func (m *Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.state = viewMenu
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchInput.Blur()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.searchShowsCmd(query))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.showCursor > 0 {
			m.showCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.showCursor < len(m.shows)-1 {
			m.showCursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.state = viewMenu
	case key.Matches(msg, m.keys.Search):
		return m.openSearch()
	case key.Matches(msg, m.keys.Favorite):
		if len(m.shows) > 0 {
			return m, m.toggleFavoriteCmd(m.shows[m.showCursor])
		}
	case key.Matches(msg, m.keys.Enter):
		if len(m.shows) > 0 {
			show := m.shows[m.showCursor]
			return m.openEpisodes(&show)
		}
	}
	return m, nil
}

func (m *Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.favCursor > 0 {
			m.favCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.favCursor < len(m.favMatches)-1 {
			m.favCursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.state = viewMenu
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.favFilter.Focus()
	case key.Matches(msg, m.keys.Favorite):
		if len(m.favMatches) > 0 {
			show := m.favMatches[m.favCursor].Favorite.Show
			return m, tea.Sequence(
				m.toggleFavoriteCmd(show),
				func() tea.Msg {
					// Re-run the filter after the toggle lands
					return refreshFavoritesMsg{}
				},
			)
		}
	case key.Matches(msg, m.keys.Enter):
		if len(m.favMatches) > 0 {
			show := m.favMatches[m.favCursor].Favorite.Show
			return m.openEpisodes(&show)
		}
	}
	return m, nil
}

// refreshFavoritesMsg re-applies the favorites filter after a mutation
type refreshFavoritesMsg struct{}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.filtering = false
		m.favFilter.Blur()
		m.favFilter.SetValue("")
		m.favMatches = search.FilterFavorites("", m.favorites.List())
		m.favCursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.favFilter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.favFilter, cmd = m.favFilter.Update(msg)
	m.favMatches = search.FilterFavorites(m.favFilter.Value(), m.favorites.List())
	m.favCursor = 0
	return m, cmd
}

// openEpisodes enters the episode browser for a show, kicking off the first
// page load and a background sync of the full collection.
func (m *Model) openEpisodes(show *domain.Show) (tea.Model, tea.Cmd) {
	m.episodesFrom = m.state
	m.currentShow = show
	m.listing = navigator.Listing{}
	m.epCursor = 0
	m.synced = m.catalog.HoldsCollection(show.ID)
	m.loading = true
	m.errText = ""

	cmds := []tea.Cmd{m.spinner.Tick, m.listPageCmd(show.ID, 1, m.pageSize())}
	if !m.synced {
		cmds = append(cmds, m.syncShowCmd(show.ID))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleEpisodesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	win := m.listing.Pagination

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.epCursor > 0 {
			m.epCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.epCursor < len(m.listing.Episodes)-1 {
			m.epCursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.currentShow = nil
		m.state = m.episodesFrom
	case key.Matches(msg, m.keys.NextPage):
		if win.HasNext {
			return m.loadPage(win.CurrentPage + 1)
		}
	case key.Matches(msg, m.keys.PrevPage):
		if win.HasPrevious {
			return m.loadPage(win.CurrentPage - 1)
		}
	case key.Matches(msg, m.keys.FirstPage):
		if win.CurrentPage != 1 {
			return m.loadPage(1)
		}
	case key.Matches(msg, m.keys.LastPage):
		if win.CurrentPage != win.TotalPages && win.TotalPages > 0 {
			return m.loadPage(win.TotalPages)
		}
	case key.Matches(msg, m.keys.PageSize):
		return m.cyclePageSize()
	case key.Matches(msg, m.keys.GoTo):
		m.gotoActive = true
		m.gotoInput.SetValue("")
		return m, m.gotoInput.Focus()
	case key.Matches(msg, m.keys.Favorite):
		if m.currentShow != nil {
			return m, m.toggleFavoriteCmd(*m.currentShow)
		}
	case key.Matches(msg, m.keys.Refresh):
		if m.currentShow != nil {
			m.catalog.InvalidateShow(m.currentShow.ID)
			m.nav.InvalidateShow(m.currentShow.ID)
			m.synced = false
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				m.listPageCmd(m.currentShow.ID, win.CurrentPage, m.pageSize()),
				m.syncShowCmd(m.currentShow.ID))
		}
	case key.Matches(msg, m.keys.CopyURL):
		if ep, ok := m.selectedEpisode(); ok {
			return m, copyURLCmd(ep.SourceURL)
		}
	case key.Matches(msg, m.keys.OpenURL):
		if ep, ok := m.selectedEpisode(); ok {
			return m, openURLCmd(ep.SourceURL)
		}
	case key.Matches(msg, m.keys.Enter):
		if ep, ok := m.selectedEpisode(); ok {
			epCopy := ep
			m.detail = &epCopy
			m.detailFrom = viewEpisodes
			m.state = viewDetail
		}
	}
	return m, nil
}

func (m *Model) selectedEpisode() (navigator.NavigationEpisode, bool) {
	if m.epCursor < 0 || m.epCursor >= len(m.listing.Episodes) {
		return navigator.NavigationEpisode{}, false
	}
	return m.listing.Episodes[m.epCursor], true
}

func (m *Model) loadPage(page int) (tea.Model, tea.Cmd) {
	if m.currentShow == nil {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.listPageCmd(m.currentShow.ID, page, m.pageSize()))
}

// cyclePageSize advances to the next page size, keeping the first visible
// item in view by reconciling the page number across the change.
func (m *Model) cyclePageSize() (tea.Model, tea.Cmd) {
	if m.currentShow == nil {
		return m, nil
	}

	oldSize := m.pageSize()
	oldPage := m.listing.Pagination.CurrentPage
	m.sizeIdx = (m.sizeIdx + 1) % len(pageSizeOptions)
	newSize := m.pageSize()

	// Unlimited on either side collapses to a single page, so the anchor
	// arithmetic only applies between two finite sizes.
	newPage := 1
	if !oldSize.IsUnlimited() && !newSize.IsUnlimited() {
		reconciled, err := m.nav.ReconcilePageForNewSize(oldPage, int(oldSize), int(newSize))
		if err == nil {
			newPage = reconciled
		}
	}

	m.epCursor = 0
	return m.loadPage(newPage)
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.gotoActive = false
		m.gotoInput.Blur()
		return m, nil
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.gotoInput.Value())
		m.gotoActive = false
		m.gotoInput.Blur()

		number, err := strconv.Atoi(raw)
		if err != nil || number < 1 {
			m.status = "enter a positive episode number"
			return m, clearStatusCmd()
		}
		if m.currentShow == nil {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.locateCmd(m.currentShow.ID, number, m.pageSize()))
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *Model) handleLocateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.locate = nil
		m.state = viewEpisodes
	case key.Matches(msg, m.keys.GoTo):
		m.state = viewEpisodes
		m.gotoActive = true
		m.gotoInput.SetValue("")
		return m, m.gotoInput.Focus()
	case key.Matches(msg, m.keys.Enter):
		if m.locate != nil && m.locate.Success && len(m.locate.Data.Episodes) > 0 {
			ep := m.locate.Data.Episodes[0]
			m.detail = &ep
			m.detailFrom = viewLocate
			m.state = viewDetail
		}
	case key.Matches(msg, m.keys.CopyURL):
		if m.locate != nil && m.locate.Success && len(m.locate.Data.Episodes) > 0 {
			return m, copyURLCmd(m.locate.Data.Episodes[0].SourceURL)
		}
	case key.Matches(msg, m.keys.OpenURL):
		if m.locate != nil && m.locate.Success && len(m.locate.Data.Episodes) > 0 {
			return m, openURLCmd(m.locate.Data.Episodes[0].SourceURL)
		}
	}
	return m, nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.detail = nil
		m.state = m.detailFrom
	case key.Matches(msg, m.keys.CopyURL):
		if m.detail != nil {
			return m, copyURLCmd(m.detail.SourceURL)
		}
	case key.Matches(msg, m.keys.OpenURL):
		if m.detail != nil {
			return m, openURLCmd(m.detail.SourceURL)
		}
	}
	return m, nil
}
