package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/navigator"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

// stubSource records the last page request made through the navigator.
type stubSource struct {
	total    int
	lastPage int
	lastSize paging.Size
	fetches  int
}

func (s *stubSource) FetchEpisodePage(_ context.Context, _ string, page int, size paging.Size) (domain.EpisodePage, error) {
	s.lastPage = page
	s.lastSize = size
	s.fetches++
	return domain.EpisodePage{Window: paging.Window{TotalItems: s.total}}, nil
}

func newBrowserModel(src *stubSource) *Model {
	m := NewModel(nil, nil, navigator.New(src, navigator.NewestFirst, nil), Options{
		DefaultPageSize: 10,
		SearchLimit:     5,
	}, nil)
	m.state = viewEpisodes
	m.currentShow = &domain.Show{ID: "show1", Name: "Test Show"}
	return m
}

// runCmd executes a returned command tree and collects the produced messages.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		msgs := make([]tea.Msg, 0, len(batch))
		for _, c := range batch {
			msgs = append(msgs, c())
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func pressKey(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestCyclePageSizeKeepsFirstVisibleEpisode(t *testing.T) {
	src := &stubSource{total: 100}
	m := newBrowserModel(src)
	m.listing = navigator.Listing{
		Pagination: paging.Window{CurrentPage: 6, TotalPages: 10, TotalItems: 100, PageSize: 10},
	}

	// Page 6 at size 10 shows items 50-59; at size 25 item 50 lives on page 3.
	cmd := pressKey(m, 's')
	assert.True(t, m.loading)

	msgs := runCmd(t, cmd)
	assert.Equal(t, 3, src.lastPage)
	assert.Equal(t, paging.Size(25), src.lastSize)

	for _, msg := range msgs {
		if page, ok := msg.(EpisodePageMsg); ok {
			assert.Equal(t, 3, page.Listing.Pagination.CurrentPage)
		}
	}
}

func TestCyclePageSizeThroughUnlimitedResetsToFirstPage(t *testing.T) {
	src := &stubSource{total: 100}
	m := newBrowserModel(src)
	m.sizeIdx = 2 // size 50
	m.listing = navigator.Listing{
		Pagination: paging.Window{CurrentPage: 2, TotalPages: 2, TotalItems: 100, PageSize: 50},
	}

	runCmd(t, pressKey(m, 's'))
	assert.Equal(t, paging.Unlimited, src.lastSize)
	assert.Equal(t, 1, src.lastPage)

	// Leaving unlimited starts over at page 1 as well.
	m.listing = navigator.Listing{
		Pagination: paging.Window{CurrentPage: 1, TotalPages: 1, TotalItems: 100, PageSize: paging.Unlimited},
	}
	runCmd(t, pressKey(m, 's'))
	assert.Equal(t, paging.Size(10), src.lastSize)
	assert.Equal(t, 1, src.lastPage)
}

func TestStaleEpisodePageMessageIsDropped(t *testing.T) {
	src := &stubSource{total: 100}
	m := newBrowserModel(src)
	m.loading = true

	stale := navigator.Listing{
		Pagination: paging.Window{CurrentPage: 4, TotalPages: 10, TotalItems: 100, PageSize: 10},
	}
	m.Update(EpisodePageMsg{ShowID: "other-show", Listing: stale})
	assert.True(t, m.loading)
	assert.Zero(t, m.listing.Pagination.CurrentPage)

	m.Update(EpisodePageMsg{ShowID: "show1", Listing: stale})
	assert.False(t, m.loading)
	assert.Equal(t, 4, m.listing.Pagination.CurrentPage)
}

func TestStaleLocateMessageIsDropped(t *testing.T) {
	src := &stubSource{total: 100}
	m := newBrowserModel(src)
	m.loading = true

	result := navigator.LocateResult{Success: false, Error: "Episode #7 not found"}
	m.Update(LocateDoneMsg{ShowID: "other-show", Result: result})
	assert.Nil(t, m.locate)
	assert.Equal(t, viewEpisodes, m.state)

	m.Update(LocateDoneMsg{ShowID: "show1", Result: result})
	require.NotNil(t, m.locate)
	assert.Equal(t, viewLocate, m.state)
	assert.False(t, m.locate.Success)
}
