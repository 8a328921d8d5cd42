package tui

import (
	"context"
	"os/exec"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

const statusDuration = 3 * time.Second

// searchShowsCmd runs a catalog search.
func (m *Model) searchShowsCmd(query string) tea.Cmd {
	return func() tea.Msg {
		shows, err := m.catalog.SearchShows(context.Background(), query, m.searchLimit)
		if err != nil {
			return ErrMsg{Err: err, Context: "search failed"}
		}
		return ShowsFoundMsg{Query: query, Shows: shows}
	}
}

// listPageCmd fetches one page of the show's episodes through the navigator.
func (m *Model) listPageCmd(showID string, page int, size paging.Size) tea.Cmd {
	return func() tea.Msg {
		listing, err := m.nav.ListPage(context.Background(), showID, page, size)
		if err != nil {
			return ErrMsg{Err: err, Context: "failed to load episodes"}
		}
		return EpisodePageMsg{ShowID: showID, Listing: listing}
	}
}

// locateCmd resolves a "go to episode #N" request.
func (m *Model) locateCmd(showID string, number int, size paging.Size) tea.Cmd {
	return func() tea.Msg {
		result, err := m.nav.LocateByNumber(context.Background(), showID, number, size)
		if err != nil {
			return ErrMsg{Err: err, Context: "locate failed"}
		}
		return LocateDoneMsg{ShowID: showID, Result: result}
	}
}

// syncShowCmd materializes the show's full collection in the background so
// later jumps resolve via the index instead of scanning.
func (m *Model) syncShowCmd(showID string) tea.Cmd {
	return func() tea.Msg {
		episodes, err := m.catalog.SyncShow(context.Background(), showID, nil)
		if err != nil {
			// Background sync is best-effort; paged browsing still works.
			return nil
		}
		return SyncedMsg{ShowID: showID, Count: len(episodes)}
	}
}

// toggleFavoriteCmd flips the show's favorite state.
func (m *Model) toggleFavoriteCmd(show domain.Show) tea.Cmd {
	return func() tea.Msg {
		isFav, err := m.favorites.Toggle(show)
		if err != nil {
			return ErrMsg{Err: err, Context: "favorites update failed"}
		}
		return FavoriteToggledMsg{ShowID: show.ID, IsFavorite: isFav}
	}
}

// copyURLCmd puts the URL on the system clipboard.
func copyURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return StatusMsg("nothing to copy")
		}
		if err := clipboard.WriteAll(url); err != nil {
			return ErrMsg{Err: err, Context: "clipboard"}
		}
		return StatusMsg("copied " + url)
	}
}

// openURLCmd opens the URL in the default browser.
func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return StatusMsg("nothing to open")
		}
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		if err := cmd.Start(); err != nil {
			return ErrMsg{Err: err, Context: "open browser"}
		}
		return StatusMsg("opened in browser")
	}
}

// clearStatusCmd clears the status line after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
