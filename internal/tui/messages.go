package tui

import (
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/navigator"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ShowsFoundMsg signals that a catalog search finished
type ShowsFoundMsg struct {
	Query string
	Shows []domain.Show
}

// EpisodePageMsg signals that an episode page listing is ready
type EpisodePageMsg struct {
	ShowID  string
	Listing navigator.Listing
}

// LocateDoneMsg signals that a "go to episode #N" request resolved
type LocateDoneMsg struct {
	ShowID string
	Result navigator.LocateResult
}

// SyncedMsg signals that a show's full collection finished materializing
type SyncedMsg struct {
	ShowID string
	Count  int
}

// FavoriteToggledMsg signals a favorite was added or removed
type FavoriteToggledMsg struct {
	ShowID     string
	IsFavorite bool
}

// StatusMsg sets a transient status-line message
type StatusMsg string

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}
