package navigator

import (
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

// SearchMethod identifies which strategy resolved a locate request.
type SearchMethod string

const (
	// SearchMethodMapping means the episode came from an O(1) index lookup.
	SearchMethodMapping SearchMethod = "mapping"

	// SearchMethodScan means the episode was found by paging through the
	// collaborator's results.
	SearchMethodScan SearchMethod = "scan"
)

// NavigationEpisode decorates an Episode with the ordinal assigned by the
// numbering policy and a highlight flag for the presentation layer.
type NavigationEpisode struct {
	domain.Episode
	EpisodeNumber int
	IsHighlighted bool
}

// Listing is the envelope for an ordinary page listing.
type Listing struct {
	Episodes   []NavigationEpisode
	Pagination paging.Window
}

// LocateData is the success payload of a locate request.
type LocateData struct {
	Episodes              []NavigationEpisode
	Pagination            paging.Window
	SearchedEpisodeNumber int
	SearchMethod          SearchMethod
}

// LocateResult is the envelope for a "find episode #N" request. A missing
// episode is reported through Success/Error, not through a Go error.
type LocateResult struct {
	Success bool
	Data    *LocateData
	Error   string
}

// formatListing numbers every episode on the page under the policy. The
// page's first item sits at the window's start offset within the collection.
func formatListing(episodes []domain.Episode, window paging.Window, policy NumberingPolicy) Listing {
	start, _ := window.Bounds()
	numbered := make([]NavigationEpisode, len(episodes))
	for i, ep := range episodes {
		numbered[i] = NavigationEpisode{
			Episode:       ep,
			EpisodeNumber: policy.NumberAt(start+i, window.TotalItems),
		}
	}
	return Listing{Episodes: numbered, Pagination: window}
}

// formatLocated wraps a single found episode in the locate envelope with a
// synthesized single-item window, decoupled from the show's real pagination.
func formatLocated(ep domain.Episode, number int, method SearchMethod, size paging.Size) LocateResult {
	return LocateResult{
		Success: true,
		Data: &LocateData{
			Episodes: []NavigationEpisode{{
				Episode:       ep,
				EpisodeNumber: number,
				IsHighlighted: true,
			}},
			Pagination:            paging.SingleItemWindow(size),
			SearchedEpisodeNumber: number,
			SearchMethod:          method,
		},
	}
}

// formatNotFound wraps the not-found outcome in the locate envelope.
func formatNotFound(err *domain.EpisodeNotFoundError) LocateResult {
	return LocateResult{Success: false, Error: err.Error()}
}
