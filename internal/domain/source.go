package domain

import (
	"context"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

// EpisodePage is one page of a show's ordered episode collection, together
// with the pagination hint reported by the collaborator. The hint's
// TotalItems is authoritative for ordinal numbering; the rest is advisory.
type EpisodePage struct {
	Episodes []Episode
	Window   paging.Window
}

// EpisodeSource supplies pages of a show's episode collection on demand.
// Implementations own transport concerns (timeouts, retries); errors they
// return propagate unwrapped to the caller of a list or locate operation.
type EpisodeSource interface {
	// FetchEpisodePage returns the requested page in the show's canonical
	// order. page is 1-based. A size of paging.Unlimited requests the whole
	// collection as a single page.
	FetchEpisodePage(ctx context.Context, showID string, page int, size paging.Size) (EpisodePage, error)
}

// CollectionSource is an optional fast path for sources that can hand over a
// show's full episode collection at once, enabling an immediate index build
// without paged scanning. Detected by type assertion on the EpisodeSource.
type CollectionSource interface {
	// FetchAllEpisodes returns the show's complete collection in canonical
	// order.
	FetchAllEpisodes(ctx context.Context, showID string) ([]Episode, error)

	// HoldsCollection reports whether the full collection for the show is
	// already materialized locally, making FetchAllEpisodes cheap. When it
	// returns false, callers fall back to paged access.
	HoldsCollection(showID string) bool
}

// ShowCatalog provides show-level catalog operations.
type ShowCatalog interface {
	// SearchShows searches the catalog for shows matching the query.
	SearchShows(ctx context.Context, query string, limit int) ([]Show, error)

	// GetShow returns a single show by ID.
	GetShow(ctx context.Context, showID string) (*Show, error)
}
