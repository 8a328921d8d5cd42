// Package navigator implements episode pagination and number-indexed
// navigation: stable page listings over a show's episode collection, an
// ordinal-number index with O(1) lookup, and a deterministic scan fallback
// for "go to episode #N" when no index can be built up front.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

// scanChunkSize is the page size used during fallback scans when the caller
// requested an unlimited view.
const scanChunkSize = 50

// ErrInvalidEpisodeNumber indicates a non-positive ordinal from the caller.
var ErrInvalidEpisodeNumber = errors.New("episode number must be at least 1")

// Navigator orchestrates page listings and episode-number lookups for one
// episode source. Indexes are cached per show and replaced wholesale; the
// navigator never mutates the source's own storage.
type Navigator struct {
	source domain.EpisodeSource
	policy NumberingPolicy
	logger *slog.Logger

	mu      sync.RWMutex
	indexes map[string]*Index
}

// New creates a Navigator over the given source.
func New(source domain.EpisodeSource, policy NumberingPolicy, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{
		source:  source,
		policy:  policy,
		logger:  logger,
		indexes: make(map[string]*Index),
	}
}

// ListPage returns one page of a show's episodes, each decorated with its
// ordinal number. Out-of-range pages are clamped, and an unlimited size
// yields a single page holding the whole collection.
func (n *Navigator) ListPage(ctx context.Context, showID string, page int, size paging.Size) (Listing, error) {
	if !size.Valid() {
		return Listing{}, paging.ErrInvalidPageSize
	}

	if cs, ok := n.source.(domain.CollectionSource); ok && cs.HoldsCollection(showID) {
		episodes, err := cs.FetchAllEpisodes(ctx, showID)
		if err != nil {
			return Listing{}, fmt.Errorf("list episodes: %w", err)
		}
		n.installIndex(BuildIndex(showID, episodes, n.policy))

		window, err := paging.ComputeWindow(len(episodes), page, size)
		if err != nil {
			return Listing{}, err
		}
		start, end := window.Bounds()
		return formatListing(episodes[start:end], window, n.policy), nil
	}

	result, err := n.source.FetchEpisodePage(ctx, showID, page, size)
	if err != nil {
		return Listing{}, fmt.Errorf("list episodes: %w", err)
	}

	window, err := paging.ComputeWindow(result.Window.TotalItems, page, size)
	if err != nil {
		return Listing{}, err
	}
	if window.CurrentPage != page {
		// The requested page was clamped; fetch the corrected one.
		result, err = n.source.FetchEpisodePage(ctx, showID, window.CurrentPage, size)
		if err != nil {
			return Listing{}, fmt.Errorf("list episodes: %w", err)
		}
	}

	return formatListing(result.Episodes, window, n.policy), nil
}

// LocateByNumber resolves a "find episode #N" request. It prefers an O(1)
// index lookup and falls back to scanning the source's pages in the
// numbering policy's natural order, reporting which strategy was used.
// A missing episode is a normal outcome carried in the result envelope;
// only transport failures and caller bugs surface as errors.
func (n *Navigator) LocateByNumber(ctx context.Context, showID string, number int, size paging.Size) (LocateResult, error) {
	if number < 1 {
		return LocateResult{}, ErrInvalidEpisodeNumber
	}
	if !size.Valid() {
		return LocateResult{}, paging.ErrInvalidPageSize
	}

	// Step 1: an existing index that covers the ordinal answers immediately.
	if ix := n.cachedIndex(showID); ix != nil {
		if ep, ok := ix.Lookup(number); ok {
			n.logger.Debug("located episode via index", "showID", showID, "number", number)
			return formatLocated(ep, number, SearchMethodMapping, size), nil
		}
		if number > ix.Total() {
			return formatNotFound(&domain.EpisodeNotFoundError{Number: number}), nil
		}
	}

	// Fast path: a source that already holds the full collection lets us
	// build the index in one step and still resolve via mapping.
	if cs, ok := n.source.(domain.CollectionSource); ok && cs.HoldsCollection(showID) {
		episodes, err := cs.FetchAllEpisodes(ctx, showID)
		if err != nil {
			return LocateResult{}, fmt.Errorf("locate episode #%d: %w", number, err)
		}
		ix := BuildIndex(showID, episodes, n.policy)
		n.installIndex(ix)

		if ep, ok := ix.Lookup(number); ok {
			return formatLocated(ep, number, SearchMethodMapping, size), nil
		}
		return formatNotFound(&domain.EpisodeNotFoundError{Number: number}), nil
	}

	// Step 2: sequential scan through the source's pages.
	return n.scan(ctx, showID, number, size)
}

// scan pages through the source in order until the target ordinal turns up
// or the supply is exhausted. Whatever was materialized refreshes the
// per-show index cache on the way out.
func (n *Navigator) scan(ctx context.Context, showID string, number int, size paging.Size) (LocateResult, error) {
	chunk := size
	if chunk.IsUnlimited() {
		chunk = scanChunkSize
	}

	var accumulated []domain.Episode
	page := 1
	for {
		result, err := n.source.FetchEpisodePage(ctx, showID, page, chunk)
		if err != nil {
			return LocateResult{}, fmt.Errorf("locate episode #%d: %w", number, err)
		}

		total := result.Window.TotalItems
		if number > total {
			// The first page's hint already rules the ordinal out.
			n.installIndex(BuildPartialIndex(showID, accumulated, total, n.policy))
			return formatNotFound(&domain.EpisodeNotFoundError{Number: number}), nil
		}

		for i, ep := range result.Episodes {
			if n.policy.NumberAt(len(accumulated)+i, total) == number {
				accumulated = append(accumulated, result.Episodes[:i+1]...)
				n.installIndex(BuildPartialIndex(showID, accumulated, total, n.policy))
				n.logger.Debug("located episode via scan",
					"showID", showID, "number", number, "pagesFetched", page)
				return formatLocated(ep, number, SearchMethodScan, size), nil
			}
		}
		accumulated = append(accumulated, result.Episodes...)

		if len(result.Episodes) == 0 || len(accumulated) >= total {
			n.installIndex(BuildPartialIndex(showID, accumulated, total, n.policy))
			return formatNotFound(&domain.EpisodeNotFoundError{Number: number}), nil
		}
		page++
	}
}

// ReconcilePageForNewSize recomputes the current page after a page-size
// change so the first visible item stays in view. Callers clamp the result
// through the next ListPage call.
func (n *Navigator) ReconcilePageForNewSize(oldPage, oldSize, newSize int) (int, error) {
	return paging.ReconcilePage(oldPage, oldSize, newSize)
}

// InvalidateShow drops the cached index for one show. Call it whenever the
// show's underlying collection may have changed.
func (n *Navigator) InvalidateShow(showID string) {
	n.mu.Lock()
	delete(n.indexes, showID)
	n.mu.Unlock()
}

// InvalidateAll drops every cached index.
func (n *Navigator) InvalidateAll() {
	n.mu.Lock()
	n.indexes = make(map[string]*Index)
	n.mu.Unlock()
}

func (n *Navigator) cachedIndex(showID string) *Index {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.indexes[showID]
}

// installIndex atomically replaces the cached index for the snapshot's show.
func (n *Navigator) installIndex(ix *Index) {
	n.mu.Lock()
	n.indexes[ix.ShowID()] = ix
	n.mu.Unlock()
}
