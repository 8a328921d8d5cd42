// Package service orchestrates the catalog client and local store behind the
// interfaces the navigation engine and the TUI consume.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

const defaultChunkSize = 50

// ProgressFunc reports incremental progress during a show sync.
type ProgressFunc func(loaded, total int)

// CatalogClient is the upstream surface the catalog service needs. The
// Spotify client satisfies it; tests substitute fakes.
type CatalogClient interface {
	domain.ShowCatalog
	domain.EpisodeSource
	FetchAllEpisodes(ctx context.Context, showID string) ([]domain.Episode, error)
}

// Catalog serves shows and episode pages, materializing full episode
// snapshots in the store so repeat navigation within a session never refetches.
// It implements domain.EpisodeSource and domain.CollectionSource: the
// collection fast path is advertised only once a fresh snapshot exists.
type Catalog struct {
	client CatalogClient
	store  domain.Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalog creates a catalog service. ttl bounds how long an episode
// snapshot is trusted before it must be refetched.
func NewCatalog(client CatalogClient, store domain.Store, ttl time.Duration, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{client: client, store: store, ttl: ttl, logger: logger}
}

// SearchShows searches the upstream catalog.
func (c *Catalog) SearchShows(ctx context.Context, query string, limit int) ([]domain.Show, error) {
	shows, err := c.client.SearchShows(ctx, query, limit)
	if err != nil {
		c.logger.Error("show search failed", "error", err, "query", query)
		return nil, err
	}
	c.logger.Debug("searched shows", "query", query, "count", len(shows))
	return shows, nil
}

// GetShow returns a single show by ID.
func (c *Catalog) GetShow(ctx context.Context, showID string) (*domain.Show, error) {
	return c.client.GetShow(ctx, showID)
}

// FetchEpisodePage serves one page of the show's collection: from the local
// snapshot when a fresh one exists, from the upstream client otherwise.
func (c *Catalog) FetchEpisodePage(ctx context.Context, showID string, page int, size paging.Size) (domain.EpisodePage, error) {
	if snap, ok := c.freshSnapshot(showID); ok {
		window, err := paging.ComputeWindow(len(snap.Episodes), page, size)
		if err != nil {
			return domain.EpisodePage{}, err
		}
		start, end := window.Bounds()
		c.logger.Debug("served episode page from snapshot", "showID", showID, "page", window.CurrentPage)
		return domain.EpisodePage{Episodes: snap.Episodes[start:end], Window: window}, nil
	}

	result, err := c.client.FetchEpisodePage(ctx, showID, page, size)
	if err != nil {
		c.logger.Error("episode page fetch failed", "error", err, "showID", showID, "page", page)
		return domain.EpisodePage{}, err
	}
	return result, nil
}

// FetchAllEpisodes returns the show's full collection, materializing and
// persisting a snapshot when none is fresh.
func (c *Catalog) FetchAllEpisodes(ctx context.Context, showID string) ([]domain.Episode, error) {
	if snap, ok := c.freshSnapshot(showID); ok {
		return snap.Episodes, nil
	}
	return c.SyncShow(ctx, showID, nil)
}

// HoldsCollection reports whether a fresh snapshot for the show is already
// materialized, making the full collection cheap to hand over.
func (c *Catalog) HoldsCollection(showID string) bool {
	_, ok := c.freshSnapshot(showID)
	return ok
}

// SyncShow pulls the show's complete collection page by page, reporting
// progress, and installs the result as the show's snapshot.
func (c *Catalog) SyncShow(ctx context.Context, showID string, onProgress ProgressFunc) ([]domain.Episode, error) {
	episodes, err := fetchAll(ctx,
		func(ctx context.Context, page int) ([]domain.Episode, int, error) {
			result, err := c.client.FetchEpisodePage(ctx, showID, page, defaultChunkSize)
			if err != nil {
				return nil, 0, err
			}
			return result.Episodes, result.Window.TotalItems, nil
		},
		onProgress,
	)
	if err != nil {
		c.logger.Error("show sync failed", "error", err, "showID", showID)
		return nil, fmt.Errorf("sync show %s: %w", showID, err)
	}

	snap := domain.EpisodeSnapshot{
		ShowID:    showID,
		Episodes:  episodes,
		FetchedAt: time.Now().Unix(),
	}
	if err := c.store.SaveEpisodeSnapshot(snap); err != nil {
		c.logger.Error("failed to save episode snapshot", "error", err, "showID", showID)
	}
	c.logger.Info("synced show", "showID", showID, "count", len(episodes))
	return episodes, nil
}

// InvalidateShow drops the show's snapshot, forcing a refetch.
func (c *Catalog) InvalidateShow(showID string) {
	c.store.InvalidateShow(showID)
	c.logger.Info("invalidated show snapshot", "showID", showID)
}

func (c *Catalog) freshSnapshot(showID string) (domain.EpisodeSnapshot, bool) {
	snap, ok := c.store.GetEpisodeSnapshot(showID)
	if !ok {
		return domain.EpisodeSnapshot{}, false
	}
	if c.ttl > 0 && time.Since(time.Unix(snap.FetchedAt, 0)) > c.ttl {
		return domain.EpisodeSnapshot{}, false
	}
	return snap, true
}

// fetchAll is a generic pagination helper: it walks 1-based pages until the
// reported total is reached or the supply runs dry.
func fetchAll(
	ctx context.Context,
	fetch func(ctx context.Context, page int) ([]domain.Episode, int, error),
	onProgress ProgressFunc,
) ([]domain.Episode, error) {
	var all []domain.Episode
	page := 1

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		items, total, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if onProgress != nil {
			onProgress(len(all), total)
		}

		if len(all) >= total || len(items) == 0 {
			break
		}
		page++
	}

	return all, nil
}
