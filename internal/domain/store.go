package domain

// EpisodeSnapshot is one materialized copy of a show's full episode
// collection, in canonical order, with the time it was fetched. Freshness
// decisions belong to the service layer.
type EpisodeSnapshot struct {
	ShowID    string
	Episodes  []Episode
	FetchedAt int64 // Unix timestamp
}

// Store handles the local cache (BoltDB + memory): persisted favorites and
// per-show episode snapshots.
type Store interface {
	// === Favorites ===
	GetFavorites() ([]FavoriteShow, bool)
	SaveFavorite(fav FavoriteShow) error
	RemoveFavorite(showID string) error
	IsFavorite(showID string) bool

	// === Episode snapshots ===
	GetEpisodeSnapshot(showID string) (EpisodeSnapshot, bool)
	SaveEpisodeSnapshot(snap EpisodeSnapshot) error

	// === Invalidation ===
	InvalidateShow(showID string)
	InvalidateAll()

	Close() error
}
