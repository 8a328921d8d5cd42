package service

import (
	"log/slog"
	"time"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

// Favorites manages the user's locally saved shows.
type Favorites struct {
	store  domain.Store
	logger *slog.Logger
}

// NewFavorites creates a favorites service.
func NewFavorites(store domain.Store, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.Default()
	}
	return &Favorites{store: store, logger: logger}
}

// List returns saved shows in the order they were added.
func (f *Favorites) List() []domain.FavoriteShow {
	favs, ok := f.store.GetFavorites()
	if !ok {
		return nil
	}
	return favs
}

// IsFavorite reports whether the show is saved.
func (f *Favorites) IsFavorite(showID string) bool {
	return f.store.IsFavorite(showID)
}

// Toggle adds the show to favorites if absent and removes it otherwise,
// returning whether it is now a favorite.
func (f *Favorites) Toggle(show domain.Show) (bool, error) {
	if f.store.IsFavorite(show.ID) {
		if err := f.store.RemoveFavorite(show.ID); err != nil {
			f.logger.Error("failed to remove favorite", "error", err, "showID", show.ID)
			return true, err
		}
		f.logger.Info("removed favorite", "showID", show.ID, "name", show.Name)
		return false, nil
	}

	fav := domain.FavoriteShow{Show: show, AddedAt: time.Now().Unix()}
	if err := f.store.SaveFavorite(fav); err != nil {
		f.logger.Error("failed to save favorite", "error", err, "showID", show.ID)
		return false, err
	}
	f.logger.Info("added favorite", "showID", show.ID, "name", show.Name)
	return true, nil
}
