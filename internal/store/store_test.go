package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

func newStore(t *testing.T) *ViewerStore {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFavoritesRoundTrip(t *testing.T) {
	s := newStore(t)

	_, ok := s.GetFavorites()
	assert.False(t, ok)
	assert.False(t, s.IsFavorite("show-1"))

	require.NoError(t, s.SaveFavorite(domain.FavoriteShow{
		Show:    domain.Show{ID: "show-2", Name: "Second"},
		AddedAt: 200,
	}))
	require.NoError(t, s.SaveFavorite(domain.FavoriteShow{
		Show:    domain.Show{ID: "show-1", Name: "First"},
		AddedAt: 100,
	}))

	favs, ok := s.GetFavorites()
	require.True(t, ok)
	require.Len(t, favs, 2)
	// Ordered by when they were added, not by key.
	assert.Equal(t, "show-1", favs[0].ID)
	assert.Equal(t, "show-2", favs[1].ID)
	assert.True(t, s.IsFavorite("show-1"))

	require.NoError(t, s.RemoveFavorite("show-1"))
	assert.False(t, s.IsFavorite("show-1"))
	favs, ok = s.GetFavorites()
	require.True(t, ok)
	assert.Len(t, favs, 1)
}

func TestEpisodeSnapshotRoundTrip(t *testing.T) {
	s := newStore(t)

	_, ok := s.GetEpisodeSnapshot("show-1")
	assert.False(t, ok)

	snap := domain.EpisodeSnapshot{
		ShowID: "show-1",
		Episodes: []domain.Episode{
			{ID: "ep-2", Title: "Two", Duration: 20 * time.Minute},
			{ID: "ep-1", Title: "One", Duration: 30 * time.Minute},
		},
		FetchedAt: time.Now().Unix(),
	}
	require.NoError(t, s.SaveEpisodeSnapshot(snap))

	got, ok := s.GetEpisodeSnapshot("show-1")
	require.True(t, ok)
	assert.Equal(t, snap.Episodes, got.Episodes)
	assert.Equal(t, snap.FetchedAt, got.FetchedAt)
}

func TestInvalidateShowDropsSnapshotOnly(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.SaveFavorite(domain.FavoriteShow{Show: domain.Show{ID: "show-1"}}))
	require.NoError(t, s.SaveEpisodeSnapshot(domain.EpisodeSnapshot{ShowID: "show-1"}))

	s.InvalidateShow("show-1")

	_, ok := s.GetEpisodeSnapshot("show-1")
	assert.False(t, ok)
	assert.True(t, s.IsFavorite("show-1"))
}

func TestInvalidateAll(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.SaveEpisodeSnapshot(domain.EpisodeSnapshot{ShowID: "show-1"}))
	require.NoError(t, s.SaveEpisodeSnapshot(domain.EpisodeSnapshot{ShowID: "show-2"}))
	require.NoError(t, s.SaveFavorite(domain.FavoriteShow{Show: domain.Show{ID: "show-1"}}))

	s.InvalidateAll()

	_, ok := s.GetEpisodeSnapshot("show-1")
	assert.False(t, ok)
	_, ok = s.GetEpisodeSnapshot("show-2")
	assert.False(t, ok)
	assert.True(t, s.IsFavorite("show-1"))
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveFavorite(domain.FavoriteShow{Show: domain.Show{ID: "show-1"}, AddedAt: 1}))
	favs, ok := s.GetFavorites()
	require.True(t, ok)
	assert.Len(t, favs, 1)

	require.NoError(t, s.SaveEpisodeSnapshot(domain.EpisodeSnapshot{ShowID: "show-1"}))
	_, ok = s.GetEpisodeSnapshot("show-1")
	assert.True(t, ok)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveFavorite(domain.FavoriteShow{Show: domain.Show{ID: "show-1", Name: "Kept"}}))
	require.NoError(t, s.Close())

	s, err = New(dir)
	require.NoError(t, err)
	defer s.Close()

	favs, ok := s.GetFavorites()
	require.True(t, ok)
	require.Len(t, favs, 1)
	assert.Equal(t, "Kept", favs[0].Name)
}
