package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/store"
)

func TestFavoritesToggle(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	favs := NewFavorites(st, nil)
	show := domain.Show{ID: "show-1", Name: "Test Show"}

	assert.Empty(t, favs.List())
	assert.False(t, favs.IsFavorite("show-1"))

	saved, err := favs.Toggle(show)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, favs.IsFavorite("show-1"))
	require.Len(t, favs.List(), 1)
	assert.Equal(t, "Test Show", favs.List()[0].Name)

	saved, err = favs.Toggle(show)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, favs.IsFavorite("show-1"))
	assert.Empty(t, favs.List())
}
