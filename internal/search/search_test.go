package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

func TestRankShows(t *testing.T) {
	shows := []domain.Show{
		{ID: "1", Name: "The Daily"},
		{ID: "2", Name: "Radiolab"},
		{ID: "3", Name: "Daily Tech News"},
	}

	ranked := RankShows("daily", shows)
	require.Len(t, ranked, 2)
	for _, s := range ranked {
		assert.NotEqual(t, "2", s.ID)
	}
	// Closest title first: "The Daily" beats "Daily Tech News".
	assert.Equal(t, "1", ranked[0].ID)
	assert.Equal(t, "3", ranked[1].ID)

	assert.Equal(t, shows, RankShows("", shows))
	assert.Empty(t, RankShows("zzzzz", shows))
}

func TestFilterFavorites(t *testing.T) {
	favs := []domain.FavoriteShow{
		{Show: domain.Show{ID: "1", Name: "Hard Fork"}},
		{Show: domain.Show{ID: "2", Name: "Planet Money"}},
	}

	all := FilterFavorites("", favs)
	require.Len(t, all, 2)
	assert.Empty(t, all[0].MatchedIndexes)

	matched := FilterFavorites("fork", favs)
	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].Favorite.ID)
	assert.NotEmpty(t, matched[0].MatchedIndexes)
}
