// Package search provides local fuzzy filtering over shows already in hand:
// catalog search results and the favorites list. Catalog-side search lives
// in the spotify client; this is purely in-memory ranking.
package search

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

// RankShows orders shows by fuzzy relevance to the query. An empty query
// returns the input unchanged; shows that do not match at all are dropped.
func RankShows(query string, shows []domain.Show) []domain.Show {
	if query == "" {
		return shows
	}

	titles := make([]string, len(shows))
	for i, s := range shows {
		titles[i] = s.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	ranked := make([]domain.Show, 0, len(ranks))
	for _, r := range ranks {
		ranked = append(ranked, shows[r.OriginalIndex])
	}
	return ranked
}

// FavoriteMatch is one favorites row that matched a filter, with the
// character positions that matched for highlighting.
type FavoriteMatch struct {
	Favorite       domain.FavoriteShow
	MatchedIndexes []int
}

// FilterFavorites narrows the favorites list as the user types. An empty
// pattern keeps everything, with no highlights.
func FilterFavorites(pattern string, favorites []domain.FavoriteShow) []FavoriteMatch {
	if pattern == "" {
		matches := make([]FavoriteMatch, len(favorites))
		for i, fav := range favorites {
			matches[i] = FavoriteMatch{Favorite: fav}
		}
		return matches
	}

	names := make([]string, len(favorites))
	for i, fav := range favorites {
		names[i] = fav.Name
	}

	results := sahilm.Find(pattern, names)
	matches := make([]FavoriteMatch, len(results))
	for i, r := range results {
		matches[i] = FavoriteMatch{
			Favorite:       favorites[r.Index],
			MatchedIndexes: r.MatchedIndexes,
		}
	}
	return matches
}
