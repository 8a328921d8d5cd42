package navigator

import (
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

// Index maps ordinal episode numbers to episodes for O(1) lookup. It is a
// derived cache over one snapshot of a show's collection, scoped by show ID;
// it is rebuilt wholesale when the snapshot changes, never patched in place.
type Index struct {
	showID   string
	total    int // Collection size the ordinals were computed against
	byNumber map[int]domain.Episode
}

// BuildIndex numbers a full snapshot (total = len(episodes)) under the policy.
func BuildIndex(showID string, episodes []domain.Episode, policy NumberingPolicy) *Index {
	return BuildPartialIndex(showID, episodes, len(episodes), policy)
}

// BuildPartialIndex numbers a leading slice of the collection against the
// known collection total, so an index accumulated from the first pages of a
// scan still carries correct ordinals.
func BuildPartialIndex(showID string, episodes []domain.Episode, total int, policy NumberingPolicy) *Index {
	byNumber := make(map[int]domain.Episode, len(episodes))
	for i, ep := range episodes {
		byNumber[policy.NumberAt(i, total)] = ep
	}
	return &Index{
		showID:   showID,
		total:    total,
		byNumber: byNumber,
	}
}

// Lookup returns the episode with the given ordinal, if the index holds it.
func (ix *Index) Lookup(number int) (domain.Episode, bool) {
	ep, ok := ix.byNumber[number]
	return ep, ok
}

// Total returns the collection size the index was built against.
func (ix *Index) Total() int { return ix.total }

// Len returns the number of episodes materialized in the index.
func (ix *Index) Len() int { return len(ix.byNumber) }

// ShowID returns the show the index is scoped to.
func (ix *Index) ShowID() string { return ix.showID }
