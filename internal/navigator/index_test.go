package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberingPolicy(t *testing.T) {
	// Newest-first: position 0 holds the latest episode, the oldest is #1.
	assert.Equal(t, 10, NewestFirst.NumberAt(0, 10))
	assert.Equal(t, 1, NewestFirst.NumberAt(9, 10))
	assert.Equal(t, 0, NewestFirst.PositionOf(10, 10))
	assert.Equal(t, 9, NewestFirst.PositionOf(1, 10))

	assert.Equal(t, 1, OldestFirst.NumberAt(0, 10))
	assert.Equal(t, 10, OldestFirst.NumberAt(9, 10))
	assert.Equal(t, 0, OldestFirst.PositionOf(1, 10))

	// NumberAt and PositionOf are inverses across the whole range.
	for pos := 0; pos < 10; pos++ {
		assert.Equal(t, pos, NewestFirst.PositionOf(NewestFirst.NumberAt(pos, 10), 10))
		assert.Equal(t, pos, OldestFirst.PositionOf(OldestFirst.NumberAt(pos, 10), 10))
	}
}

func TestBuildIndexLookup(t *testing.T) {
	episodes := makeEpisodes(5)
	ix := BuildIndex("show-1", episodes, NewestFirst)

	assert.Equal(t, 5, ix.Total())
	assert.Equal(t, 5, ix.Len())
	assert.Equal(t, "show-1", ix.ShowID())

	ep, ok := ix.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "ep-001", ep.ID)

	ep, ok = ix.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "ep-005", ep.ID)

	_, ok = ix.Lookup(6)
	assert.False(t, ok)
	_, ok = ix.Lookup(0)
	assert.False(t, ok)
}

func TestBuildPartialIndexNumbersAgainstKnownTotal(t *testing.T) {
	episodes := makeEpisodes(100)

	// Only the first two pages are materialized, but the ordinals line up
	// with the full collection.
	ix := BuildPartialIndex("show-1", episodes[:20], 100, NewestFirst)
	assert.Equal(t, 100, ix.Total())
	assert.Equal(t, 20, ix.Len())

	ep, ok := ix.Lookup(100)
	require.True(t, ok)
	assert.Equal(t, "ep-100", ep.ID)

	ep, ok = ix.Lookup(81)
	require.True(t, ok)
	assert.Equal(t, "ep-081", ep.ID)

	// Ordinals beyond the materialized slice are misses, not wrong answers.
	_, ok = ix.Lookup(80)
	assert.False(t, ok)
}
