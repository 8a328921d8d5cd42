package navigator

// NumberingPolicy fixes how ordinal episode numbers map onto a snapshot's
// order. The same policy must be used everywhere numbers are surfaced to the
// user, or "list" and "jump to #N" views will disagree.
type NumberingPolicy int

const (
	// NewestFirst numbers a newest-first collection so the oldest episode is
	// #1: the item at position 0 gets the highest number. This matches the
	// catalog's release_date desc ordering.
	NewestFirst NumberingPolicy = iota

	// OldestFirst numbers position 0 as episode #1.
	OldestFirst
)

// NumberAt returns the ordinal for the item at the given 0-based position
// within a collection of total items.
func (p NumberingPolicy) NumberAt(position, total int) int {
	if p == OldestFirst {
		return position + 1
	}
	return total - position
}

// PositionOf is the inverse of NumberAt: the 0-based position holding the
// given ordinal. The ordinal is not range-checked here.
func (p NumberingPolicy) PositionOf(number, total int) int {
	if p == OldestFirst {
		return number - 1
	}
	return total - number
}
