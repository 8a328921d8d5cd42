package domain

import (
	"fmt"
	"time"
)

// Show represents one show in the upstream podcast catalog.
type Show struct {
	ID            string // Catalog-assigned identifier
	Name          string // Display name
	Publisher     string // Publisher/network name
	Description   string // Show synopsis (may contain HTML)
	TotalEpisodes int    // Episode count reported by the catalog
	Explicit      bool   // Whether the show is flagged explicit
	ImageURL      string // Cover art URL
	SourceURL     string // Public web URL for the show
}

// Episode is an immutable record for one episode of a show. Its ordinal
// number is not part of the record: it is assigned by position within the
// show's ordered collection, which is why NavigationEpisode exists.
type Episode struct {
	ID          string        // Catalog-assigned identifier
	Title       string        // Display title
	Description string        // Episode synopsis (may contain HTML)
	ReleaseDate time.Time     // Publication date
	Duration    time.Duration // Total runtime
	Explicit    bool          // Whether the episode is flagged explicit
	SourceURL   string        // Public web URL for the episode
}

// FormattedDuration returns the duration in a human-readable format.
func (e Episode) FormattedDuration() string {
	h := int(e.Duration.Hours())
	mins := int(e.Duration.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormattedReleaseDate returns the release date as YYYY-MM-DD, or an empty
// string when the catalog supplied no date.
func (e Episode) FormattedReleaseDate() string {
	if e.ReleaseDate.IsZero() {
		return ""
	}
	return e.ReleaseDate.Format("2006-01-02")
}

// FavoriteShow is a show the user saved locally, with the time it was added.
type FavoriteShow struct {
	Show
	AddedAt int64 // Unix timestamp when favorited
}
