package spotify

import (
	"time"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

// MapShow converts an API show object to a domain Show.
func MapShow(s showObject) domain.Show {
	return domain.Show{
		ID:            s.ID,
		Name:          s.Name,
		Publisher:     s.Publisher,
		Description:   pickDescription(s.HTMLDesc, s.Description),
		TotalEpisodes: s.TotalEpisodes,
		Explicit:      s.Explicit,
		ImageURL:      firstImageURL(s.Images),
		SourceURL:     s.ExternalURLs.Spotify,
	}
}

// MapShows converts a slice of API show objects.
func MapShows(objects []showObject) []domain.Show {
	shows := make([]domain.Show, len(objects))
	for i, obj := range objects {
		shows[i] = MapShow(obj)
	}
	return shows
}

// MapEpisode converts an API episode object to a domain Episode.
func MapEpisode(e episodeObject) domain.Episode {
	return domain.Episode{
		ID:          e.ID,
		Title:       e.Name,
		Description: pickDescription(e.HTMLDesc, e.Description),
		ReleaseDate: parseReleaseDate(e.ReleaseDate),
		Duration:    time.Duration(e.DurationMS) * time.Millisecond,
		Explicit:    e.Explicit,
		SourceURL:   e.ExternalURLs.Spotify,
	}
}

// MapEpisodes converts a slice of API episode objects.
func MapEpisodes(objects []episodeObject) []domain.Episode {
	episodes := make([]domain.Episode, len(objects))
	for i, obj := range objects {
		episodes[i] = MapEpisode(obj)
	}
	return episodes
}

// pickDescription prefers the HTML description, which preserves paragraph
// structure the plain-text field flattens. The TUI renders HTML to text.
func pickDescription(html, plain string) string {
	if html != "" {
		return html
	}
	return plain
}

func firstImageURL(images []image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// parseReleaseDate handles the API's variable date precision: full dates,
// year-month, or bare years depending on release_date_precision.
func parseReleaseDate(raw string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
