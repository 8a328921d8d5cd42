package spotify

// Raw JSON shapes returned by the Spotify Web API. Mapped to domain types in
// mapper.go; nothing outside this package sees them.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

type image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type showObject struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Publisher     string       `json:"publisher"`
	Description   string       `json:"description"`
	HTMLDesc      string       `json:"html_description"`
	Explicit      bool         `json:"explicit"`
	TotalEpisodes int          `json:"total_episodes"`
	Images        []image      `json:"images"`
	ExternalURLs  externalURLs `json:"external_urls"`
}

type episodeObject struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	HTMLDesc     string       `json:"html_description"`
	ReleaseDate  string       `json:"release_date"`
	DurationMS   int64        `json:"duration_ms"`
	Explicit     bool         `json:"explicit"`
	ExternalURLs externalURLs `json:"external_urls"`
}

type searchResponse struct {
	Shows struct {
		Items []showObject `json:"items"`
		Total int          `json:"total"`
	} `json:"shows"`
}

type episodesResponse struct {
	Items  []episodeObject `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Next   string          `json:"next"`
}
