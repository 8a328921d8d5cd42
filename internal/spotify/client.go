// Package spotify is the HTTP client for the Spotify Web API catalog
// endpoints used by the viewer: show search, show lookup, and episode pages.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

const (
	defaultBaseURL     = "https://api.spotify.com"
	defaultAccountsURL = "https://accounts.spotify.com"
	defaultTimeout     = 30 * time.Second
	userAgent          = "spotify-episode-viewer/1.0"

	// maxPageLimit is the largest page the episodes endpoint will serve.
	maxPageLimit = 50
)

// Client implements domain.ShowCatalog and domain.EpisodeSource against the
// Spotify Web API. Requests are throttled client-side so interactive paging
// stays clear of the API's rate limits.
type Client struct {
	baseURL    string
	market     string
	httpClient *http.Client
	tokens     *tokenManager
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURLs overrides the API and accounts endpoints, used by tests.
func WithBaseURLs(apiURL, accountsURL string) Option {
	return func(c *Client) {
		c.baseURL = apiURL
		c.tokens.accountsURL = accountsURL
	}
}

// NewClient creates a Spotify Web API client using the client-credentials
// flow. market is the ISO country code sent with catalog requests.
func NewClient(clientID, clientSecret, market string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := &http.Client{Timeout: defaultTimeout}

	c := &Client{
		baseURL:    defaultBaseURL,
		market:     market,
		httpClient: httpClient,
		tokens:     newTokenManager(defaultAccountsURL, clientID, clientSecret, httpClient),
		limiter:    rate.NewLimiter(rate.Limit(8), 4),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs an authenticated GET against the API.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + path
	if query != nil {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("spotify request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("spotify request failed", "error", err)
		return nil, domain.ErrCatalogOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		// Token may have been revoked server-side; drop it so the next
		// request starts a fresh credentials exchange.
		c.tokens.Invalidate()
		return nil, domain.ErrAuthFailed
	case http.StatusNotFound:
		return nil, domain.ErrShowNotFound
	default:
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("spotify api error (status %d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

// SearchShows searches the catalog for shows matching the query.
func (c *Client) SearchShows(ctx context.Context, query string, limit int) ([]domain.Show, error) {
	if limit <= 0 || limit > maxPageLimit {
		limit = 20
	}

	q := url.Values{
		"q":     {query},
		"type":  {"show"},
		"limit": {strconv.Itoa(limit)},
	}
	if c.market != "" {
		q.Set("market", c.market)
	}

	body, err := c.doRequest(ctx, "/v1/search", q)
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	c.logger.Debug("searched shows", "query", query, "count", len(sr.Shows.Items))
	return MapShows(sr.Shows.Items), nil
}

// GetShow returns a single show by ID.
func (c *Client) GetShow(ctx context.Context, showID string) (*domain.Show, error) {
	q := url.Values{}
	if c.market != "" {
		q.Set("market", c.market)
	}

	body, err := c.doRequest(ctx, "/v1/shows/"+showID, q)
	if err != nil {
		return nil, err
	}

	var obj showObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse show response: %w", err)
	}

	show := MapShow(obj)
	return &show, nil
}

// FetchEpisodePage returns one page of a show's episodes in the catalog's
// newest-first order. Page sizes beyond the API's per-request limit are
// assembled from consecutive requests; paging.Unlimited fetches everything.
func (c *Client) FetchEpisodePage(ctx context.Context, showID string, page int, size paging.Size) (domain.EpisodePage, error) {
	if page < 1 {
		page = 1
	}
	if !size.Valid() {
		return domain.EpisodePage{}, paging.ErrInvalidPageSize
	}

	if size.IsUnlimited() {
		episodes, total, err := c.fetchEpisodeRange(ctx, showID, 0, -1)
		if err != nil {
			return domain.EpisodePage{}, err
		}
		window, err := paging.ComputeWindow(total, 1, paging.Unlimited)
		if err != nil {
			return domain.EpisodePage{}, err
		}
		return domain.EpisodePage{Episodes: episodes, Window: window}, nil
	}

	offset := (page - 1) * int(size)
	episodes, total, err := c.fetchEpisodeRange(ctx, showID, offset, int(size))
	if err != nil {
		return domain.EpisodePage{}, err
	}

	window, err := paging.ComputeWindow(total, page, size)
	if err != nil {
		return domain.EpisodePage{}, err
	}
	return domain.EpisodePage{Episodes: episodes, Window: window}, nil
}

// FetchAllEpisodes returns the show's complete episode collection.
func (c *Client) FetchAllEpisodes(ctx context.Context, showID string) ([]domain.Episode, error) {
	episodes, _, err := c.fetchEpisodeRange(ctx, showID, 0, -1)
	return episodes, err
}

// fetchEpisodeRange fetches count episodes starting at offset, batching
// requests at the API's per-request limit. count < 0 means "to the end".
// Returns the episodes and the collection total reported by the API.
func (c *Client) fetchEpisodeRange(ctx context.Context, showID string, offset, count int) ([]domain.Episode, int, error) {
	var all []domain.Episode
	total := 0

	for {
		batch := maxPageLimit
		if count >= 0 {
			remaining := count - len(all)
			if remaining <= 0 {
				break
			}
			if remaining < batch {
				batch = remaining
			}
		}

		q := url.Values{
			"limit":  {strconv.Itoa(batch)},
			"offset": {strconv.Itoa(offset + len(all))},
		}
		if c.market != "" {
			q.Set("market", c.market)
		}

		body, err := c.doRequest(ctx, "/v1/shows/"+showID+"/episodes", q)
		if err != nil {
			return nil, 0, err
		}

		var er episodesResponse
		if err := json.Unmarshal(body, &er); err != nil {
			return nil, 0, fmt.Errorf("failed to parse episodes response: %w", err)
		}

		total = er.Total
		all = append(all, MapEpisodes(er.Items)...)

		if len(er.Items) == 0 || offset+len(all) >= total {
			break
		}
	}

	return all, total, nil
}
