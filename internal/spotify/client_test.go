package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/paging"
)

// newTestEnv stands up fake accounts + API servers backed by a generated
// 130-episode show, and a client pointed at them.
func newTestEnv(t *testing.T) (*Client, *int) {
	t.Helper()

	tokenRequests := 0
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test-id" || pass != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(accounts.Close)

	const totalEpisodes = 130
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.URL.Path {
		case "/v1/search":
			json.NewEncoder(w).Encode(map[string]any{
				"shows": map[string]any{
					"items": []map[string]any{
						{"id": "show-1", "name": "Test Show", "publisher": "Testers", "total_episodes": totalEpisodes},
					},
					"total": 1,
				},
			})

		case "/v1/shows/show-1/episodes":
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
			if limit <= 0 || limit > 50 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			var items []map[string]any
			for i := offset; i < offset+limit && i < totalEpisodes; i++ {
				items = append(items, map[string]any{
					"id":           fmt.Sprintf("ep-%d", i),
					"name":         fmt.Sprintf("Episode at position %d", i),
					"release_date": "2024-01-02",
					"duration_ms":  1800000,
				})
			}
			json.NewEncoder(w).Encode(map[string]any{
				"items": items, "total": totalEpisodes, "limit": limit, "offset": offset,
			})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(api.Close)

	client := NewClient("test-id", "test-secret", "US", nil,
		WithBaseURLs(api.URL, accounts.URL))
	return client, &tokenRequests
}

func TestSearchShows(t *testing.T) {
	client, tokenRequests := newTestEnv(t)

	shows, err := client.SearchShows(context.Background(), "test", 20)
	require.NoError(t, err)

	require.Len(t, shows, 1)
	assert.Equal(t, "show-1", shows[0].ID)
	assert.Equal(t, "Test Show", shows[0].Name)
	assert.Equal(t, 130, shows[0].TotalEpisodes)

	// The token is fetched once and reused until it nears expiry.
	_, err = client.SearchShows(context.Background(), "again", 20)
	require.NoError(t, err)
	assert.Equal(t, 1, *tokenRequests)
}

func TestFetchEpisodePage(t *testing.T) {
	client, _ := newTestEnv(t)

	page, err := client.FetchEpisodePage(context.Background(), "show-1", 2, 10)
	require.NoError(t, err)

	require.Len(t, page.Episodes, 10)
	assert.Equal(t, "ep-10", page.Episodes[0].ID)
	assert.Equal(t, 130, page.Window.TotalItems)
	assert.Equal(t, 2, page.Window.CurrentPage)
	assert.Equal(t, 13, page.Window.TotalPages)
}

func TestFetchEpisodePageBeyondAPILimit(t *testing.T) {
	client, _ := newTestEnv(t)

	// 80 > the API's 50-item cap, so the page is assembled from two requests.
	page, err := client.FetchEpisodePage(context.Background(), "show-1", 1, 80)
	require.NoError(t, err)

	require.Len(t, page.Episodes, 80)
	assert.Equal(t, "ep-0", page.Episodes[0].ID)
	assert.Equal(t, "ep-79", page.Episodes[79].ID)
	assert.Equal(t, 2, page.Window.TotalPages)
}

func TestFetchEpisodePageUnlimited(t *testing.T) {
	client, _ := newTestEnv(t)

	page, err := client.FetchEpisodePage(context.Background(), "show-1", 1, paging.Unlimited)
	require.NoError(t, err)

	assert.Len(t, page.Episodes, 130)
	assert.Equal(t, 1, page.Window.TotalPages)
	assert.Equal(t, paging.Unlimited, page.Window.PageSize)
}

func TestFetchAllEpisodes(t *testing.T) {
	client, _ := newTestEnv(t)

	episodes, err := client.FetchAllEpisodes(context.Background(), "show-1")
	require.NoError(t, err)
	assert.Len(t, episodes, 130)
}

func TestUnknownShowIsNotFound(t *testing.T) {
	client, _ := newTestEnv(t)

	_, err := client.FetchEpisodePage(context.Background(), "missing", 1, 10)
	assert.ErrorIs(t, err, domain.ErrShowNotFound)
}

func TestBadCredentials(t *testing.T) {
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(accounts.Close)

	client := NewClient("bad", "creds", "", nil, WithBaseURLs("http://unused.invalid", accounts.URL))
	_, err := client.SearchShows(context.Background(), "q", 10)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}
