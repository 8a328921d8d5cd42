package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/weehong/spotify-episode-viewer-cli-sub001/internal/domain"
)

// tokenExpirySlack renews tokens slightly early so in-flight requests never
// carry a token that expires mid-request.
const tokenExpirySlack = 30 * time.Second

// tokenManager implements the client-credentials flow and renews the access
// token transparently. The catalog-browsing endpoints need no user consent.
type tokenManager struct {
	accountsURL  string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenManager(accountsURL, clientID, clientSecret string, httpClient *http.Client) *tokenManager {
	return &tokenManager{
		accountsURL:  accountsURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
	}
}

// Token returns a valid access token, requesting a fresh one when the cached
// token is missing or about to expire.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && time.Now().Before(m.expiresAt.Add(-tokenExpirySlack)) {
		return m.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.accountsURL+"/api/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(m.clientID, m.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", domain.ErrCatalogOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return "", domain.ErrAuthFailed
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	m.token = tr.AccessToken
	m.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return m.token, nil
}

// Invalidate discards the cached token, forcing a renewal on the next call.
func (m *tokenManager) Invalidate() {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}
