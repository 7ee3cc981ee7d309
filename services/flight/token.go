package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"roamly/utils"

	"go.uber.org/zap"
)

const (
	// tokenSafetyMargin is subtracted from the provider-stated expiry so the
	// cached token is retired before the provider would reject it. For the
	// nominal 30-minute token this yields a 25-minute cache.
	tokenSafetyMargin = 5 * time.Minute

	// defaultTokenTTL applies when the provider omits expires_in.
	defaultTokenTTL = 25 * time.Minute
)

// TokenSource holds a single bearer token for the flight provider, shared by
// all concurrent callers. A miss performs the client-credentials exchange
// under the lock, so racing callers wait for one exchange instead of issuing
// their own. Failures are never cached.
type TokenSource struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time

	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	now        func() time.Time
}

// NewTokenSource creates a token source for the given provider credentials.
func NewTokenSource(baseURL, apiKey, apiSecret string, httpClient *http.Client) *TokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &TokenSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Token returns the cached bearer token, performing the credential exchange
// when none is held or the cached one has passed its TTL.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiresAt) {
		return ts.token, nil
	}

	token, ttl, err := ts.exchange(ctx)
	if err != nil {
		return "", AuthError{Err: err}
	}

	ts.token = token
	ts.expiresAt = ts.now().Add(ttl)
	return token, nil
}

// Invalidate drops the cached token so the next call re-exchanges.
func (ts *TokenSource) Invalidate() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = ""
	ts.expiresAt = time.Time{}
}

func (ts *TokenSource) exchange(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", ts.apiKey)
	form.Set("client_secret", ts.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ts.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", 0, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", 0, errors.New("token response contained no access token")
	}

	ttl := defaultTokenTTL
	if payload.ExpiresIn > 0 {
		ttl = time.Duration(payload.ExpiresIn)*time.Second - tokenSafetyMargin
		if ttl <= 0 {
			ttl = time.Duration(payload.ExpiresIn) * time.Second / 2
		}
	}

	utils.GetLogger().Debug("flight provider token refreshed", zap.Duration("ttl", ttl))
	return payload.AccessToken, ttl, nil
}
