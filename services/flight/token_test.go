package flight

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, exchanges *int64, expiresIn int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/security/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		require.Equal(t, "key", r.PostForm.Get("client_id"))
		require.Equal(t, "secret", r.PostForm.Get("client_secret"))

		n := atomic.AddInt64(exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":%d}`, n, expiresIn)
	}))
}

func TestTokenIsCachedAcrossCalls(t *testing.T) {
	var exchanges int64
	srv := newTokenServer(t, &exchanges, 1799)
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "key", "secret", srv.Client())

	first, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	second, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&exchanges), "second call must be served from cache")
}

func TestTokenRefreshesAfterExpiry(t *testing.T) {
	var exchanges int64
	srv := newTokenServer(t, &exchanges, 1800)
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "key", "secret", srv.Client())

	clock := time.Now()
	ts.now = func() time.Time { return clock }

	_, err := ts.Token(context.Background())
	require.NoError(t, err)

	// 1800s minus the 5-minute safety margin is a 25-minute cache.
	clock = clock.Add(24 * time.Minute)
	_, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&exchanges))

	clock = clock.Add(2 * time.Minute)
	tok, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok)
	assert.Equal(t, int64(2), atomic.LoadInt64(&exchanges))
}

func TestTokenConcurrentCallersShareOneExchange(t *testing.T) {
	var exchanges int64
	srv := newTokenServer(t, &exchanges, 1800)
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "key", "secret", srv.Client())

	const callers = 20
	tokens := make([]string, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			tok, err := ts.Token(context.Background())
			assert.NoError(t, err)
			tokens[i] = tok
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&exchanges), "racing callers must share a single exchange")
	for _, tok := range tokens {
		assert.Equal(t, "token-1", tok)
	}
}

func TestTokenFailureIsNotCached(t *testing.T) {
	var exchanges int64
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&exchanges, 1)
		if fail {
			http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"token-ok","expires_in":1800}`)
	}))
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "key", "secret", srv.Client())

	_, err := ts.Token(context.Background())
	var authErr AuthError
	require.ErrorAs(t, err, &authErr)

	// The failure must not poison the cache: the next call retries.
	fail = false
	tok, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-ok", tok)
	assert.Equal(t, int64(2), atomic.LoadInt64(&exchanges))
}

func TestTokenInvalidateForcesReExchange(t *testing.T) {
	var exchanges int64
	srv := newTokenServer(t, &exchanges, 1800)
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "key", "secret", srv.Client())

	_, err := ts.Token(context.Background())
	require.NoError(t, err)

	ts.Invalidate()

	tok, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok)
	assert.Equal(t, int64(2), atomic.LoadInt64(&exchanges))
}

func TestTokenMissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"expires_in":1800}`)
	}))
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "key", "secret", srv.Client())

	_, err := ts.Token(context.Background())

	var authErr AuthError
	require.ErrorAs(t, err, &authErr)
}
