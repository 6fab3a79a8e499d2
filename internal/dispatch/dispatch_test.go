package dispatch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingServer records how many requests it received and serves the given
// status sequence, repeating the last entry once the sequence is exhausted.
type countingServer struct {
	srv   *httptest.Server
	hits  atomic.Int64
	codes []int
	body  string
}

func newCountingServer(t *testing.T, body string, codes ...int) *countingServer {
	t.Helper()
	cs := &countingServer{codes: codes, body: body}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := cs.hits.Add(1)
		code := cs.codes[len(cs.codes)-1]
		if int(n) <= len(cs.codes) {
			code = cs.codes[n-1]
		}
		w.WriteHeader(code)
		_, _ = io.WriteString(w, cs.body)
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func newTestClient(primary, fallback string) *Client {
	c := New(primary, fallback)
	c.BaseDelay = time.Millisecond
	return c
}

func TestRetriesServerErrorsOnPrimary(t *testing.T) {
	primary := newCountingServer(t, "primary-ok", http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusOK)
	fallback := newCountingServer(t, "fallback", http.StatusOK)

	c := newTestClient(primary.srv.URL, fallback.srv.URL)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "primary-ok", string(body))
	assert.Equal(t, int64(3), primary.hits.Load())
	assert.Equal(t, int64(0), fallback.hits.Load(), "fallback must not be touched while the primary recovers")
}

func TestFailsOverImmediatelyOnNetworkError(t *testing.T) {
	// A closed server yields a connection-level failure on the first attempt.
	primary := httptest.NewServer(http.NotFoundHandler())
	primaryURL := primary.URL
	primary.Close()

	fallback := newCountingServer(t, "fallback-ok", http.StatusOK)

	c := newTestClient(primaryURL, fallback.srv.URL)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "fallback-ok", string(body))
	// The primary's remaining retry budget is skipped entirely.
	assert.Equal(t, int64(1), fallback.hits.Load())
}

func TestClientErrorsReturnWithoutRetryOrFailover(t *testing.T) {
	primary := newCountingServer(t, `{"error":"not found"}`, http.StatusNotFound)
	fallback := newCountingServer(t, "fallback", http.StatusOK)

	c := newTestClient(primary.srv.URL, fallback.srv.URL)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/file/missing", nil, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(1), primary.hits.Load())
	assert.Equal(t, int64(0), fallback.hits.Load())
}

func TestFallbackRetriesItsOwnBudget(t *testing.T) {
	primary := httptest.NewServer(http.NotFoundHandler())
	primaryURL := primary.URL
	primary.Close()

	fallback := newCountingServer(t, "eventually", http.StatusBadGateway, http.StatusOK)

	c := newTestClient(primaryURL, fallback.srv.URL)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), fallback.hits.Load())
}

func TestExhaustedServerErrorsReturnLastResponse(t *testing.T) {
	primary := newCountingServer(t, "primary-down", http.StatusInternalServerError)
	fallback := newCountingServer(t, "fallback-down", http.StatusBadGateway)

	c := newTestClient(primary.srv.URL, fallback.srv.URL)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// Once an endpoint answers at all, the caller gets a real response, even
	// a 5xx, never a synthesized error.
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int64(c.MaxRetries)+1, primary.hits.Load())
	assert.Equal(t, int64(c.MaxRetries)+1, fallback.hits.Load())
}

func TestBothEndpointsUnreachableIsTerminal(t *testing.T) {
	primary := httptest.NewServer(http.NotFoundHandler())
	primaryURL := primary.URL
	primary.Close()
	fallback := httptest.NewServer(http.NotFoundHandler())
	fallbackURL := fallback.URL
	fallback.Close()

	c := newTestClient(primaryURL, fallbackURL)
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "both endpoints unreachable")
}

func TestNoFallbackConfigured(t *testing.T) {
	primary := newCountingServer(t, "down", http.StatusInternalServerError)

	c := newTestClient(primary.srv.URL, "")
	resp, err := c.Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int64(c.MaxRetries)+1, primary.hits.Load())
}

func TestForwardsHeadersAndBody(t *testing.T) {
	var gotToken string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Upload-Token")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	header := http.Header{}
	header.Set("X-Upload-Token", "abc123")
	c := newTestClient(srv.URL, "")
	resp, err := c.Do(context.Background(), http.MethodPost, "/api/verify", header, []byte(`{"ping":true}`))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "abc123", gotToken)
	assert.Equal(t, `{"ping":true}`, string(gotBody))
}

func TestContextCancellationStopsRetrying(t *testing.T) {
	primary := newCountingServer(t, "down", http.StatusInternalServerError)
	fallback := newCountingServer(t, "fallback", http.StatusOK)

	c := newTestClient(primary.srv.URL, fallback.srv.URL)
	c.BaseDelay = 50 * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := c.Do(ctx, http.MethodGet, "/api/health", nil, nil)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(0), fallback.hits.Load())
}
