// Package dispatch implements the client-side resilient request policy: a
// primary (typically edge-accelerated) endpoint with retry on server errors,
// and a fallback origin endpoint used when the primary cannot answer. The
// dual-endpoint scheme routes around a flaky acceleration layer without
// taking the origin down with it.
package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultMaxRetries is the per-endpoint retry budget.
	DefaultMaxRetries = 3
	// DefaultBaseDelay is the linear backoff base: the wait before retry n
	// is n × base. Retry budgets are small, so linear suffices.
	DefaultBaseDelay = time.Second
	// DefaultTimeout bounds each individual attempt, so an endpoint that
	// never answers is treated as a network-level failure.
	DefaultTimeout = 30 * time.Second
)

// Client dispatches requests across a primary and a fallback endpoint.
// Attempts are strictly sequential; the two endpoints are never raced, so a
// single logical request produces at most one successful backend write.
type Client struct {
	Primary    string
	Fallback   string
	MaxRetries int
	BaseDelay  time.Duration
	HTTPClient *http.Client
}

// New creates a dispatcher with the default retry policy.
func New(primary, fallback string) *Client {
	return &Client{
		Primary:    primary,
		Fallback:   fallback,
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Do sends the request to the primary endpoint and returns the first
// response with status below 500 — 4xx included, since client errors are not
// transient and are the caller's to interpret. Server errors are retried
// against the primary with linear backoff; a network-level failure on the
// primary skips the rest of its budget and fails over. The fallback is
// entered at most once per call and runs its own mirrored retry loop. An
// error is returned only when both endpoints exhaust every retry without
// ever producing an HTTP response.
func (c *Client) Do(ctx context.Context, method, path string, header http.Header, body []byte) (*http.Response, error) {
	resp, err := c.attempt(ctx, c.Primary, method, path, header, body, true)
	if resp != nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if c.Fallback == "" || c.Fallback == c.Primary {
		if resp != nil {
			return resp, nil
		}
		return nil, fmt.Errorf("endpoint %s unreachable: %w", c.Primary, err)
	}

	fresp, ferr := c.attempt(ctx, c.Fallback, method, path, header, body, false)
	if fresp != nil {
		if resp != nil {
			discard(resp)
		}
		return fresp, nil
	}
	// The fallback never answered; a late 5xx from the primary is still a
	// structurally valid response and beats a terminal error.
	if resp != nil {
		return resp, nil
	}
	return nil, fmt.Errorf("both endpoints unreachable: %w", errors.Join(err, ferr))
}

// attempt runs the retry loop against one base URL. On the primary leg a
// network-level failure aborts the loop so Do can fail over; on the fallback
// leg it is retried, since there is nowhere left to go. A 5xx on the final
// try is returned as a response, not an error.
func (c *Client) attempt(ctx context.Context, base, method, path string, header http.Header, body []byte, primaryLeg bool) (*http.Response, error) {
	var lastErr error
	for i := 0; i <= c.MaxRetries; i++ {
		if i > 0 {
			if err := c.sleep(ctx, time.Duration(i)*c.BaseDelay); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, base+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		for k, vv := range header {
			req.Header[k] = vv
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if primaryLeg {
				return nil, err
			}
			continue
		}
		if resp.StatusCode < 500 {
			return resp, nil
		}
		if i == c.MaxRetries {
			return resp, nil
		}
		discard(resp)
		lastErr = fmt.Errorf("%s returned status %d", base, resp.StatusCode)
	}
	return nil, lastErr
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
