// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package linkcheck verifies affiliate destination URLs before a page
// is generated against them.
package linkcheck

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const (
	defaultMaxRetries = 3
	requestTimeout    = 15 * time.Second
)

// Verify checks that a destination URL responds with a success or
// redirect status. It sends a HEAD request first and falls back to GET
// when the server rejects HEAD. HTTP 429 responses are retried with
// exponential backoff: 2 s, 4 s, 8 s. A cancelled context during a
// backoff wait returns ctx.Err().
func Verify(ctx context.Context, client *http.Client, url string) error {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	status, err := request(ctx, client, http.MethodHead, url)
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", url, err)
	}
	if status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented {
		if status, err = request(ctx, client, http.MethodGet, url); err != nil {
			return fmt.Errorf("checking destination %s: %w", url, err)
		}
	}

	if status >= 400 {
		return fmt.Errorf("destination %s returned HTTP %d", url, status)
	}
	return nil
}

// request performs one method against the URL, retrying 429s, and
// returns the final status code with the body drained and closed.
func request(ctx context.Context, client *http.Client, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return 0, err
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= defaultMaxRetries {
			return resp.StatusCode, nil
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
