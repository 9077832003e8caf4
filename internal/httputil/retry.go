// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helpers used by the update check.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/pdiddy/formgen/internal/logger"
)

// RetryBaseDelay is the first backoff after an HTTP 429. Tests override it to
// avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

const (
	defaultMaxRetries = 2

	// maxBodyBytes caps how much of a response GetText reads.
	maxBodyBytes = 64 << 10
)

// DoWithRetry executes req and retries on HTTP 429 (Too Many Requests) with
// exponential backoff starting at RetryBaseDelay. When maxRetries is 0 the
// default (2) is used. A 429 body is drained and closed before sleeping. If
// ctx ends during a backoff the function returns ctx.Err(). After the last
// retry the 429 response itself is returned.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		logger.Debug("rate limited, retrying", logger.Fields{
			"url":     req.URL.String(),
			"backoff": backoff.String(),
			"attempt": attempt + 1,
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}

// GetText fetches url and returns the body as a string. Any non-2xx status
// is a *StatusError. Bodies larger than 64 KiB are truncated.
func GetText(ctx context.Context, client *http.Client, url, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}
	return string(body), nil
}
