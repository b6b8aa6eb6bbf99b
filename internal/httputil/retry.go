// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for talking to the arXiv API.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryBaseDelay is the first backoff step. Tests override this to avoid
// real sleeps.
var RetryBaseDelay = 3 * time.Second

// MaxRetryAfter caps a server-supplied Retry-After value.
var MaxRetryAfter = 2 * time.Minute

const defaultMaxRetries = 5

// Retryable reports whether status is one the arXiv API uses to ask clients
// to back off: 429 Too Many Requests or 503 Service Unavailable.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// DoWithRetry executes req and retries while the response is Retryable.
// The wait is the response's Retry-After (in seconds, capped at
// MaxRetryAfter) when present, otherwise RetryBaseDelay doubled per attempt.
//
// When maxRetries is 0 the default (5) is used. If the context is cancelled
// during a wait the function returns ctx.Err(). After exhausting retries the
// last retryable response is returned unread so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, log logrus.FieldLogger) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !Retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(attempt, resp.Header.Get("Retry-After"))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		log.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"attempt": attempt + 1,
			"of":      maxRetries,
			"wait":    wait,
		}).Warn("arXiv asked us to back off")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		if d > MaxRetryAfter {
			d = MaxRetryAfter
		}
		return d
	}
	return time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
}
