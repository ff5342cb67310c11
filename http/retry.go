package http

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/ibl"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// retry calls fetch until it succeeds, fails permanently, or delays run out.
// Application errors such as a 404 are permanent.
func retry(ctx context.Context, delays []time.Duration, fetch func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch()
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) || !transient(err) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}

// permanentError marks a failure that retrying cannot fix.
type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

func transient(err error) bool {
	var p permanentError
	if errors.As(err, &p) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return ibl.ErrorCode(err) == ibl.EINTERNAL
}
