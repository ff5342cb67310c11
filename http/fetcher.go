// Package http fetches target pages over HTTP for the command line tools.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/ibl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBytes caps the size of a fetched page.
const DefaultMaxBytes = 10 << 20

// Ensure Fetcher implements ibl.Fetcher at compile time.
var _ ibl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup over HTTP and decodes it to UTF-8.
// Scripts are not executed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
	limiter   *HostLimiter
	delays    []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes sets the largest accepted response body.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit limits requests to rps per host. Zero disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewHostLimiter(rps)
		}
	}
}

// WithRetryDelays sets the waits between attempts after transient
// failures. Nil disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxBytes,
		userAgent: "ibl",
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url. Bodies in other encodings are converted
// using the Content-Type header or the page's meta charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return retry(ctx, f.delays, func() (string, error) {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, url); err != nil {
				return "", permanentError{err}
			}
		}
		return f.fetch(ctx, url)
	})
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", ibl.Errorf(ibl.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ibl.Errorf(ibl.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}
	b, err := io.ReadAll(io.LimitReader(body, f.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(b)) > f.maxBytes {
		return "", ibl.Errorf(ibl.EINVALID, "page %s exceeds %d bytes", url, f.maxBytes)
	}
	return string(b), nil
}

// Close is a no-op; http.Client holds nothing that needs releasing.
func (f *Fetcher) Close() error {
	return nil
}
