package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/ibl"
)

// Ensure LoggingFetcher implements ibl.Fetcher.
var _ ibl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs each page download: the host it came from, its size
// and how long it took. Failures carry the application error code.
type LoggingFetcher struct {
	next   ibl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ibl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page it returned.
func (f *LoggingFetcher) Fetch(ctx context.Context, pageURL string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"host", host(pageURL),
			"url", pageURL,
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Info("page fetch failed", append(attrs, "code", ibl.ErrorCode(err), "err", err)...)
			return
		}
		f.logger.Info("page fetched", append(attrs, "bytes", len(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, pageURL)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
