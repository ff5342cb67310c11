// Package slog wraps ibl services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ibl"
)

// Ensure LoggingExtractor implements ibl.Extractor.
var _ ibl.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   ibl.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ibl.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, html string, opts ibl.ExtractOptions) (res *ibl.ExtractResult, err error) {
	defer func(begin time.Time) {
		var template string
		var records int
		if res != nil {
			template, records = res.TemplateID, len(res.Records)
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"template", template,
			"records", records,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html, opts)
}
