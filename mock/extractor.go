package mock

import (
	"context"

	"github.com/fwojciec/ibl"
)

var _ ibl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ibl.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html string, opts ibl.ExtractOptions) (*ibl.ExtractResult, error)
}

func (e *Extractor) Extract(ctx context.Context, html string, opts ibl.ExtractOptions) (*ibl.ExtractResult, error) {
	return e.ExtractFn(ctx, html, opts)
}
