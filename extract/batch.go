package extract

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/ibl"
	"golang.org/x/sync/errgroup"
)

// BatchPage is one input of a batch run.
type BatchPage struct {
	Name string
	HTML string
}

// BatchResult is the outcome for one page, in input order.
type BatchResult struct {
	Name      string
	Result    *ibl.ExtractResult
	Err       error
	Duplicate bool
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// Batch applies an Extractor to many pages concurrently.
type Batch struct {
	Extractor   ibl.Extractor
	Duplicates  ibl.DuplicateFilter
	Options     ibl.ExtractOptions
	Concurrency int
}

// Run extracts every page and returns results in input order. Per-page
// failures are reported in the results; only cancellation fails the run.
func (b *Batch) Run(ctx context.Context, pages []BatchPage, progress func(ProgressEvent)) ([]BatchResult, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	type indexed struct {
		position int
		result   BatchResult
	}
	resultCh := make(chan indexed, len(pages))

	var completed atomic.Int64
	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, p := range pages {
			if b.Duplicates != nil && b.Duplicates.Seen(p.HTML) {
				resultCh <- indexed{position: i, result: BatchResult{Name: p.Name, Duplicate: true}}
				continue
			}
			g.Go(func() error {
				res, err := b.Extractor.Extract(gctx, p.HTML, b.Options)
				resultCh <- indexed{position: i, result: BatchResult{Name: p.Name, Result: res, Err: err}}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]BatchResult, len(pages))
	for r := range resultCh {
		results[r.position] = r.result
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		if r.result.Err != nil {
			progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, Name: r.result.Name, Error: r.result.Err})
		} else {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, Name: r.result.Name})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
