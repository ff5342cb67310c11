package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/ibl"
	"github.com/fwojciec/ibl/bloom"
	"github.com/fwojciec/ibl/extract"
)

// duplicateFalsePositiveRate bounds how often a new page is wrongly
// reported as a duplicate.
const duplicateFalsePositiveRate = 0.001

// batchLine is one line of batch output.
type batchLine struct {
	Page      string        `json:"page"`
	Template  string        `json:"templateId,omitempty"`
	Records   []*ibl.Record `json:"records"`
	Duplicate bool          `json:"duplicate,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	pages := make([]extract.BatchPage, 0, len(c.Pages))
	for _, path := range c.Pages {
		markup, err := loadPage(deps, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
			return err
		}
		pages = append(pages, extract.BatchPage{Name: path, HTML: markup})
	}

	extractor, err := newExtractor(deps, c.Schema, false)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	batch := &extract.Batch{
		Extractor:   extractor,
		Concurrency: c.Concurrency,
		Options: ibl.ExtractOptions{
			PreferredTemplate: c.Prefer,
			StopAtFirst:       c.First,
		},
	}
	if c.Duplicates && len(pages) > 0 {
		batch.Duplicates = bloom.NewFilter(uint(len(pages)), duplicateFalsePositiveRate)
	}

	results, err := batch.Run(deps.Ctx, pages, func(e extract.ProgressEvent) {
		if e.Type == extract.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", e.Completed, e.Total, filepath.Base(e.Name), ibl.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	var found, failed, duplicates int
	for _, r := range results {
		line := batchLine{Page: r.Name, Records: []*ibl.Record{}, Duplicate: r.Duplicate}
		switch {
		case r.Err != nil:
			line.Error = ibl.ErrorMessage(r.Err)
			failed++
		case r.Duplicate:
			duplicates++
		case r.Result.Found():
			line.Template = r.Result.TemplateID
			line.Records = r.Result.Records
			found++
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Extracted records from %d of %d pages", found, len(results))
	if duplicates > 0 {
		fmt.Fprintf(deps.Stderr, ", %d duplicates skipped", duplicates)
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, ", %d failed", failed)
	}
	fmt.Fprintln(deps.Stderr)
	return nil
}
