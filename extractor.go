package ibl

import "context"

// ExtractOptions controls a single extraction.
type ExtractOptions struct {
	// PreferredTemplate is tried before all other templates when set.
	PreferredTemplate string

	// StopAtFirst limits extraction to the first template in try order.
	StopAtFirst bool
}

// ExtractResult is the outcome of an extraction. An empty Records slice
// means no template produced an acceptable record; that is not an error.
type ExtractResult struct {
	Records    []*Record `json:"records"`
	TemplateID string    `json:"templateId,omitempty"`
}

// Found reports whether any record was extracted.
func (r *ExtractResult) Found() bool {
	return r != nil && len(r.Records) > 0
}

// Extractor extracts records from HTML pages.
type Extractor interface {
	// Extract runs the page through the configured templates and returns
	// the records of the first template whose output passes validation.
	Extract(ctx context.Context, html string, opts ExtractOptions) (*ExtractResult, error)
}

// PageParser turns markup into tokenized pages over a shared vocabulary.
type PageParser interface {
	// ParseTemplate parses annotated template markup.
	// Returns EINVALID for unbalanced variant annotations.
	ParseTemplate(vocab *Vocabulary, id, html string) (*TemplatePage, error)

	// ParseExtractionPage parses a target page.
	ParseExtractionPage(vocab *Vocabulary, html string) (*ExtractionPage, error)
}

// DuplicateFilter reports pages that were already seen.
type DuplicateFilter interface {
	// Seen records html and reports whether it was recorded before.
	Seen(html string) bool
}
