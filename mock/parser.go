package mock

import "github.com/fwojciec/ibl"

var _ ibl.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of ibl.PageParser.
type PageParser struct {
	ParseTemplateFn       func(vocab *ibl.Vocabulary, id, html string) (*ibl.TemplatePage, error)
	ParseExtractionPageFn func(vocab *ibl.Vocabulary, html string) (*ibl.ExtractionPage, error)
}

func (p *PageParser) ParseTemplate(vocab *ibl.Vocabulary, id, html string) (*ibl.TemplatePage, error) {
	return p.ParseTemplateFn(vocab, id, html)
}

func (p *PageParser) ParseExtractionPage(vocab *ibl.Vocabulary, html string) (*ibl.ExtractionPage, error) {
	return p.ParseExtractionPageFn(vocab, html)
}
