package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
)

// Ensure Engine implements ibl.Extractor.
var _ ibl.Extractor = (*Engine)(nil)

// DefaultRepeatThreshold is the default ratio of matched prefix and suffix
// tokens to separators required to merge consecutive annotations into a
// repeated node.
const DefaultRepeatThreshold = 1.0

// Engine extracts records from pages using a set of compiled templates.
// It is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	parser    ibl.PageParser
	vocab     *ibl.Vocabulary
	trees     []*tree
	schema    ibl.Schema
	trace     bool
	threshold float64
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSchema validates extracted records and supplies field validators.
func WithSchema(s ibl.Schema) Option {
	return func(e *Engine) {
		e.schema = s
	}
}

// WithTrace records how each value was matched in Record.Trace.
func WithTrace(trace bool) Option {
	return func(e *Engine) {
		e.trace = trace
	}
}

// WithRepeatThreshold sets the repeated-node acceptance ratio.
func WithRepeatThreshold(ratio float64) Option {
	return func(e *Engine) {
		e.threshold = ratio
	}
}

// WithLogger sets the logger for compile summaries.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// TemplateError reports a template that NewEngine could not compile.
type TemplateError struct {
	TemplateID string
	Err        error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.TemplateID, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// NewEngine parses and compiles templates. Templates with more annotations
// are tried first. A template that fails to parse is skipped and the engine
// is built from the rest. The returned error then joins one *TemplateError
// per skipped template. The engine is nil only when every template failed.
func NewEngine(parser ibl.PageParser, templates []*ibl.Template, opts ...Option) (*Engine, error) {
	e := &Engine{
		parser:    parser,
		vocab:     ibl.NewVocabulary(),
		threshold: DefaultRepeatThreshold,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	pages := make([]*ibl.TemplatePage, 0, len(templates))
	var errs []error
	for _, t := range templates {
		tp, err := parser.ParseTemplate(e.vocab, t.ID, t.HTML)
		if err != nil {
			e.logger.Debug("template skipped", "template", t.ID, "error", err)
			errs = append(errs, &TemplateError{TemplateID: t.ID, Err: err})
			continue
		}
		pages = append(pages, tp)
	}
	if len(pages) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	inferCommonPrefixes(e.vocab, pages)
	sort.SliceStable(pages, func(i, j int) bool {
		return len(pages[i].Annotations) > len(pages[j].Annotations)
	})
	for _, tp := range pages {
		t := compile(tp, e.schema, e.trace, e.threshold)
		e.logger.Debug("template compiled",
			"template", tp.ID,
			"tokens", len(tp.Tokens),
			"annotations", len(tp.Annotations),
			"ignored", len(tp.Ignored),
		)
		e.trees = append(e.trees, t)
	}
	return e, errors.Join(errs...)
}

// Templates returns the template ids in the order they are tried.
func (e *Engine) Templates() []string {
	ids := make([]string, len(e.trees))
	for i, t := range e.trees {
		ids[i] = t.template.ID
	}
	return ids
}

// Extract returns the records of the first template that yields records
// passing validation. An empty result means no template matched.
func (e *Engine) Extract(ctx context.Context, markup string, opts ibl.ExtractOptions) (*ibl.ExtractResult, error) {
	page, err := e.parser.ParseExtractionPage(e.vocab.Clone(), markup)
	if err != nil {
		return nil, err
	}

	trees := e.order(opts.PreferredTemplate)
	if opts.StopAtFirst && len(trees) > 1 {
		trees = trees[:1]
	}
	for _, t := range trees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec := t.extract(page)
		if rec == nil {
			continue
		}
		records := []*ibl.Record{rec}
		if e.schema != nil {
			records = e.schema.Validated(records)
		}
		records = requireAll(records, t.template.ExtraRequired)
		if len(records) > 0 {
			return &ibl.ExtractResult{Records: records, TemplateID: t.template.ID}, nil
		}
	}
	return &ibl.ExtractResult{}, nil
}

func (e *Engine) order(preferred string) []*tree {
	if preferred == "" {
		return e.trees
	}
	out := make([]*tree, 0, len(e.trees))
	for _, t := range e.trees {
		if t.template.ID == preferred {
			out = append(out, t)
		}
	}
	for _, t := range e.trees {
		if t.template.ID != preferred {
			out = append(out, t)
		}
	}
	return out
}

func requireAll(records []*ibl.Record, names []string) []*ibl.Record {
	if len(names) == 0 {
		return records
	}
	var out []*ibl.Record
	for _, r := range records {
		if r.HasAll(names) {
			out = append(out, r)
		}
	}
	return out
}

// String renders the compiled trees.
func (e *Engine) String() string {
	parts := make([]string, len(e.trees))
	for i, t := range e.trees {
		parts[i] = t.String()
	}
	return strings.Join(parts, "\n\n")
}
