package html

import (
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
)

// Ensure Parser implements ibl.PageParser.
var _ ibl.PageParser = (*Parser)(nil)

// Parser parses templates and target pages.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report skipped annotations.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseExtractionPage tokenizes a target page. Text runs are not tokens;
// their offsets are kept for extracting values.
func (p *Parser) ParseExtractionPage(vocab *ibl.Vocabulary, markup string) (*ibl.ExtractionPage, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ibl.Errorf(ibl.EINVALID, "page HTML required")
	}
	frags := Tokenize(markup)
	page := &ibl.ExtractionPage{
		Page:   ibl.Page{Vocabulary: vocab},
		Source: markup,
	}
	for _, f := range frags {
		if f.Text {
			continue
		}
		page.Tokens = append(page.Tokens, vocab.Token(f.Tag, f.Kind))
		page.TokenStart = append(page.TokenStart, f.Start)
		page.TokenFollow = append(page.TokenFollow, f.End)
		if f.Kind == ibl.CloseTag {
			page.TagAttrs = append(page.TagAttrs, nil)
		} else {
			page.TagAttrs = append(page.TagAttrs, f.Attrs)
		}
	}
	return page, nil
}

// ParseTemplate parses annotated template markup.
func (p *Parser) ParseTemplate(vocab *ibl.Vocabulary, id, markup string) (*ibl.TemplatePage, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ibl.Errorf(ibl.EINVALID, "template %q: HTML required", id)
	}
	tp := &templateParser{
		id:           id,
		vocab:        vocab,
		source:       markup,
		logger:       p.logger,
		ignoredTags:  make(map[string][]int),
		labelled:     make(map[string][]*labelled),
		replacements: make(map[string][]string),
	}
	for _, f := range Tokenize(markup) {
		var err error
		switch {
		case f.Text:
			tp.text(markup[f.Start:f.End])
			continue
		case f.Kind == ibl.OpenTag:
			err = tp.openTag(f)
		case f.Kind == ibl.CloseTag:
			err = tp.closeTag(f)
		default:
			tp.unpairedTag(f)
		}
		if err != nil {
			return nil, err
		}
		tp.prevWasText = false
	}
	for tag, stack := range tp.labelled {
		for _, l := range stack {
			if l != nil {
				p.logger.Debug("unterminated annotation dropped", "template", id, "tag", tag, "start", l.annotation.Start)
			}
		}
	}

	annotations := tp.annotations
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].End > annotations[j].End
	})
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].Start < annotations[j].Start
	})

	return &ibl.TemplatePage{
		Page:          ibl.Page{Tokens: tp.tokens, Vocabulary: vocab},
		ID:            id,
		Annotations:   annotations,
		Ignored:       tp.ignored,
		ExtraRequired: tp.extraRequired,
	}, nil
}

// annotationData is the decoded annotate attribute.
type annotationData struct {
	contentKey        string
	mappings          []ibl.TagAttribute
	variant           int
	generated         bool
	required          []string
	matchCommonPrefix bool
	metadata          map[string]any
}

type labelled struct {
	annotation    *ibl.Annotation
	pushedVariant bool
}

type templateParser struct {
	id     string
	vocab  *ibl.Vocabulary
	source string
	logger *slog.Logger

	tokens        []ibl.Token
	annotations   []*ibl.Annotation
	ignored       []ibl.Region
	extraRequired []string

	// Per-tag stacks. A -1, nil or "" entry stands for a same-named tag
	// nested inside a tracked one, so that closes pair correctly.
	ignoredTags  map[string][]int
	labelled     map[string][]*labelled
	replacements map[string][]string
	variants     []int

	prevText    string
	prevWasText bool
	pendingText *ibl.Annotation
}

func (tp *templateParser) text(s string) {
	if tp.pendingText != nil {
		tp.pendingText.Text.FollowText = s
		tp.pendingText = nil
	}
	tp.prevText = s
	tp.prevWasText = true
}

// flushPending ends a partial annotation that no text follows.
func (tp *templateParser) flushPending() {
	if tp.pendingText != nil {
		tp.pendingText.Text.FollowText = ""
		tp.pendingText = nil
	}
}

func (tp *templateParser) openTag(f Fragment) error {
	tp.flushPending()
	if f.Tag == "p" {
		if err := tp.closeParagraph(); err != nil {
			return err
		}
	}
	index := len(tp.tokens)
	data := tp.readAnnotation(f)
	generated := data != nil && data.generated && index > 0

	regionStart := index
	if generated {
		regionStart = index - 1
	}
	tp.handleIgnore(f, regionStart, true)
	name := tp.handleReplacement(f)
	if !generated {
		tp.tokens = append(tp.tokens, tp.vocab.Token(name, ibl.OpenTag))
	}

	if data == nil {
		if _, ok := tp.labelled[f.Tag]; ok {
			tp.labelled[f.Tag] = append(tp.labelled[f.Tag], nil)
		}
		return nil
	}

	a := tp.newAnnotation(data, regionStart)
	if generated {
		text := ""
		if tp.prevWasText {
			text = tp.prevText
		}
		a.Text = &ibl.AnnotationText{StartText: text}
	}

	pushed := false
	if data.variant > 0 {
		if a.SurroundsAttribute != "" {
			tp.variants = append(tp.variants, data.variant)
			pushed = true
		} else {
			a.VariantID = data.variant
		}
	}
	tp.inheritVariant(a)

	if a.SurroundsAttribute != "" {
		tp.labelled[f.Tag] = append(tp.labelled[f.Tag], &labelled{annotation: a, pushedVariant: pushed})
		return nil
	}
	a.End = a.Start + 1
	tp.annotations = append(tp.annotations, a)
	return nil
}

func (tp *templateParser) closeTag(f Fragment) error {
	tp.flushPending()
	index := len(tp.tokens)

	if stack, ok := tp.ignoredTags[f.Tag]; ok {
		ri := stack[len(stack)-1]
		tp.popIgnored(f.Tag)
		if ri >= 0 {
			tp.ignored[ri].End = index
		}
	}

	name := f.Tag
	if stack, ok := tp.replacements[f.Tag]; ok {
		if r := stack[len(stack)-1]; r != "" {
			name = r
		}
		if len(stack) == 1 {
			delete(tp.replacements, f.Tag)
		} else {
			tp.replacements[f.Tag] = stack[:len(stack)-1]
		}
	}

	generated := false
	if stack, ok := tp.labelled[f.Tag]; ok {
		l := stack[len(stack)-1]
		if len(stack) == 1 {
			delete(tp.labelled, f.Tag)
		} else {
			tp.labelled[f.Tag] = stack[:len(stack)-1]
		}
		if l != nil {
			if l.annotation.Text != nil {
				generated = true
				tp.pendingText = l.annotation
			}
			if err := tp.finish(l, index); err != nil {
				return err
			}
		}
	}

	if !generated {
		tp.tokens = append(tp.tokens, tp.vocab.Token(name, ibl.CloseTag))
	}
	return nil
}

// finish ends a labelled annotation before the token at end.
func (tp *templateParser) finish(l *labelled, end int) error {
	a := l.annotation
	a.End = end
	tp.annotations = append(tp.annotations, a)
	if !l.pushedVariant {
		return nil
	}
	if len(tp.variants) == 0 {
		return ibl.Errorf(ibl.EINVALID, "template %q: unbalanced variant %d annotation at tokens [%d:%d]", tp.id, a.VariantID, a.Start, a.End)
	}
	top := tp.variants[len(tp.variants)-1]
	tp.variants = tp.variants[:len(tp.variants)-1]
	if top != a.VariantID {
		return ibl.Errorf(ibl.EINVALID, "template %q: unbalanced variant annotation at tokens [%d:%d]: closing variant %d inside variant %d", tp.id, a.Start, a.End, a.VariantID, top)
	}
	return nil
}

// closeParagraph ends an annotated p left open when another p starts.
// A p cannot nest, so the whole p stack is dropped.
func (tp *templateParser) closeParagraph() error {
	stack, ok := tp.labelled["p"]
	if !ok {
		return nil
	}
	delete(tp.labelled, "p")
	if l := stack[0]; l != nil {
		return tp.finish(l, len(tp.tokens))
	}
	return nil
}

func (tp *templateParser) unpairedTag(f Fragment) {
	tp.flushPending()
	index := len(tp.tokens)
	tp.handleIgnore(f, index, false)
	tp.tokens = append(tp.tokens, tp.vocab.Token(f.Tag, ibl.UnpairedTag))

	data := tp.readAnnotation(f)
	if data == nil {
		return
	}
	a := tp.newAnnotation(data, index)
	a.End = index + 1
	a.VariantID = data.variant
	tp.inheritVariant(a)
	tp.annotations = append(tp.annotations, a)
}

func (tp *templateParser) newAnnotation(data *annotationData, start int) *ibl.Annotation {
	a := &ibl.Annotation{
		Start:             start,
		End:               ibl.NoIndex,
		MatchCommonPrefix: data.matchCommonPrefix,
		Metadata:          data.metadata,
	}
	for _, m := range data.mappings {
		if m.Source == data.contentKey {
			a.SurroundsAttribute = m.Target
		} else {
			a.TagAttributes = append(a.TagAttributes, m)
		}
	}
	tp.extraRequired = append(tp.extraRequired, data.required...)
	return a
}

func (tp *templateParser) inheritVariant(a *ibl.Annotation) {
	if a.VariantID == 0 && len(tp.variants) > 0 {
		a.VariantID = tp.variants[len(tp.variants)-1]
	}
}

func (tp *templateParser) handleIgnore(f Fragment, index int, open bool) {
	if isTrue(f.Attrs[ibl.IgnoreAttr]) {
		if open {
			tp.ignored = append(tp.ignored, ibl.Region{Start: index, End: ibl.NoIndex})
			tp.ignoredTags[f.Tag] = append(tp.ignoredTags[f.Tag], len(tp.ignored)-1)
		} else {
			tp.ignored = append(tp.ignored, ibl.Region{Start: index, End: index})
		}
	} else if _, ok := tp.ignoredTags[f.Tag]; ok && open {
		tp.ignoredTags[f.Tag] = append(tp.ignoredTags[f.Tag], -1)
	}
	if isTrue(f.Attrs[ibl.IgnoreBeneathAttr]) {
		tp.ignored = append(tp.ignored, ibl.Region{Start: index, End: ibl.NoIndex})
	}
}

func (tp *templateParser) popIgnored(tag string) {
	stack := tp.ignoredTags[tag]
	if len(stack) == 1 {
		delete(tp.ignoredTags, tag)
		return
	}
	tp.ignoredTags[tag] = stack[:len(stack)-1]
}

func (tp *templateParser) handleReplacement(f Fragment) string {
	if r, ok := f.Attrs[ibl.ReplacementAttr]; ok && r != "" {
		tp.replacements[f.Tag] = append(tp.replacements[f.Tag], r)
		return r
	}
	if _, ok := tp.replacements[f.Tag]; ok {
		tp.replacements[f.Tag] = append(tp.replacements[f.Tag], "")
	}
	return f.Tag
}

// readAnnotation decodes the annotate attribute of f. Malformed JSON skips
// the annotation.
func (tp *templateParser) readAnnotation(f Fragment) *annotationData {
	raw, ok := f.Attrs[ibl.AnnotateAttr]
	if !ok {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		tp.logger.Debug("malformed annotation skipped", "template", tp.id, "tag", f.Tag, "offset", f.Start, "err", err)
		return nil
	}
	data := &annotationData{contentKey: ibl.ContentKey}
	if s, ok := m["text-content"].(string); ok && s != "" {
		data.contentKey = s
	}
	for k, v := range m {
		switch k {
		case "annotations":
			mappings, _ := v.(map[string]any)
			for src, dst := range mappings {
				switch dst := dst.(type) {
				case string:
					data.mappings = append(data.mappings, ibl.TagAttribute{Source: src, Target: dst})
				case float64:
					if src == data.contentKey && data.variant == 0 {
						data.variant = int(dst)
					}
				}
			}
		case "variant":
			if n, ok := v.(float64); ok && n > 0 {
				data.variant = int(n)
			}
		case "generated":
			data.generated, _ = v.(bool)
		case "required":
			list, _ := v.([]any)
			for _, r := range list {
				if s, ok := r.(string); ok {
					data.required = append(data.required, s)
				}
			}
		case "match_common_prefix":
			data.matchCommonPrefix, _ = v.(bool)
		case "text-content":
		default:
			if data.metadata == nil {
				data.metadata = make(map[string]any)
			}
			data.metadata[k] = v
		}
	}
	sort.Slice(data.mappings, func(i, j int) bool {
		return data.mappings[i].Source < data.mappings[j].Source
	})
	return data
}

func isTrue(v string) bool {
	return strings.EqualFold(v, "true")
}
