package ibl

import "strings"

// Annotation markup attributes.
const (
	AnnotateAttr      = "data-scrapy-annotate"
	IgnoreAttr        = "data-scrapy-ignore"
	IgnoreBeneathAttr = "data-scrapy-ignore-beneath"
	ReplacementAttr   = "data-scrapy-replacement"
)

// ContentKey is the default annotation source that maps to the text
// content of an element rather than one of its attributes. An annotation
// may rename it with a "text-content" entry.
const ContentKey = "content"

// NoIndex marks an unset token index, such as the end of an ignore-beneath
// region that runs to the end of the page.
const NoIndex = -1

// Region is a half-open token span [Start, End). End may be NoIndex.
type Region struct {
	Start int
	End   int
}

// Contains reports whether token index i falls in r.
func (r Region) Contains(i int) bool {
	return i >= r.Start && (r.End == NoIndex || i < r.End)
}

// TagAttribute maps an HTML attribute of the annotated tag to an output
// attribute name.
type TagAttribute struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// AnnotationText holds the literal text surrounding a partial annotation
// inside its enclosing element.
type AnnotationText struct {
	StartText  string `json:"startText"`
	FollowText string `json:"followText"`
}

// Annotation marks a region of a template page as holding attribute data.
type Annotation struct {
	Start int `json:"start"`
	End   int `json:"end"`

	// SurroundsAttribute names the attribute taken from the text content
	// of the region. Empty when only tag attributes are extracted.
	SurroundsAttribute string         `json:"surroundsAttribute,omitempty"`
	TagAttributes      []TagAttribute `json:"tagAttributes,omitempty"`

	// Text is set for partial annotations only.
	Text *AnnotationText `json:"text,omitempty"`

	// VariantID groups annotations into sub-records. Zero means none.
	VariantID int `json:"variantId,omitempty"`

	MatchCommonPrefix bool           `json:"matchCommonPrefix,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// Region returns the token span of the annotation.
func (a *Annotation) Region() Region {
	return Region{Start: a.Start, End: a.End}
}

// Page is a tokenized HTML page.
type Page struct {
	Tokens     []Token
	Vocabulary *Vocabulary
}

// TemplatePage is a parsed annotated template.
type TemplatePage struct {
	Page

	ID string

	// Annotations are ordered by start index, outer annotations first.
	Annotations []*Annotation

	// Ignored holds regions whose text is excluded from extracted values.
	Ignored []Region

	// ExtraRequired lists attributes every record from this template needs.
	ExtraRequired []string
}

// ExtractionPage is a parsed target page.
type ExtractionPage struct {
	Page

	Source string

	// TokenStart and TokenFollow hold, per token, the byte offset of the
	// tag in Source and the offset just past it.
	TokenStart  []int
	TokenFollow []int

	// TagAttrs holds the attributes of each token; nil for close tags.
	TagAttrs []map[string]string
}

func (p *ExtractionPage) follow(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(p.TokenFollow) {
		return len(p.Source)
	}
	return p.TokenFollow[i]
}

func (p *ExtractionPage) start(i int) int {
	if i == NoIndex || i >= len(p.TokenStart) {
		return len(p.Source)
	}
	return p.TokenStart[i]
}

// TextBetween returns the source text between token start and token end.
// Each tag strictly between them is replaced by a single space.
func (p *ExtractionPage) TextBetween(start, end int) string {
	from, to := p.follow(start), p.start(end)
	if from >= to {
		return ""
	}
	last := end
	if last == NoIndex || last > len(p.TokenStart) {
		last = len(p.TokenStart)
	}
	var b strings.Builder
	for i := start + 1; i < last; i++ {
		if i < 0 {
			continue
		}
		if p.TokenStart[i] > from {
			b.WriteString(p.Source[from:p.TokenStart[i]])
		}
		b.WriteByte(' ')
		from = p.TokenFollow[i]
	}
	if to > from {
		b.WriteString(p.Source[from:to])
	}
	return b.String()
}

// HTMLBetween returns the raw source markup between token start and token end.
func (p *ExtractionPage) HTMLBetween(start, end int) string {
	from, to := p.follow(start), p.start(end)
	if from >= to {
		return ""
	}
	return p.Source[from:to]
}

// TagAttribute returns the value of attribute name on token i.
func (p *ExtractionPage) TagAttribute(i int, name string) (string, bool) {
	if i < 0 || i >= len(p.TagAttrs) || p.TagAttrs[i] == nil {
		return "", false
	}
	v, ok := p.TagAttrs[i][name]
	return v, ok
}
