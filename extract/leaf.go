package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
)

// textExtractor post-processes the raw text of a region.
type textExtractor interface {
	extract(text string) (string, bool)
	String() string
}

type tagValue struct {
	source   string
	target   string
	validate ibl.Validator
}

// leaf extracts one annotation: the region's content and any mapped tag
// attributes of its start tag.
type leaf struct {
	annotation  *ibl.Annotation
	text        textExtractor
	validate    ibl.Validator
	allowMarkup bool
	tags        []tagValue
}

func newLeaf(a *ibl.Annotation, schema ibl.Schema) *leaf {
	l := &leaf{annotation: a}
	if a.SurroundsAttribute != "" {
		f := field(schema, a.SurroundsAttribute)
		l.validate = f.Validator
		l.allowMarkup = f.AllowMarkup
		if a.Text != nil {
			if a.MatchCommonPrefix {
				l.text = &textPrefix{prefix: a.Text.StartText}
			} else {
				l.text = newTextRegion(a.Text.StartText, a.Text.FollowText)
			}
		}
	}
	for _, ta := range a.TagAttributes {
		l.tags = append(l.tags, tagValue{
			source:   ta.Source,
			target:   ta.Target,
			validate: field(schema, ta.Target).Validator,
		})
	}
	return l
}

func field(schema ibl.Schema, name string) ibl.Field {
	if schema == nil {
		return ibl.Field{Name: name}
	}
	f, ok := schema.Field(name)
	if !ok {
		return ibl.Field{Name: name}
	}
	return f
}

func (l *leaf) region() ibl.Region { return l.annotation.Region() }

func (l *leaf) variant() int { return l.annotation.VariantID }

func (l *leaf) key() string {
	parts := make([]string, len(l.annotation.TagAttributes))
	for i, ta := range l.annotation.TagAttributes {
		parts[i] = ta.Source + "=" + ta.Target
	}
	sort.Strings(parts)
	return "leaf(" + l.annotation.SurroundsAttribute + ";" + strings.Join(parts, ",") + ")"
}

func (l *leaf) extract(page *ibl.ExtractionPage, start, end int, ignored []ibl.Region) []value {
	var out []value
	if l.annotation.SurroundsAttribute != "" {
		if v, ok := l.content(page, start, end, ignored); ok {
			out = append(out, value{name: l.annotation.SurroundsAttribute, data: v})
		}
	}
	for _, t := range l.tags {
		raw, ok := page.TagAttribute(start, t.source)
		if !ok || raw == "" {
			continue
		}
		if v, ok := apply(t.validate, raw); ok {
			out = append(out, value{name: t.target, data: v})
		}
	}
	return out
}

// content joins the region text around the ignored regions that fall
// inside [start, end) and runs it through the text extractor and validator.
func (l *leaf) content(page *ibl.ExtractionPage, start, end int, ignored []ibl.Region) (string, bool) {
	between := page.TextBetween
	if l.allowMarkup {
		between = page.HTMLBetween
	}
	var b strings.Builder
	from := start
	for _, r := range ignored {
		if r.Start < start || (end != ibl.NoIndex && r.Start >= end) {
			continue
		}
		if r.Start > from {
			b.WriteString(between(from, r.Start))
		}
		if r.End == ibl.NoIndex {
			from = ibl.NoIndex
			break
		}
		// A region nested in an earlier one must not move the cursor back.
		from = max(from, r.End)
	}
	if from != ibl.NoIndex {
		b.WriteString(between(from, end))
	}
	text := b.String()
	if l.text != nil {
		var ok bool
		if text, ok = l.text.extract(text); !ok {
			return "", false
		}
	}
	v, ok := apply(l.validate, text)
	return v, ok && v != ""
}

func apply(validate ibl.Validator, v string) (string, bool) {
	if validate == nil {
		return v, true
	}
	return validate(v)
}

func (l *leaf) String() string {
	a := l.annotation
	var b strings.Builder
	fmt.Fprintf(&b, "leaf[%d:%d]", a.Start, a.End)
	if a.SurroundsAttribute != "" {
		fmt.Fprintf(&b, " content=%s", a.SurroundsAttribute)
	}
	for _, t := range l.tags {
		fmt.Fprintf(&b, " %s=%s", t.source, t.target)
	}
	if a.VariantID != 0 {
		fmt.Fprintf(&b, " variant=%d", a.VariantID)
	}
	if l.text != nil {
		fmt.Fprintf(&b, " %s", l.text)
	}
	return b.String()
}
