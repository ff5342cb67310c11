// Package goquery builds annotated templates from sample pages using CSS
// selectors, and converts extracted markup to plain text.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ibl"
)

// Selection annotates the elements matched by a CSS selector.
type Selection struct {
	// Selector is a CSS selector evaluated against the sample page.
	Selector string

	// Attribute is the output attribute name.
	Attribute string

	// Source is the tag attribute to read. Empty means the element content.
	Source string

	// Variant assigns matched elements to a variant. With EachVariant,
	// the n-th match gets Variant+n+1.
	Variant     int
	EachVariant bool

	// Required marks Attribute as required for records of this template.
	Required bool
}

// Annotator writes annotation attributes into sample pages.
type Annotator struct {
	// Ignore and IgnoreBeneath list CSS selectors of elements to exclude
	// from extracted content.
	Ignore        []string
	IgnoreBeneath []string
}

// Annotate returns markup with every selection annotated. Each selection
// must match at least one element.
func (a *Annotator) Annotate(markup string, selections []Selection) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", ibl.Errorf(ibl.EINVALID, "empty markup")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", ibl.Errorf(ibl.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, s := range selections {
		if s.Selector == "" || s.Attribute == "" {
			return "", ibl.Errorf(ibl.EINVALID, "selection requires a selector and an attribute")
		}
		matched := doc.Find(s.Selector)
		if matched.Length() == 0 {
			return "", ibl.Errorf(ibl.ENOTFOUND, "selector %q matched nothing", s.Selector)
		}
		var annotateErr error
		matched.EachWithBreak(func(i int, el *goquery.Selection) bool {
			variant := s.Variant
			if s.EachVariant {
				variant += i + 1
			}
			annotateErr = annotate(el, s, variant)
			return annotateErr == nil
		})
		if annotateErr != nil {
			return "", annotateErr
		}
	}

	for _, sel := range a.Ignore {
		doc.Find(sel).SetAttr(ibl.IgnoreAttr, "true")
	}
	for _, sel := range a.IgnoreBeneath {
		doc.Find(sel).SetAttr(ibl.IgnoreBeneathAttr, "true")
	}

	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return "", ibl.Errorf(ibl.EINTERNAL, "failed to render HTML: %v", err)
	}
	return out, nil
}

// annotation is the JSON carried by the annotate attribute.
type annotation struct {
	Annotations map[string]string `json:"annotations"`
	Variant     int               `json:"variant,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

// annotate merges s into the annotation already present on el, if any.
func annotate(el *goquery.Selection, s Selection, variant int) error {
	var a annotation
	if raw, ok := el.Attr(ibl.AnnotateAttr); ok {
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return ibl.Errorf(ibl.EINVALID, "existing annotation on %q: %v", s.Selector, err)
		}
		if a.Variant != 0 && variant != 0 && a.Variant != variant {
			return ibl.Errorf(ibl.ECONFLICT, "element matched by %q already belongs to variant %d", s.Selector, a.Variant)
		}
	}
	if a.Annotations == nil {
		a.Annotations = make(map[string]string)
	}
	source := s.Source
	if source == "" {
		source = ibl.ContentKey
	}
	a.Annotations[source] = s.Attribute
	if variant != 0 {
		a.Variant = variant
	}
	if s.Required {
		a.Required = append(a.Required, s.Attribute)
	}

	buf, err := json.Marshal(a)
	if err != nil {
		return err
	}
	el.SetAttr(ibl.AnnotateAttr, string(buf))
	return nil
}
