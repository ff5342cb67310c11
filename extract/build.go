package extract

import (
	"strings"
	"unicode"

	"github.com/fwojciec/ibl"
)

// tree is the compiled extractor of one template.
type tree struct {
	template *ibl.TemplatePage
	root     *record
	trace    bool
}

// compile builds the extraction tree of a template: leaves, then variant
// and repeated grouping twice, then the enclosing record.
func compile(tp *ibl.TemplatePage, schema ibl.Schema, trace bool, threshold float64) *tree {
	stage := func(nodes []node) []node {
		if trace {
			return traceAll(nodes, tp.Tokens, tp.Vocabulary)
		}
		return nodes
	}

	var nodes []node
	for _, a := range tp.Annotations {
		if a.SurroundsAttribute != "" || len(a.TagAttributes) > 0 {
			nodes = append(nodes, newLeaf(a, schema))
		}
	}
	nodes = stage(nodes)
	for range 2 {
		nodes = stage(mergeVariants(tp.Tokens, nodes, tp.Ignored))
		nodes = stage(mergeRepeated(tp.Tokens, tp.Vocabulary, nodes, threshold))
	}
	return &tree{
		template: tp,
		root:     newRecord(nodes, tp.Ignored, tp.Tokens),
		trace:    trace,
	}
}

// extract runs the tree over the whole page. It returns nil when nothing
// was extracted.
func (t *tree) extract(page *ibl.ExtractionPage) *ibl.Record {
	rec := t.root.extractRecord(page, 0, ibl.NoIndex)
	if rec != nil && t.trace {
		rec.Trace = append([]string{"template " + t.template.ID + "\n" + t.root.String()}, rec.Trace...)
	}
	return rec
}

func (t *tree) String() string {
	return "template " + t.template.ID + "\n" + t.root.String()
}

// inferCommonPrefixes computes, per attribute, the longest word-token prefix
// shared by the start texts of its MatchCommonPrefix annotations across all
// templates, and gives it to the flagged annotations that have no start
// text of their own.
func inferCommonPrefixes(vocab *ibl.Vocabulary, templates []*ibl.TemplatePage) {
	byAttr := make(map[string][]*ibl.Annotation)
	var attrs []string
	for _, tp := range templates {
		for _, a := range tp.Annotations {
			if !a.MatchCommonPrefix || a.SurroundsAttribute == "" {
				continue
			}
			if _, ok := byAttr[a.SurroundsAttribute]; !ok {
				attrs = append(attrs, a.SurroundsAttribute)
			}
			byAttr[a.SurroundsAttribute] = append(byAttr[a.SurroundsAttribute], a)
		}
	}
	for _, attr := range attrs {
		var first string
		var seqs [][]ibl.Token
		for _, a := range byAttr[attr] {
			if a.Text == nil {
				continue
			}
			text := strings.TrimLeftFunc(a.Text.StartText, unicode.IsSpace)
			if text == "" {
				continue
			}
			if seqs == nil {
				first = text
			}
			seqs = append(seqs, vocab.WordTokens(text))
		}
		if len(seqs) == 0 {
			continue
		}
		common := CommonPrefix(seqs...)
		if len(common) == 0 {
			continue
		}
		words := ibl.Words(first)
		prefix := first[:words[len(common)-1].End]
		for _, a := range byAttr[attr] {
			if a.Text == nil {
				a.Text = &ibl.AnnotationText{}
			}
			if strings.TrimSpace(a.Text.StartText) == "" {
				a.Text.StartText = prefix
			}
		}
	}
}
