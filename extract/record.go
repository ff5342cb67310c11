package extract

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
)

// record extracts its children into one item. Its ignored regions are in
// template coordinates and are aligned to the page alongside the children.
type record struct {
	children []node
	ignored  []ibl.Region
	template []ibl.Token
	span     ibl.Region
}

func newRecord(children []node, ignored []ibl.Region, template []ibl.Token) *record {
	return &record{
		children: children,
		ignored:  ignored,
		template: template,
		span:     spanOf(children),
	}
}

// spanOf returns the smallest region covering all nodes.
func spanOf(nodes []node) ibl.Region {
	span := ibl.Region{Start: ibl.NoIndex, End: ibl.NoIndex}
	for i, n := range nodes {
		reg := n.region()
		if i == 0 || reg.Start < span.Start {
			span.Start = reg.Start
		}
		if i == 0 || reg.End > span.End {
			span.End = reg.End
		}
	}
	return span
}

// within returns the regions that start inside span.
func within(regions []ibl.Region, span ibl.Region) []ibl.Region {
	var out []ibl.Region
	for _, g := range regions {
		if g.Start >= span.Start && g.Start < span.End {
			out = append(out, g)
		}
	}
	return out
}

// element is an extraction child or an ignored region, both positioned in
// template coordinates.
type element struct {
	node   node
	region ibl.Region
}

func (r *record) elements() []element {
	elems := make([]element, 0, len(r.children)+len(r.ignored))
	for _, c := range r.children {
		elems = append(elems, element{node: c, region: c.region()})
	}
	for _, g := range r.ignored {
		elems = append(elems, element{region: g})
	}
	sort.SliceStable(elems, func(i, j int) bool {
		return elems[i].region.Start < elems[j].region.Start
	})
	return elems
}

// values extracts the children between page tokens start and end.
func (r *record) values(page *ibl.ExtractionPage, start, end int) []value {
	elems := r.elements()
	if len(elems) == 0 {
		return nil
	}
	_, _, out := r.align(page, elems, start, end, nil, nil)
	return out
}

// extractRecord returns the assembled record, or nil when empty.
func (r *record) extractRecord(page *ibl.ExtractionPage, start, end int) *ibl.Record {
	rec := assemble(r.values(page, start, end))
	if rec.Empty() {
		return nil
	}
	return rec
}

// align locates elems[0] in the page and extracts it, then recurses into
// the elements nested inside it and the elements following it. When the
// first element cannot be located, the following elements are located
// first and the first element is retried in the narrower range before them;
// if the following elements cannot be anchored either, nothing is kept.
//
// It returns the page span of the first element, NoIndex when not found.
func (r *record) align(page *ibl.ExtractionPage, elems []element, start, end int, nested, ignored []element) (int, int, []value) {
	first := elems[0]
	following := elems[1:]
	nested = slices.Clone(nested)
	ignored = slices.Clone(ignored)
	for len(following) > 0 && following[0].region.Start < first.region.End {
		el := following[0]
		following = following[1:]
		if el.node != nil || insideLast(nested, el) {
			nested = append(nested, el)
		} else {
			ignored = append(ignored, el)
		}
	}

	regionEnd := ibl.NoIndex
	if end != ibl.NoIndex {
		regionEnd = end + 1
	}
	m := SimilarRegion(page.Tokens, r.template, first.region, start, regionEnd)
	if m.Score > 0 {
		var out []value
		if first.node != nil {
			located := r.locate(page, ignored, m)
			vals := first.node.extract(page, m.Start, m.End, located)
			if id := first.node.variant(); id != 0 && len(vals) > 0 {
				vals = []value{{variant: id, nested: vals}}
			}
			out = append(out, vals...)
		}
		if len(nested) > 0 {
			_, _, vals := r.align(page, nested, m.Start, m.End, nil, nil)
			out = append(out, vals...)
		}
		if len(following) > 0 {
			from := m.End
			if from == ibl.NoIndex || from == 0 {
				from = start
			}
			_, _, vals := r.align(page, following, from, end, nil, nil)
			out = append(out, vals...)
		}
		return m.Start, m.End, out
	}

	if len(following) > 0 {
		fstart, _, fvals := r.align(page, following, start, end, nil, nil)
		switch {
		case fstart == ibl.NoIndex:
			return ibl.NoIndex, ibl.NoIndex, nil
		case fstart-1 < start:
			return ibl.NoIndex, ibl.NoIndex, fvals
		}
		pstart, pend, pvals := r.align(page, []element{first}, start, fstart-1, nested, ignored)
		return pstart, pend, append(pvals, fvals...)
	}
	if len(nested) > 0 {
		_, _, vals := r.align(page, nested, start, end, nil, nil)
		return ibl.NoIndex, ibl.NoIndex, vals
	}
	return ibl.NoIndex, ibl.NoIndex, nil
}

// locate finds the ignored regions inside the matched span m.
func (r *record) locate(page *ibl.ExtractionPage, ignored []element, m Match) []ibl.Region {
	var located []ibl.Region
	from := m.Start
	for _, g := range ignored {
		gm := SimilarRegion(page.Tokens, r.template, g.region, from, m.End)
		if gm.Score <= 0 {
			continue
		}
		located = append(located, ibl.Region{Start: gm.Start, End: gm.End})
		if gm.End != ibl.NoIndex && gm.End != 0 {
			from = gm.End
		}
	}
	return located
}

// insideLast reports whether el starts strictly inside the last nested element.
func insideLast(nested []element, el element) bool {
	if len(nested) == 0 {
		return false
	}
	last := nested[len(nested)-1].region
	return last.Start < el.region.Start && el.region.Start < last.End
}

func (r *record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "record[%d:%d]", r.span.Start, r.span.End)
	for _, c := range r.children {
		b.WriteString("\n  ")
		b.WriteString(indent(c.String()))
	}
	for _, g := range r.ignored {
		fmt.Fprintf(&b, "\n  ignored[%d:%d]", g.Start, g.End)
	}
	return b.String()
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
