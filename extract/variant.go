package extract

import (
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
)

// variantGroup extracts a run of annotations sharing one variant id into a
// single variant sub-record.
type variantGroup struct {
	rec *record
}

func newVariantGroup(children []node, ignored []ibl.Region, template []ibl.Token) *variantGroup {
	span := spanOf(children)
	return &variantGroup{rec: newRecord(children, within(ignored, span), template)}
}

func (g *variantGroup) region() ibl.Region { return g.rec.span }

func (g *variantGroup) variant() int { return 0 }

func (g *variantGroup) key() string {
	keys := make([]string, len(g.rec.children))
	for i, c := range g.rec.children {
		keys[i] = c.key()
	}
	sort.Strings(keys)
	return "variant(" + strings.Join(keys, ",") + ")"
}

// extract ignores the page regions it is given: the group aligns its own
// template regions within [start, end].
func (g *variantGroup) extract(page *ibl.ExtractionPage, start, end int, _ []ibl.Region) []value {
	rec := assemble(g.rec.values(page, start, end))
	if len(rec.Variants) == 0 {
		return nil
	}
	out := []value{{group: rec.Variants[0]}}
	for _, line := range rec.Trace {
		out = append(out, value{trace: true, data: line})
	}
	return out
}

func (g *variantGroup) String() string {
	return "variant " + g.rec.String()
}

// mergeVariants groups consecutive annotations of the same variant into
// variantGroup nodes. Only variant ids that occur in an odd number of runs
// are grouped; others stay as tagged leaves for the record to merge.
func mergeVariants(template []ibl.Token, nodes []node, ignored []ibl.Region) []node {
	variantOf := func(n node) int { return n.variant() }
	adjacent := make(map[int]bool)
	for _, run := range runs(nodes, variantOf) {
		if id := run[0].variant(); id != 0 {
			adjacent[id] = !adjacent[id]
		}
	}
	var out []node
	for _, run := range runs(nodes, variantOf) {
		if id := run[0].variant(); id != 0 && adjacent[id] {
			out = append(out, newVariantGroup(run, ignored, template))
			continue
		}
		out = append(out, run...)
	}
	return out
}
