package extract

import (
	"github.com/fwojciec/ibl"
)

// node is one element of an extraction tree.
//
// Implementations are leaf, repeated, variantGroup and traced. Nodes are
// immutable once built and safe for concurrent use.
type node interface {
	// region is the template token span the node covers.
	region() ibl.Region

	// variant is the variant id of the node, zero when none.
	variant() int

	// key identifies the items a node extracts; equal keys across
	// consecutive nodes mark repeated data.
	key() string

	// extract pulls values from page between tokens start and end.
	// ignored holds page regions whose text must be skipped.
	extract(page *ibl.ExtractionPage, start, end int, ignored []ibl.Region) []value

	String() string
}

// value is one piece of extracted data.
type value struct {
	// name and data hold a plain attribute value.
	name string
	data string

	// variant and nested hold values that belong to a variant sub-record.
	variant int
	nested  []value

	// group is a finished variant sub-record.
	group *ibl.Record

	// trace marks data as a trace line.
	trace bool
}

// assemble builds a record from values. Variant-tagged values are
// merged per variant id, in first-seen order, after any finished groups.
// Trace lines from sub-records are hoisted into the returned record.
func assemble(values []value) *ibl.Record {
	rec := ibl.NewRecord()
	var ids []int
	byID := make(map[int][]value)
	for _, v := range values {
		switch {
		case v.trace:
			rec.Trace = append(rec.Trace, v.data)
		case v.group != nil:
			rec.Variants = append(rec.Variants, v.group)
		case v.variant != 0:
			if _, ok := byID[v.variant]; !ok {
				ids = append(ids, v.variant)
			}
			byID[v.variant] = append(byID[v.variant], v.nested...)
		default:
			rec.Add(v.name, v.data)
		}
	}
	for _, id := range ids {
		rec.Variants = append(rec.Variants, assemble(byID[id]))
	}
	for _, sub := range rec.Variants {
		rec.Trace = append(rec.Trace, sub.Trace...)
		sub.Trace = nil
	}
	return rec
}

// clip returns tokens[from:to] clamped to the slice bounds.
func clip(tokens []ibl.Token, from, to int) []ibl.Token {
	from = max(from, 0)
	to = min(to, len(tokens))
	if from >= to {
		return nil
	}
	return tokens[from:to]
}
