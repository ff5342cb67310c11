package extract

import (
	"fmt"
	"slices"

	"github.com/fwojciec/ibl"
)

// repeated applies one node to every occurrence of a learned prefix and
// suffix token pattern in its region.
type repeated struct {
	inner  node
	span   ibl.Region
	prefix []ibl.Token
	suffix []ibl.Token
	vocab  *ibl.Vocabulary
}

func (r *repeated) region() ibl.Region { return r.span }

func (r *repeated) variant() int { return r.inner.variant() }

func (r *repeated) key() string { return r.inner.key() }

func (r *repeated) extract(page *ibl.ExtractionPage, start, end int, ignored []ibl.Region) []value {
	tokens := page.Tokens
	if end == ibl.NoIndex {
		end = len(tokens)
	}
	plen, slen := len(r.prefix), len(r.suffix)
	index := max(0, start-plen)
	maxIndex := min(len(tokens)-slen, end+slen)
	maxStart := maxIndex - plen

	var out []value
	for index <= maxStart {
		prefixEnd := index + plen
		if !slices.Equal(tokens[index:prefixEnd], r.prefix) {
			index++
			continue
		}
		peek := prefixEnd
		for ; peek < maxIndex; peek++ {
			if slices.Equal(tokens[peek:peek+slen], r.suffix) {
				break
			}
		}
		if peek >= maxIndex {
			break
		}
		out = append(out, r.inner.extract(page, prefixEnd-1, peek, ignored)...)
		index = max(peek, index+1)
	}
	return out
}

func (r *repeated) String() string {
	return fmt.Sprintf("repeated[%d:%d] prefix=%q suffix=%q\n  %s",
		r.span.Start, r.span.End, r.vocab.Strings(r.prefix), r.vocab.Strings(r.suffix), indent(r.inner.String()))
}

// mergeRepeated replaces runs of consecutive nodes that extract the same
// kind of item with a single repeated node, when the tokens separating
// them share a long enough prefix and suffix.
func mergeRepeated(tokens []ibl.Token, vocab *ibl.Vocabulary, nodes []node, threshold float64) []node {
	var out []node
	for _, run := range runs(nodes, func(n node) string { return n.key() }) {
		if len(run) == 1 {
			out = append(out, run[0])
			continue
		}
		if r := learnRepeated(tokens, vocab, run, threshold); r != nil {
			out = append(out, r)
			continue
		}
		out = append(out, run...)
	}
	return out
}

func learnRepeated(tokens []ibl.Token, vocab *ibl.Vocabulary, run []node, threshold float64) *repeated {
	gaps := make([][]ibl.Token, len(run)-1)
	for i := range gaps {
		gaps[i] = clip(tokens, run[i].region().End, run[i+1].region().Start+1)
	}

	groupStart := run[0].region().Start
	firstPrefix := clip(tokens, groupStart-len(gaps[0]), groupStart+1)
	rprefixes := [][]ibl.Token{reversed(firstPrefix)}
	for _, g := range gaps {
		rprefixes = append(rprefixes, reversed(g))
	}
	prefix := reversed(CommonPrefix(rprefixes...))

	groupEnd := run[len(run)-1].region().End
	lastSuffix := clip(tokens, groupEnd, groupEnd+len(gaps[len(gaps)-1]))
	suffix := CommonPrefix(append(slices.Clone(gaps), lastSuffix)...)

	if float64(len(prefix)+len(suffix)) < threshold*float64(len(gaps)) {
		return nil
	}
	return &repeated{
		inner:  run[0],
		span:   ibl.Region{Start: groupStart, End: groupEnd},
		prefix: slices.Clone(prefix),
		suffix: slices.Clone(suffix),
		vocab:  vocab,
	}
}

// runs splits nodes into maximal runs of consecutive equal keys.
func runs[K comparable](nodes []node, keyOf func(node) K) [][]node {
	var out [][]node
	for i, n := range nodes {
		if i > 0 && keyOf(nodes[i-1]) == keyOf(n) {
			out[len(out)-1] = append(out[len(out)-1], n)
			continue
		}
		out = append(out, []node{n})
	}
	return out
}
