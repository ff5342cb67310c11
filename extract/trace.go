package extract

import (
	"fmt"

	"github.com/fwojciec/ibl"
)

const traceContext = 50

// traced wraps a node and reports what it matched and extracted.
type traced struct {
	inner    node
	template []ibl.Token
	vocab    *ibl.Vocabulary
}

func traceAll(nodes []node, template []ibl.Token, vocab *ibl.Vocabulary) []node {
	out := make([]node, len(nodes))
	for i, n := range nodes {
		if _, ok := n.(*traced); ok {
			out[i] = n
			continue
		}
		out[i] = &traced{inner: n, template: template, vocab: vocab}
	}
	return out
}

func (t *traced) region() ibl.Region { return t.inner.region() }

func (t *traced) variant() int { return t.inner.variant() }

func (t *traced) key() string { return t.inner.key() }

func (t *traced) extract(page *ibl.ExtractionPage, start, end int, ignored []ibl.Region) []value {
	vals := t.inner.extract(page, start, end, ignored)
	if len(vals) == 0 {
		return nil
	}
	pre, post := t.summarize(page, start, end, vals)
	out := make([]value, 0, len(vals)+2)
	out = append(out, value{trace: true, data: pre})
	out = append(out, vals...)
	return append(out, value{trace: true, data: post})
}

func (t *traced) summarize(page *ibl.ExtractionPage, start, end int, vals []value) (string, string) {
	reg := t.inner.region()
	tprefix := clip(t.template, reg.Start-4, reg.Start+1)
	var tsuffix []ibl.Token
	if reg.End != ibl.NoIndex {
		tsuffix = clip(t.template, reg.End, reg.End+5)
	}

	textStart := len(page.Source)
	if start >= 0 && start < len(page.TokenFollow) {
		textStart = page.TokenFollow[start]
	}
	textEnd := len(page.Source)
	if end != ibl.NoIndex && end < len(page.TokenStart) {
		textEnd = page.TokenStart[end]
	}

	pre := fmt.Sprintf("%s\n  page[%d:%d] after %q\n  template prefix %s",
		t.inner.String(), start, end,
		page.Source[max(0, textStart-traceContext):textStart],
		t.vocab.Strings(tprefix))
	post := fmt.Sprintf("extracted %d value(s): %s\n  page before %q\n  template suffix %s",
		len(vals), describe(vals),
		page.Source[textEnd:min(len(page.Source), textEnd+traceContext)],
		t.vocab.Strings(tsuffix))
	return pre, post
}

func describe(vals []value) string {
	var parts []string
	for _, v := range vals {
		switch {
		case v.trace:
		case v.group != nil:
			parts = append(parts, fmt.Sprintf("variant%v", v.group.Attributes))
		case v.variant != 0:
			parts = append(parts, fmt.Sprintf("variant %d: %s", v.variant, describe(v.nested)))
		default:
			parts = append(parts, fmt.Sprintf("%s=%q", v.name, v.data))
		}
	}
	return fmt.Sprint(parts)
}

func (t *traced) String() string {
	return "traced " + t.inner.String()
}
