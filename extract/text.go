package extract

import (
	"strings"
	"unicode"

	"github.com/fwojciec/ibl"
)

// textRegion cuts a value out of an element's text using the literal text
// that preceded and followed a partial annotation in the template.
type textRegion struct {
	rprefix   []rune
	suffix    []rune
	minPrefix int
	minSuffix int
}

func newTextRegion(prefix, suffix string) *textRegion {
	rprefix := reversed([]rune(prefix))
	return &textRegion{
		rprefix:   rprefix,
		suffix:    []rune(suffix),
		minPrefix: firstWordLength(string(rprefix)),
		minSuffix: firstWordLength(suffix),
	}
}

// firstWordLength is the minimum run an anchor must match: the length of
// its first word or punctuation run.
func firstWordLength(s string) int {
	words := ibl.Words(s)
	if len(words) == 0 {
		return 0
	}
	return len([]rune(words[0].Text))
}

// extract returns the text between the prefix and suffix anchors. Each
// anchor must match uniquely for at least its first word, otherwise the
// value is rejected.
func (t *textRegion) extract(text string) (string, bool) {
	runes := []rune(text)
	from := 0
	if t.minPrefix > 0 {
		i, l, ok := LongestUniqueSubsequence(reversed(runes), t.rprefix, 0, ibl.NoIndex)
		if !ok || l < t.minPrefix {
			return "", false
		}
		from = len(runes) - i
	}
	rest := runes[from:]
	if t.minSuffix > 0 {
		i, l, ok := LongestUniqueSubsequence(rest, t.suffix, 0, ibl.NoIndex)
		if !ok || l < t.minSuffix {
			return "", false
		}
		rest = rest[:i]
	}
	out := strings.TrimSpace(string(rest))
	return out, out != ""
}

func (t *textRegion) String() string {
	return "text region (" + string(reversed(t.rprefix)) + ", " + string(t.suffix) + ")"
}

// textPrefix strips a learned literal prefix from a value. Values that do
// not start with it are rejected.
type textPrefix struct {
	prefix string
}

func (t *textPrefix) extract(text string) (string, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if !strings.HasPrefix(text, t.prefix) {
		return "", false
	}
	out := strings.TrimSpace(strings.TrimPrefix(text, t.prefix))
	return out, out != ""
}

func (t *textPrefix) String() string {
	return "text prefix (" + t.prefix + ")"
}
