// Package html tokenizes HTML pages and parses annotated templates and
// target pages into ibl pages using golang.org/x/net/html.
package html

import (
	"strings"

	"github.com/fwojciec/ibl"
	xhtml "golang.org/x/net/html"
)

// Fragment is one lexical piece of a page: a tag or a run of text.
type Fragment struct {
	// Text is true for text runs; Kind, Tag and Attrs are unset then.
	Text bool

	Kind  ibl.TokenKind
	Tag   string
	Attrs map[string]string

	// Start and End are byte offsets into the source.
	Start int
	End   int
}

// Tokenize splits markup into fragments that cover it contiguously.
// Comments, doctypes and anything the tokenizer cannot read as a tag are
// folded into the surrounding text.
func Tokenize(markup string) []Fragment {
	var frags []Fragment
	appendText := func(start, end int) {
		if start >= end {
			return
		}
		if n := len(frags); n > 0 && frags[n-1].Text && frags[n-1].End == start {
			frags[n-1].End = end
			return
		}
		frags = append(frags, Fragment{Text: true, Start: start, End: end})
	}

	z := xhtml.NewTokenizer(strings.NewReader(markup))
	offset := 0
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		// Raw must be measured before TagAttr unescapes values in place.
		size := len(z.Raw())
		start, end := offset, offset+size
		offset = end

		switch tt {
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			f := Fragment{Tag: string(name), Start: start, End: end}
			switch tt {
			case xhtml.StartTagToken:
				f.Kind = ibl.OpenTag
			case xhtml.EndTagToken:
				f.Kind = ibl.CloseTag
			default:
				f.Kind = ibl.UnpairedTag
			}
			if hasAttr {
				f.Attrs = make(map[string]string)
				for more := true; more; {
					var k, v []byte
					k, v, more = z.TagAttr()
					if _, dup := f.Attrs[string(k)]; !dup {
						f.Attrs[string(k)] = string(v)
					}
				}
			}
			frags = append(frags, f)
		default:
			appendText(start, end)
		}
	}
	// Unterminated markup at EOF degrades to text.
	appendText(offset, len(markup))
	return frags
}
