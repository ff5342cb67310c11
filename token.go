package ibl

import (
	"regexp"
	"strings"
)

// TokenKind classifies a page token.
type TokenKind uint8

const (
	// OpenTag is an opening tag such as <div>.
	OpenTag TokenKind = iota
	// CloseTag is a closing tag such as </div>.
	CloseTag
	// UnpairedTag is a self-closing tag such as <br/>.
	UnpairedTag
	// TextWord is a word or punctuation run inside text content.
	TextWord
)

// String returns a human-readable name for the kind.
func (k TokenKind) String() string {
	switch k {
	case OpenTag:
		return "open"
	case CloseTag:
		return "close"
	case UnpairedTag:
		return "unpaired"
	case TextWord:
		return "word"
	default:
		return "unknown"
	}
}

// Token is a vocabulary index paired with its kind. Two tokens are equal
// when both fields are equal, which makes Token usable with ==.
type Token struct {
	Index int
	Kind  TokenKind
}

type vocabKey struct {
	s    string
	kind TokenKind
}

// Vocabulary maps (string, kind) pairs to small stable integers.
//
// A Vocabulary is shared by all templates of one extractor. It is not safe
// for concurrent mutation: callers that parse pages concurrently must work
// on a Clone.
type Vocabulary struct {
	index   map[vocabKey]int
	entries []vocabKey
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[vocabKey]int)}
}

// Token returns the token for s, inserting it if needed.
func (v *Vocabulary) Token(s string, kind TokenKind) Token {
	k := vocabKey{s: s, kind: kind}
	if i, ok := v.index[k]; ok {
		return Token{Index: i, Kind: kind}
	}
	i := len(v.entries)
	v.index[k] = i
	v.entries = append(v.entries, k)
	return Token{Index: i, Kind: kind}
}

// Lookup returns the token for s without inserting it.
func (v *Vocabulary) Lookup(s string, kind TokenKind) (Token, bool) {
	i, ok := v.index[vocabKey{s: s, kind: kind}]
	return Token{Index: i, Kind: kind}, ok
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// String renders t back to markup-like text, e.g. "<p>", "</p>" or "<br/>".
func (v *Vocabulary) String(t Token) string {
	if t.Index < 0 || t.Index >= len(v.entries) {
		return "?"
	}
	s := v.entries[t.Index].s
	switch t.Kind {
	case OpenTag:
		return "<" + s + ">"
	case CloseTag:
		return "</" + s + ">"
	case UnpairedTag:
		return "<" + s + "/>"
	default:
		return s
	}
}

// Strings renders a token sequence, space separated.
func (v *Vocabulary) Strings(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = v.String(t)
	}
	return strings.Join(parts, " ")
}

// Clone returns an independent copy. Indices already assigned are preserved,
// so pages parsed with the clone align with templates parsed with v.
func (v *Vocabulary) Clone() *Vocabulary {
	c := &Vocabulary{
		index:   make(map[vocabKey]int, len(v.index)),
		entries: make([]vocabKey, len(v.entries)),
	}
	copy(c.entries, v.entries)
	for k, i := range v.index {
		c.index[k] = i
	}
	return c
}

// Word is a word or punctuation run found by Words.
type Word struct {
	Text  string
	Start int
	End   int
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)

// Words splits text into runs of word characters and runs of punctuation.
// Whitespace separates runs and is never part of one.
func Words(text string) []Word {
	locs := wordRe.FindAllStringIndex(text, -1)
	words := make([]Word, len(locs))
	for i, loc := range locs {
		words[i] = Word{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]}
	}
	return words
}

// WordTokens maps the words of text onto TextWord tokens.
func (v *Vocabulary) WordTokens(text string) []Token {
	words := Words(text)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = v.Token(w.Text, TextWord)
	}
	return tokens
}
