// Package extract learns extraction trees from annotated templates and
// applies them to target pages.
//
// A target page is aligned to a template by searching for the template
// tokens that precede and follow each annotated region. A region is only
// located when one candidate position matches strictly better than every
// other, so ambiguous pages yield nothing rather than wrong data.
package extract

import "github.com/fwojciec/ibl"

// CommonPrefix returns the longest prefix shared by all seqs.
func CommonPrefix[T comparable](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return nil
	}
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		n = min(n, commonPrefixLength(seqs[0], s))
	}
	return seqs[0][:n]
}

func commonPrefixLength[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// LongestUniqueSubsequence finds the position in haystack[start:end] where
// the longest prefix of needle occurs. The matched run may extend past end.
// It reports false when needle is empty, nothing matches, or the best
// length is shared by more than one position.
func LongestUniqueSubsequence[T comparable](haystack, needle []T, start, end int) (index, length int, ok bool) {
	if len(needle) == 0 {
		return 0, 0, false
	}
	start = max(start, 0)
	if end == ibl.NoIndex || end > len(haystack) {
		end = len(haystack)
	}
	best, bestLen, tied := -1, 0, false
	first := needle[0]
	for i := start; i < end; i++ {
		if haystack[i] != first {
			continue
		}
		l := commonPrefixLength(haystack[i:], needle)
		switch {
		case l > bestLen:
			best, bestLen, tied = i, l, false
		case l == bestLen:
			tied = true
		}
	}
	if best < 0 || tied {
		return 0, 0, false
	}
	return best, bestLen, true
}

// Match is the result of locating a template region in a target page.
// A zero Score means the region was not found.
type Match struct {
	Score int
	Start int
	End   int
}

func noMatch() Match {
	return Match{Start: ibl.NoIndex, End: ibl.NoIndex}
}

// SimilarRegion locates the template region in target, searching for the
// region's start anchor within target[start:end).
//
// The template tokens up to and including region.Start are matched
// backwards from each candidate anchor; the tokens from region.End onwards
// are matched forwards after the anchor. The score is the number of
// matched tokens.
func SimilarRegion(target, template []ibl.Token, region ibl.Region, start, end int) Match {
	n := len(target)
	if end == ibl.NoIndex || end > n {
		end = n
	}
	start = max(start, 0)
	if start >= end || region.Start < 0 || region.Start >= len(template) {
		return noMatch()
	}

	rprefix := reversed(template[:region.Start+1])
	rtarget := reversed(target)
	rpi, pscore, ok := LongestUniqueSubsequence(rtarget, rprefix, n-end, n-start)
	if !ok || rpi == 0 {
		return noMatch()
	}
	prefixIndex := n - rpi - 1
	if region.End == ibl.NoIndex {
		return Match{Score: pscore, Start: prefixIndex, End: ibl.NoIndex}
	}

	var suffix []ibl.Token
	if region.End < len(template) {
		suffix = template[region.End:]
	}
	if region.Start == region.End {
		mi, sscore, ok := LongestUniqueSubsequence(target, suffix, prefixIndex, end)
		switch {
		case ok && mi == prefixIndex:
			return Match{Score: pscore + sscore, Start: prefixIndex, End: mi}
		case pscore > sscore:
			return Match{Score: pscore, Start: prefixIndex, End: prefixIndex}
		case sscore > pscore:
			return Match{Score: sscore, Start: mi, End: mi}
		}
		return noMatch()
	}

	mi, sscore, ok := LongestUniqueSubsequence(target, suffix, prefixIndex+1, end)
	if !ok {
		return noMatch()
	}
	return Match{Score: pscore + sscore, Start: prefixIndex, End: mi}
}

func reversed[T any](s []T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
