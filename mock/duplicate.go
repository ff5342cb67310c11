package mock

import "github.com/fwojciec/ibl"

var _ ibl.DuplicateFilter = (*DuplicateFilter)(nil)

// DuplicateFilter is a mock implementation of ibl.DuplicateFilter.
type DuplicateFilter struct {
	SeenFn func(html string) bool
}

func (f *DuplicateFilter) Seen(html string) bool {
	return f.SeenFn(html)
}
