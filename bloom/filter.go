// Package bloom detects repeated input pages in batch runs using a Bloom
// filter.
package bloom

import (
	"encoding/binary"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ibl"
)

var _ ibl.DuplicateFilter = (*Filter)(nil)

// Filter remembers page digests. A page may be reported as seen when it
// was not (false positive at the configured rate) but never the reverse.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected pages
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records html and reports whether it was recorded before.
func (f *Filter) Seen(html string) bool {
	key := digest(html)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAdd(key)
}

// EstimatedCount returns the approximate number of distinct pages seen.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

func digest(html string) []byte {
	return binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(html))
}
