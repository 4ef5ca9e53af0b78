// Package bloom provides a record-name membership prescreen using Bloom
// filters. Exact-match deep-link queries can skip the dataset scan when the
// name is definitely absent.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Index wraps a Bloom filter over record names. Lookups are
// case-insensitive to mirror the query engine's case-insensitive matching.
type Index struct {
	f *bloom.BloomFilter
}

// fpRate keeps false positives rare enough that the prescreen almost always
// decides; a false positive only costs the scan that would have run anyway.
const fpRate = 0.001

// NewIndex creates an Index over the given record names.
func NewIndex(names []string) *Index {
	n := uint(len(names))
	if n == 0 {
		n = 1
	}
	f := bloom.NewWithEstimates(n, fpRate)
	for _, name := range names {
		f.AddString(strings.ToUpper(name))
	}
	return &Index{f: f}
}

// MayContain returns true if a record with the given name might exist.
// False positives are possible; false negatives are not.
func (i *Index) MayContain(name string) bool {
	return i.f.TestString(strings.ToUpper(name))
}

// EstimatedCount returns the approximate number of indexed names.
func (i *Index) EstimatedCount() uint {
	return uint(i.f.ApproximatedSize())
}
