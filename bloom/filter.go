// Package bloom provides identity-key pre-filtering using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Filter wraps a Bloom filter over record identity keys. Keys are reduced
// to fixed-size xxhash digests before insertion, so arbitrarily long
// composite keys cost the same to test.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a key to the filter.
func (f *Filter) Add(key string) {
	f.f.Add(digest(key))
}

// Test returns true if the key might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(key string) bool {
	return f.f.Test(digest(key))
}

// TestAndAdd reports whether the key might already be present, then adds it.
func (f *Filter) TestAndAdd(key string) bool {
	return f.f.TestAndAdd(digest(key))
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func digest(key string) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], xxhash.Sum64String(key))
	return b[:]
}
