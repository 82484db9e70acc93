package clean

import (
	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/bloom"
)

// Deduplicator keeps the first record seen for each identity key. The
// Bloom filter answers most lookups for new keys; the exact set settles
// its false positives.
type Deduplicator struct {
	filter *bloom.Filter
	seen   map[string]struct{}
}

// NewDeduplicator creates a Deduplicator sized for about n records.
func NewDeduplicator(n int) *Deduplicator {
	return &Deduplicator{
		filter: bloom.NewFilter(uint(max(n, 1)), 0.01),
		seen:   make(map[string]struct{}, n),
	}
}

// Seen reports whether a record with the same identity key was seen
// before, and records r's key otherwise.
func (d *Deduplicator) Seen(r *ramendex.Record) bool {
	key := r.IdentityKey()
	if d.filter.TestAndAdd(key) {
		if _, ok := d.seen[key]; ok {
			return true
		}
	}
	d.seen[key] = struct{}{}
	return false
}

// Dedupe returns records with later duplicates removed, and the number of
// records dropped. Order is preserved.
func Dedupe(records []*ramendex.Record) ([]*ramendex.Record, int) {
	d := NewDeduplicator(len(records))
	out := make([]*ramendex.Record, 0, len(records))
	dropped := 0
	for _, r := range records {
		if d.Seen(r) {
			dropped++
			continue
		}
		out = append(out, r)
	}
	return out, dropped
}
