package mock

import (
	"context"

	"github.com/fwojciec/ramendex"
)

var _ ramendex.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of ramendex.Indexer.
type Indexer struct {
	ReplaceFn func(ctx context.Context, docs []*ramendex.IndexDocument) error
	AddFn     func(ctx context.Context, docs []*ramendex.IndexDocument) error
}

func (i *Indexer) Replace(ctx context.Context, docs []*ramendex.IndexDocument) error {
	return i.ReplaceFn(ctx, docs)
}

func (i *Indexer) Add(ctx context.Context, docs []*ramendex.IndexDocument) error {
	return i.AddFn(ctx, docs)
}

var _ ramendex.RecordSearcher = (*RecordSearcher)(nil)

// RecordSearcher is a mock implementation of ramendex.RecordSearcher.
type RecordSearcher struct {
	FindRecordsFn func(ctx context.Context, filter ramendex.RecordFilter) ([]*ramendex.Record, error)
}

func (s *RecordSearcher) FindRecords(ctx context.Context, filter ramendex.RecordFilter) ([]*ramendex.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
