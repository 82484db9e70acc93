package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ramendex"
)

// Ensure LoggingIndexer implements ramendex.Indexer.
var _ ramendex.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with logging.
type LoggingIndexer struct {
	next   ramendex.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next ramendex.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Replace delegates to the wrapped indexer and logs the operation.
func (i *LoggingIndexer) Replace(ctx context.Context, docs []*ramendex.IndexDocument) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index replace",
			"docs", len(docs),
			"batches", len(ramendex.Batches(docs, ramendex.IndexBatchSize)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Replace(ctx, docs)
}

// Add delegates to the wrapped indexer and logs the operation.
func (i *LoggingIndexer) Add(ctx context.Context, docs []*ramendex.IndexDocument) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index add",
			"docs", len(docs),
			"batches", len(ramendex.Batches(docs, ramendex.IndexBatchSize)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Add(ctx, docs)
}
