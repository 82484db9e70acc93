package ramendex

import "context"

// IndexBatchSize is the number of documents sent to an index per request.
const IndexBatchSize = 10

// IndexDocument is a canonical record carrying the unique id assigned to it
// for indexing.
type IndexDocument struct {
	ID string `json:"id"`
	Record
}

// Indexer accepts finished records for search indexing.
type Indexer interface {
	// Replace clears the index, then adds docs.
	Replace(ctx context.Context, docs []*IndexDocument) error

	// Add adds docs to the index, overwriting documents with the same ID.
	Add(ctx context.Context, docs []*IndexDocument) error
}

// RecordSearcher finds indexed records.
type RecordSearcher interface {
	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	// Query is a full-text query over title and content.
	Query string `json:"query"`

	Section      *Section    `json:"section"`
	MenuCategory *Category   `json:"menuCategory"`
	PriceRange   *PriceRange `json:"priceRange"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Batches splits docs into consecutive slices of at most size documents.
func Batches(docs []*IndexDocument, size int) [][]*IndexDocument {
	if size <= 0 {
		size = IndexBatchSize
	}
	var out [][]*IndexDocument
	for start := 0; start < len(docs); start += size {
		end := min(start+size, len(docs))
		out = append(out, docs[start:end])
	}
	return out
}
