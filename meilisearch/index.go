// Package meilisearch provides a remote search index of canonical records
// backed by Meilisearch.
package meilisearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/ramendex"
	"github.com/meilisearch/meilisearch-go"
)

// Compile-time interface verification.
var (
	_ ramendex.Indexer        = (*Index)(nil)
	_ ramendex.RecordSearcher = (*Index)(nil)
)

// DefaultIndexUID is the index records are written to unless configured otherwise.
const DefaultIndexUID = "records"

// settings configures search over record text and filtering on the
// record's classification fields.
var settings = meilisearch.Settings{
	SearchableAttributes: []string{"title", "menu_item", "store_name", "content", "introduction", "tags"},
	FilterableAttributes: []string{"section", "menu_category", "price_range", "tags"},
	SortableAttributes:   []string{"title"},
}

// Index implements ramendex.Indexer and ramendex.RecordSearcher against a
// Meilisearch server. Writes are enqueued as Meilisearch tasks, which the
// server applies in order.
type Index struct {
	client meilisearch.ServiceManager
	uid    string
}

// NewIndex creates an Index for the index uid on the server at url.
// An empty uid selects DefaultIndexUID.
func NewIndex(url, apiKey, uid string) *Index {
	if uid == "" {
		uid = DefaultIndexUID
	}
	return &Index{
		client: meilisearch.New(url, meilisearch.WithAPIKey(apiKey)),
		uid:    uid,
	}
}

// Replace deletes and recreates the index, configures it and adds docs.
func (i *Index) Replace(ctx context.Context, docs []*ramendex.IndexDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// A missing index is not an error here
	_, _ = i.client.DeleteIndex(i.uid)

	if _, err := i.client.CreateIndex(&meilisearch.IndexConfig{Uid: i.uid, PrimaryKey: "id"}); err != nil {
		return fmt.Errorf("create index %s: %w", i.uid, err)
	}
	s := settings
	if _, err := i.client.Index(i.uid).UpdateSettings(&s); err != nil {
		return fmt.Errorf("update settings of %s: %w", i.uid, err)
	}
	return i.Add(ctx, docs)
}

// Add sends docs in batches of ramendex.IndexBatchSize. Documents with an
// existing id replace the stored ones.
func (i *Index) Add(ctx context.Context, docs []*ramendex.IndexDocument) error {
	index := i.client.Index(i.uid)
	for _, batch := range ramendex.Batches(docs, ramendex.IndexBatchSize) {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, doc := range batch {
			if doc.ID == "" {
				return ramendex.Errorf(ramendex.EINVALID, "index document for %q has no id", doc.URL)
			}
		}
		if _, err := index.AddDocuments(batch, nil); err != nil {
			return fmt.Errorf("add documents to %s: %w", i.uid, err)
		}
	}
	return nil
}

// FindRecords searches the index. Filters become a Meilisearch filter
// expression over the filterable attributes.
func (i *Index) FindRecords(ctx context.Context, filter ramendex.RecordFilter) ([]*ramendex.Record, error) {
	req := &meilisearch.SearchRequest{
		Offset: int64(filter.Offset),
	}
	if filter.Limit > 0 {
		req.Limit = int64(filter.Limit)
	}
	if expr := filterExpression(filter); expr != "" {
		req.Filter = expr
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := i.client.Index(i.uid).Search(filter.Query, req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", i.uid, err)
	}

	data, err := json.Marshal(res.Hits)
	if err != nil {
		return nil, err
	}
	var records []*ramendex.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}
	return records, nil
}

func filterExpression(filter ramendex.RecordFilter) string {
	var parts []string
	if filter.Section != nil {
		parts = append(parts, "section = "+quote(string(*filter.Section)))
	}
	if filter.MenuCategory != nil {
		parts = append(parts, "menu_category = "+quote(string(*filter.MenuCategory)))
	}
	if filter.PriceRange != nil {
		parts = append(parts, "price_range = "+quote(string(*filter.PriceRange)))
	}
	return strings.Join(parts, " AND ")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
