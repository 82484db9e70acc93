package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/ramendex"
)

// Compile-time interface verification.
var (
	_ ramendex.Indexer        = (*RecordIndex)(nil)
	_ ramendex.RecordSearcher = (*RecordIndex)(nil)
)

const recordColumns = "r.id, r.url, r.title, r.content, r.section, r.date, r.author, r.tags, r.categories, " +
	"r.menu_item, r.menu_category, r.store_name, r.price, r.price_range, r.introduction, r.ingredients"

// RecordIndex implements ramendex.Indexer and ramendex.RecordSearcher using SQLite.
type RecordIndex struct {
	db *DB
}

// NewRecordIndex creates a new RecordIndex.
func NewRecordIndex(db *DB) *RecordIndex {
	return &RecordIndex{db: db}
}

// Replace clears the index and adds docs in one transaction, so a failed
// run leaves the previous index in place.
func (s *RecordIndex) Replace(ctx context.Context, docs []*ramendex.IndexDocument) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM records_fts"); err != nil {
			return err
		}
		return s.upsert(ctx, tx, docs)
	})
}

// Add inserts docs, replacing stored documents with the same ID. Documents
// whose content is unchanged are left alone.
func (s *RecordIndex) Add(ctx context.Context, docs []*ramendex.IndexDocument) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.upsert(ctx, tx, docs)
	})
}

func (s *RecordIndex) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *RecordIndex) upsert(ctx context.Context, tx *sql.Tx, docs []*ramendex.IndexDocument) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, batch := range ramendex.Batches(docs, ramendex.IndexBatchSize) {
		for _, doc := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.upsertOne(ctx, tx, doc, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *RecordIndex) upsertOne(ctx context.Context, tx *sql.Tx, doc *ramendex.IndexDocument, now string) error {
	if doc.ID == "" {
		return ramendex.Errorf(ramendex.EINVALID, "index document for %q has no id", doc.URL)
	}
	hash, err := hashRecord(&doc.Record)
	if err != nil {
		return err
	}
	tags, err := encodeList(doc.Tags)
	if err != nil {
		return err
	}
	categories, err := encodeList(doc.Categories)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO records (id, url, title, content, section, date, author, tags, categories,
			menu_item, menu_category, store_name, price, price_range, introduction, ingredients,
			content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url, title = excluded.title, content = excluded.content,
			section = excluded.section, date = excluded.date, author = excluded.author,
			tags = excluded.tags, categories = excluded.categories,
			menu_item = excluded.menu_item, menu_category = excluded.menu_category,
			store_name = excluded.store_name, price = excluded.price,
			price_range = excluded.price_range, introduction = excluded.introduction,
			ingredients = excluded.ingredients, content_hash = excluded.content_hash,
			indexed_at = excluded.indexed_at
		WHERE records.content_hash != excluded.content_hash
	`, doc.ID, doc.URL, doc.Title, doc.Content, string(doc.Section), doc.Date, doc.Author, tags, categories,
		doc.MenuItem, string(doc.MenuCategory), doc.StoreName, doc.Price, string(doc.PriceRange),
		doc.Introduction, doc.Ingredients, hash, now)
	if err != nil {
		return fmt.Errorf("index record %s: %w", doc.ID, err)
	}

	// Unchanged documents keep their full-text row
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return nil
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM records_fts WHERE id = ?", doc.ID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO records_fts (id, title, menu_item, store_name, content)
		VALUES (?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, doc.MenuItem, doc.StoreName, doc.Content)
	return err
}

// FindRecords retrieves records matching the filter. Full-text matches are
// ordered by relevance, everything else by insertion order.
func (s *RecordIndex) FindRecords(ctx context.Context, filter ramendex.RecordFilter) ([]*ramendex.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records r")

	match := ftsQuery(filter.Query)
	if match != "" {
		query.WriteString(" JOIN (SELECT id, rank FROM records_fts WHERE records_fts MATCH ?) f ON f.id = r.id")
		args = append(args, match)
	}
	query.WriteString(" WHERE 1=1")

	if filter.Section != nil {
		query.WriteString(" AND r.section = ?")
		args = append(args, string(*filter.Section))
	}
	if filter.MenuCategory != nil {
		query.WriteString(" AND r.menu_category = ?")
		args = append(args, string(*filter.MenuCategory))
	}
	if filter.PriceRange != nil {
		query.WriteString(" AND r.price_range = ?")
		args = append(args, string(*filter.PriceRange))
	}

	if match != "" {
		query.WriteString(" ORDER BY f.rank, r.rowid")
	} else {
		query.WriteString(" ORDER BY r.rowid")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*ramendex.Record
	for rows.Next() {
		var r ramendex.Record
		var id, tags, categories string
		var section, category, priceRange string

		if err := rows.Scan(&id, &r.URL, &r.Title, &r.Content, &section, &r.Date, &r.Author, &tags, &categories,
			&r.MenuItem, &category, &r.StoreName, &r.Price, &priceRange, &r.Introduction, &r.Ingredients); err != nil {
			return nil, err
		}
		r.Section = ramendex.Section(section)
		r.MenuCategory = ramendex.Category(category)
		r.PriceRange = ramendex.PriceRange(priceRange)

		if r.Tags, err = decodeList(tags); err != nil {
			return nil, fmt.Errorf("failed to parse tags of %s: %w", id, err)
		}
		if r.Categories, err = decodeList(categories); err != nil {
			return nil, fmt.Errorf("failed to parse categories of %s: %w", id, err)
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}
