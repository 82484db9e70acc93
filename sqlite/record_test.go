package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuDoc(id, item string, category ramendex.Category, price ramendex.PriceRange) *ramendex.IndexDocument {
	return &ramendex.IndexDocument{
		ID: id,
		Record: ramendex.Record{
			URL:          "https://afuri.com/menu",
			Title:        item,
			Content:      item + " served at every AFURI store.",
			Section:      ramendex.SectionMenu,
			MenuItem:     item,
			MenuCategory: category,
			PriceRange:   price,
		},
	}
}

func countRows(t *testing.T, db *sqlite.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestRecordIndex_Replace(t *testing.T) {
	t.Parallel()

	t.Run("clears previous documents", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		idx := sqlite.NewRecordIndex(db)
		ctx := context.Background()

		require.NoError(t, idx.Replace(ctx, []*ramendex.IndexDocument{
			menuDoc("1", "Gyoza", ramendex.CategorySideDishes, ramendex.PriceUnder1000),
			menuDoc("2", "Karaage", ramendex.CategorySideDishes, ramendex.PriceUnder1000),
		}))
		require.NoError(t, idx.Replace(ctx, []*ramendex.IndexDocument{
			menuDoc("3", "Yuzu Shio Ramen", ramendex.CategoryRamen, ramendex.Price1000To2000),
		}))

		records, err := idx.FindRecords(ctx, ramendex.RecordFilter{})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Yuzu Shio Ramen", records[0].Title)
		assert.Equal(t, 1, countRows(t, db, "records_fts"))
	})

	t.Run("stores more documents than one batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		idx := sqlite.NewRecordIndex(db)

		var docs []*ramendex.IndexDocument
		for i := range 25 {
			docs = append(docs, menuDoc(fmt.Sprint(i), fmt.Sprintf("Item %d", i), ramendex.CategoryOthers, ramendex.PriceUnder1000))
		}

		require.NoError(t, idx.Replace(context.Background(), docs))

		assert.Equal(t, 25, countRows(t, db, "records"))
	})

	t.Run("rejects documents without id and keeps the old index", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		idx := sqlite.NewRecordIndex(db)
		ctx := context.Background()

		require.NoError(t, idx.Replace(ctx, []*ramendex.IndexDocument{
			menuDoc("1", "Gyoza", ramendex.CategorySideDishes, ramendex.PriceUnder1000),
		}))

		err := idx.Replace(ctx, []*ramendex.IndexDocument{
			menuDoc("", "Karaage", ramendex.CategorySideDishes, ramendex.PriceUnder1000),
		})

		assert.Equal(t, ramendex.EINVALID, ramendex.ErrorCode(err))
		assert.Equal(t, 1, countRows(t, db, "records"))
	})
}

func TestRecordIndex_Add(t *testing.T) {
	t.Parallel()

	t.Run("overwrites documents with the same id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		idx := sqlite.NewRecordIndex(db)
		ctx := context.Background()

		require.NoError(t, idx.Add(ctx, []*ramendex.IndexDocument{
			menuDoc("1", "Gyoza", ramendex.CategorySideDishes, ramendex.PriceUnder1000),
		}))
		updated := menuDoc("1", "Gyoza", ramendex.CategorySideDishes, ramendex.PriceUnder1000)
		updated.Content = "Pan-fried pork dumplings."
		require.NoError(t, idx.Add(ctx, []*ramendex.IndexDocument{updated}))

		records, err := idx.FindRecords(ctx, ramendex.RecordFilter{Query: "dumplings"})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Pan-fried pork dumplings.", records[0].Content)
		assert.Equal(t, 1, countRows(t, db, "records"))
		assert.Equal(t, 1, countRows(t, db, "records_fts"))
	})

	t.Run("keeps unchanged documents", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		idx := sqlite.NewRecordIndex(db)
		ctx := context.Background()
		doc := menuDoc("1", "Gyoza", ramendex.CategorySideDishes, ramendex.PriceUnder1000)

		require.NoError(t, idx.Add(ctx, []*ramendex.IndexDocument{doc}))
		require.NoError(t, idx.Add(ctx, []*ramendex.IndexDocument{doc}))

		assert.Equal(t, 1, countRows(t, db, "records"))
		assert.Equal(t, 1, countRows(t, db, "records_fts"))
	})
}

func TestRecordIndex_FindRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.RecordIndex {
		t.Helper()
		idx := sqlite.NewRecordIndex(setupTestDB(t))
		store := &ramendex.IndexDocument{
			ID: "4",
			Record: ramendex.Record{
				URL:       "https://afuri.com/stores",
				Title:     "AFURI Ebisu",
				Content:   "1-1-7 Ebisu, Shibuya-ku\nTEL 03-5795-0750",
				Section:   ramendex.SectionStore,
				StoreName: "AFURI Ebisu",
				Tags:      []string{"tokyo"},
			},
		}
		require.NoError(t, idx.Replace(context.Background(), []*ramendex.IndexDocument{
			menuDoc("1", "Yuzu Shio Ramen", ramendex.CategoryRamen, ramendex.Price1000To2000),
			menuDoc("2", "Gyoza", ramendex.CategorySideDishes, ramendex.PriceUnder1000),
			menuDoc("3", "Yuzu Lemonade", ramendex.CategoryDrinks, ramendex.PriceUnder1000),
			store,
		}))
		return idx
	}

	t.Run("returns all records in insertion order", func(t *testing.T) {
		t.Parallel()

		records, err := seed(t).FindRecords(context.Background(), ramendex.RecordFilter{})

		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, "Yuzu Shio Ramen", records[0].Title)
		assert.Equal(t, "AFURI Ebisu", records[3].Title)
		assert.Equal(t, []string{"tokyo"}, records[3].Tags)
		assert.Nil(t, records[0].Tags)
	})

	t.Run("matches full-text query", func(t *testing.T) {
		t.Parallel()

		records, err := seed(t).FindRecords(context.Background(), ramendex.RecordFilter{Query: "yuzu"})

		require.NoError(t, err)
		require.Len(t, records, 2)
		titles := []string{records[0].Title, records[1].Title}
		assert.ElementsMatch(t, []string{"Yuzu Shio Ramen", "Yuzu Lemonade"}, titles)
	})

	t.Run("treats query punctuation as text", func(t *testing.T) {
		t.Parallel()

		records, err := seed(t).FindRecords(context.Background(), ramendex.RecordFilter{Query: `Ebisu, "Shibuya-ku`})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "AFURI Ebisu", records[0].StoreName)
	})

	t.Run("filters by section, category and price range", func(t *testing.T) {
		t.Parallel()

		idx := seed(t)
		ctx := context.Background()
		menu := ramendex.SectionMenu
		under := ramendex.PriceUnder1000
		drinks := ramendex.CategoryDrinks

		records, err := idx.FindRecords(ctx, ramendex.RecordFilter{Section: &menu, PriceRange: &under})
		require.NoError(t, err)
		assert.Len(t, records, 2)

		records, err = idx.FindRecords(ctx, ramendex.RecordFilter{MenuCategory: &drinks})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Yuzu Lemonade", records[0].Title)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		idx := seed(t)
		ctx := context.Background()

		records, err := idx.FindRecords(ctx, ramendex.RecordFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Gyoza", records[0].Title)

		records, err = idx.FindRecords(ctx, ramendex.RecordFilter{Offset: 3})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "AFURI Ebisu", records[0].Title)
	})
}
