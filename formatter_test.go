package ramendex_test

import (
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	t.Run("formats single record with title", func(t *testing.T) {
		t.Parallel()

		records := []*ramendex.Record{
			{Title: "Yuzu Shio Ramen", Content: "broth, chashu", Section: ramendex.SectionMenu, MenuCategory: ramendex.CategoryRamen},
		}

		result := ramendex.FormatRecords(records)

		assert.Equal(t, "## Yuzu Shio Ramen (Menu, Ramen)\nbroth, chashu", result)
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		records := []*ramendex.Record{
			{URL: "https://afuri.com/story", Content: "Since 2001.", Section: ramendex.SectionBrand},
		}

		result := ramendex.FormatRecords(records)

		assert.Equal(t, "## https://afuri.com/story (Brand Information)\nSince 2001.", result)
	})

	t.Run("includes price when present", func(t *testing.T) {
		t.Parallel()

		records := []*ramendex.Record{
			{Title: "Gift Box", Content: "Six bowls.", Section: ramendex.SectionMenu, MenuCategory: ramendex.CategoryGiftSet, Price: "¥3,580"},
		}

		result := ramendex.FormatRecords(records)

		assert.Equal(t, "## Gift Box (Menu, GiftSet, ¥3,580)\nSix bowls.", result)
	})

	t.Run("formats multiple records with blank line separator", func(t *testing.T) {
		t.Parallel()

		records := []*ramendex.Record{
			{Title: "One", Content: "First.", Section: ramendex.SectionBrand},
			{Title: "Two", Content: "Second.", Section: ramendex.SectionBrand},
		}

		result := ramendex.FormatRecords(records)

		assert.Equal(t, "## One (Brand Information)\nFirst.\n\n## Two (Brand Information)\nSecond.", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ramendex.FormatRecords(nil))
	})
}
