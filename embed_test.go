package ramendex_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddingText(t *testing.T) {
	t.Parallel()

	t.Run("joins title, distinct item, content and category", func(t *testing.T) {
		t.Parallel()

		r := &ramendex.Record{Title: "Yuzu", MenuItem: "Yuzu Shio Ramen", Content: "broth", MenuCategory: ramendex.CategoryRamen}

		assert.Equal(t, "Yuzu Yuzu Shio Ramen broth Ramen", ramendex.EmbeddingText(r))
	})

	t.Run("skips the item when it equals the title", func(t *testing.T) {
		t.Parallel()

		r := &ramendex.Record{Title: "Gyoza", MenuItem: "Gyoza", Content: "pan fried"}

		assert.Equal(t, "Gyoza pan fried", ramendex.EmbeddingText(r))
	})

	t.Run("truncates content to 500 runes", func(t *testing.T) {
		t.Parallel()

		r := &ramendex.Record{Content: strings.Repeat("麺", 600)}

		assert.Equal(t, 500, len([]rune(ramendex.EmbeddingText(r))))
	})
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, ramendex.Similarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, ramendex.Similarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, 0.0, ramendex.Similarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, ramendex.Similarity([]float32{1}, []float32{1, 2}))
	assert.Zero(t, ramendex.Similarity([]float32{0, 0}, []float32{1, 2}))
}
