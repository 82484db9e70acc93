package ramendex

import (
	"context"
	"math"
	"strings"
)

// Embedder turns text into a vector.
type Embedder interface {
	// Embed returns the embedding of text. A nil vector with a nil error
	// means the service produced no embedding for the input.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// embeddingContentRunes caps how much record content feeds an embedding.
const embeddingContentRunes = 500

// EmbeddingText builds the text embedded for a record: title, menu item when
// it differs from the title, leading content and category.
func EmbeddingText(r *Record) string {
	parts := make([]string, 0, 4)
	if r.Title != "" {
		parts = append(parts, r.Title)
	}
	if r.MenuItem != "" && r.MenuItem != r.Title {
		parts = append(parts, r.MenuItem)
	}
	if r.Content != "" {
		content := []rune(r.Content)
		if len(content) > embeddingContentRunes {
			content = content[:embeddingContentRunes]
		}
		parts = append(parts, string(content))
	}
	if r.MenuCategory != "" {
		parts = append(parts, string(r.MenuCategory))
	}
	return strings.Join(parts, " ")
}

// Similarity returns the cosine similarity of a and b clamped to [0, 1].
// Vectors of different length or zero magnitude have similarity 0.
func Similarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return math.Max(0, math.Min(1, sim))
}
