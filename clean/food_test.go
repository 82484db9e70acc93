package clean_test

import (
	"testing"

	"github.com/fwojciec/ramendex/clean"
	"github.com/stretchr/testify/assert"
)

func TestFoodClassifier_IsNonFood(t *testing.T) {
	t.Parallel()

	f := clean.NewFoodClassifier(clean.DefaultVocabulary())

	tests := []struct {
		name    string
		title   string
		content string
		want    bool
	}{
		{"merchandise title overrides food words in body", "AFURI Original Mug", "Perfect for pork ramen nights.", true},
		{"food title stays food", "Pork Chashu Gohan", "Rice bowl topped with chashu.", false},
		{"apparel with food word in title", "Yuzu T-shirt", "", true},
		{"plural merchandise", "AFURI Stickers", "A set of five.", true},
		{"printed media without food words", "AFURI Zine Vol. 2", "Photography and essays.", true},
		{"merchandise only in body without food words", "Canvas Tote", "Sturdy canvas bag.", true},
		{"food word in body only mention", "Gift Box", "Contains two servings of ramen.", false},
		{"no signal defaults to food", "Gift Voucher", "", false},
		{"body-only override is ignored", "Yuzu Shio Ramen", "Served in our signature mug-shaped bowl.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.IsNonFood(tt.title, tt.content))
		})
	}
}
