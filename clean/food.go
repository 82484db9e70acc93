package clean

// FoodClassifier separates food from merchandise sold in the same shop.
type FoodClassifier struct {
	food         terms
	titleNonFood terms
	nonFood      []terms
}

// NewFoodClassifier compiles the vocabulary's food and non-food keyword lists.
func NewFoodClassifier(v *Vocabulary) *FoodClassifier {
	return &FoodClassifier{
		food:         newTerms(v.FoodKeywords, false),
		titleNonFood: newTerms(v.NonFoodTitlePatterns, true),
		nonFood: []terms{
			newTerms(v.ApparelKeywords, true),
			newTerms(v.MerchandiseKeywords, true),
			newTerms(v.PrintedMediaKeywords, true),
		},
	}
}

// IsNonFood reports whether an item is merchandise rather than food. A food
// keyword anywhere makes the item food unless the title names merchandise.
// Without food keywords the item is non-food only if it matches one of the
// apparel, merchandise or printed media lists. Everything else is food.
func (f *FoodClassifier) IsNonFood(title, content string) bool {
	if f.food.match(title) || f.food.match(content) {
		return f.titleNonFood.match(title)
	}
	for _, t := range f.nonFood {
		if t.match(title) || t.match(content) {
			return true
		}
	}
	return false
}
