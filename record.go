package ramendex

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawRecord is a free-form record produced by a scraper. Keys are optional
// and values may carry HTML, entities or encoding artifacts.
type RawRecord map[string]any

// Get returns the value stored under key as a string.
// Absent keys and non-scalar values yield the empty string.
func (r RawRecord) Get(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

// List returns the value stored under key as a list of strings.
// A single string value is returned as a one-element list.
func (r RawRecord) List(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// Has reports whether key holds a non-empty value.
func (r RawRecord) Has(key string) bool {
	return strings.TrimSpace(r.Get(key)) != "" || len(r.List(key)) > 0
}

// Section identifies the kind of page a record was scraped from.
type Section string

// Record sections.
const (
	SectionMenu  Section = "Menu"
	SectionStore Section = "Store Information"
	SectionBrand Section = "Brand Information"
)

// ParseSection maps a free-form section label onto a Section. Spacing and
// case are ignored. Unknown labels return false.
func ParseSection(s string) (Section, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	key = strings.ReplaceAll(key, "_", "")
	switch key {
	case "menu":
		return SectionMenu, true
	case "storeinformation", "store", "stores":
		return SectionStore, true
	case "brandinformation", "brand", "about":
		return SectionBrand, true
	}
	return "", false
}

// Category is the closed set of menu categories.
type Category string

// Menu categories.
const (
	CategoryRamen      Category = "Ramen"
	CategoryTsukemen   Category = "Tsukemen"
	CategoryNoodles    Category = "Noodles"
	CategoryChiyu      Category = "Chi-yu"
	CategorySideDishes Category = "SideDishes"
	CategoryDrinks     Category = "Drinks"
	CategorySoup       Category = "Soup"
	CategoryOthers     Category = "Others"
	CategoryGiftSet    Category = "GiftSet"
	CategorySauce      Category = "Sauce"
	CategoryFrozen     Category = "Frozen"
	CategoryKidsMenu   Category = "KidsMenu"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryRamen, CategoryTsukemen, CategoryNoodles, CategoryChiyu,
	CategorySideDishes, CategoryDrinks, CategorySoup, CategoryOthers,
	CategoryGiftSet, CategorySauce, CategoryFrozen, CategoryKidsMenu,
}

// ParseCategory matches s case-insensitively against the closed category
// set, ignoring spaces and hyphens.
func ParseCategory(s string) (Category, bool) {
	key := categoryKey(s)
	if key == "" {
		return "", false
	}
	for _, c := range Categories {
		if categoryKey(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

func categoryKey(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// PriceRange is one of the fixed price buckets, in ascending order.
type PriceRange string

// Price buckets. Each lower bound is inclusive.
const (
	PriceUnder1000   PriceRange = "Under ¥1,000"
	Price1000To2000  PriceRange = "¥1,000 - ¥2,000"
	Price2000To3000  PriceRange = "¥2,000 - ¥3,000"
	Price3000To5000  PriceRange = "¥3,000 - ¥5,000"
	Price5000To10000 PriceRange = "¥5,000 - ¥10,000"
	PriceOver10000   PriceRange = "¥10,000+"
)

// Record is a canonical, cleaned record ready for indexing. Optional fields
// are omitted from JSON when empty.
type Record struct {
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Section      Section    `json:"section"`
	Date         string     `json:"date,omitempty"`
	Author       string     `json:"author,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	MenuItem     string     `json:"menu_item,omitempty"`
	MenuCategory Category   `json:"menu_category,omitempty"`
	StoreName    string     `json:"store_name,omitempty"`
	Price        string     `json:"price,omitempty"`
	PriceRange   PriceRange `json:"price_range,omitempty"`
	Introduction string     `json:"introduction,omitempty"`
	Ingredients  string     `json:"ingredients,omitempty"`

	// keyItem names the item for the identity key when MenuItem is empty.
	keyItem string
}

// SetKeyItem sets the item name used by IdentityKey for a menu record that
// has no MenuItem. It is not serialized.
func (r *Record) SetKeyItem(name string) {
	r.keyItem = name
}

// IdentityKey returns the deduplication key for the record. Menu records
// are keyed by URL, category and item name (MenuItem, else the key item);
// store records by URL and store name; everything else by URL alone.
func (r *Record) IdentityKey() string {
	switch r.Section {
	case SectionMenu:
		item := r.MenuItem
		if item == "" {
			item = r.keyItem
		}
		if item != "" {
			return strings.Join([]string{r.URL, string(r.MenuCategory), item}, "\x1f")
		}
	case SectionStore:
		if r.StoreName != "" {
			return strings.Join([]string{r.URL, r.StoreName}, "\x1f")
		}
	}
	return r.URL
}

// HasTag reports whether the record carries tag, ignoring case.
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
