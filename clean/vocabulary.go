package clean

import "github.com/fwojciec/ramendex"

// Vocabulary is the fixed configuration consulted by every cleaning stage:
// keyword tables, the known-item whitelist, thresholds and segmenter tables.
// It is built once before any record is processed and never mutated
// afterwards. Components compile it into their own read-only state.
type Vocabulary struct {
	// KnownItems is the curated list of exact menu item names. It serves as
	// the descriptive-filter whitelist and as the named-entity sweep list.
	KnownItems []string `yaml:"known_items"`

	// SentenceOpeners are lower-case prefixes that mark descriptive prose.
	SentenceOpeners []string `yaml:"sentence_openers"`
	// DescriptiveMarkers are lower-case substrings typical of prose.
	DescriptiveMarkers []string `yaml:"descriptive_markers"`
	// MaxNameLength is the rune length above which a candidate is rejected
	// unless it embeds a known item.
	MaxNameLength int `yaml:"max_name_length"`
	// SentenceNameLength is the rune length above which a candidate ending
	// in sentence punctuation is rejected.
	SentenceNameLength int `yaml:"sentence_name_length"`
	// MinWhitelistPrefix is the shortest candidate that may match a known
	// item by prefix.
	MinWhitelistPrefix int `yaml:"min_whitelist_prefix"`

	// NameOverrides maps lower-case item names straight to a category.
	NameOverrides map[string]ramendex.Category `yaml:"name_overrides"`
	// CategoryKeywords is scanned in order; the first category with a
	// matching keyword wins.
	CategoryKeywords []CategoryKeywords `yaml:"category_keywords"`
	// ProductCodes maps the two-letter code prefix of a shop product path
	// to a category.
	ProductCodes map[string]ramendex.Category `yaml:"product_codes"`
	// SectionEndMarkers terminate an item's content slice.
	SectionEndMarkers []string `yaml:"section_end_markers"`

	FoodKeywords         []string `yaml:"food_keywords"`
	NonFoodTitlePatterns []string `yaml:"non_food_title_patterns"`
	ApparelKeywords      []string `yaml:"apparel_keywords"`
	MerchandiseKeywords  []string `yaml:"merchandise_keywords"`
	PrintedMediaKeywords []string `yaml:"printed_media_keywords"`

	// MojibakeSampleRunes is how many leading runes are inspected for
	// double-encoding corruption.
	MojibakeSampleRunes int `yaml:"mojibake_sample_runes"`
	// MojibakeThreshold is the corrupted-pair ratio that triggers repair.
	MojibakeThreshold float64 `yaml:"mojibake_threshold"`

	// StoreDelimiter is a regular expression matching the line that
	// precedes every store in a directory page.
	StoreDelimiter   string       `yaml:"store_delimiter"`
	BrandPrefix      string       `yaml:"brand_prefix"`
	LocationKeywords []string     `yaml:"location_keywords"`
	StopTokens       []string     `yaml:"stop_tokens"`
	LocaleNames      []LocaleName `yaml:"locale_names"`
	PhoneMarkers     []string     `yaml:"phone_markers"`
	AddressMarkers   []string     `yaml:"address_markers"`
	Weekdays         []string     `yaml:"weekdays"`
	Countries        []string     `yaml:"countries"`

	// MinContentLength is the minimum content rune length per section.
	MinContentLength map[ramendex.Section]int `yaml:"min_content_length"`
	SkipURLPatterns  []string                 `yaml:"skip_url_patterns"`
	// SkipTitles are lower-case titles of listing pages.
	SkipTitles []string `yaml:"skip_titles"`
}

// CategoryKeywords binds a category to the keywords that imply it.
type CategoryKeywords struct {
	Category ramendex.Category `yaml:"category"`
	Keywords []string          `yaml:"keywords"`
}

// LocaleName maps an address or locale keyword to a canonical store name.
type LocaleName struct {
	Keyword string `yaml:"keyword"`
	Name    string `yaml:"name"`
}

// DefaultVocabulary returns the built-in tables. Each call returns a fresh
// value that the caller may overlay before handing it to NewCleaner.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		KnownItems: []string{
			"Yuzu Shio Ramen", "Yuzu Shoyu Ramen", "Yuzu Ratan Ramen", "Shio Ramen", "Shoyu Ramen",
			"Rainbow Vegan Ramen", "Vegan Ramen", "Kids Ramen", "Tantanmen",
			"Yuzu Shio Tsukemen", "Yuzu Tsuyu Tsukemen", "Kara Tsuyu Tsukemen",
			"Yuzu Shio Mazesoba", "Chi-yu",
			"Pork Chashu Gohan", "Chashu Gohan", "Gyoza", "Karaage", "Ajitama", "Seasoned Egg",
			"Nori 7 pieces", "Nori", "Menma", "Extra Chashu", "Edamame",
			"Yuzu Lemonade", "Yuzu Highball", "Draft Beer", "Yuzu Sake",
			"Ramen Gift Set", "Frozen Yuzu Shio Ramen", "Yuzu Kosho", "Yuzu Shio Tare",
		},
		SentenceOpeners: []string{
			"we ", "our ", "this ", "these ", "it ", "it's ", "enjoy ", "made with ", "available ",
			"please ", "try ", "each ", "all of ", "served ", "a bowl of ", "perfect for ",
			"introducing ", "if you ", "you can ", "when ", "there ", "here ",
		},
		DescriptiveMarkers: []string{
			" is ", " are ", " with ", " and ", " our ", " for ", " you ", " made ",
			" served ", " which ", " that ", " from ", "delicious", "perfect",
		},
		MaxNameLength:      60,
		SentenceNameLength: 25,
		MinWhitelistPrefix: 3,

		NameOverrides: map[string]ramendex.Category{
			"pork chashu gohan": ramendex.CategorySideDishes,
			"chashu gohan":      ramendex.CategorySideDishes,
			"ajitama":           ramendex.CategorySideDishes,
			"seasoned egg":      ramendex.CategorySideDishes,
			"menma":             ramendex.CategorySideDishes,
			"nori":              ramendex.CategorySideDishes,
			"nori 7 pieces":     ramendex.CategorySideDishes,
			"extra chashu":      ramendex.CategorySideDishes,
			"yuzu lemonade":     ramendex.CategoryDrinks,
			"yuzu highball":     ramendex.CategoryDrinks,
			"yuzu sake":         ramendex.CategoryDrinks,
			"draft beer":        ramendex.CategoryDrinks,
		},
		CategoryKeywords: []CategoryKeywords{
			{ramendex.CategoryChiyu, []string{"chi-yu", "chiyu", "chicken oil", "鶏油"}},
			{ramendex.CategoryKidsMenu, []string{"kids", "kid's", "children", "お子様"}},
			{ramendex.CategoryGiftSet, []string{"gift", "gift set", "assorted", "ギフト", "詰め合わせ"}},
			{ramendex.CategoryFrozen, []string{"frozen", "冷凍"}},
			{ramendex.CategorySauce, []string{"sauce", "tare", "dressing", "kosho", "たれ", "タレ", "ソース"}},
			{ramendex.CategorySoup, []string{"soup", "スープ"}},
			{ramendex.CategoryDrinks, []string{
				"drink", "beer", "sake", "highball", "tea", "coffee", "juice", "soda",
				"lemonade", "cola", "wine", "ビール", "ドリンク",
			}},
			{ramendex.CategorySideDishes, []string{
				"gyoza", "karaage", "rice", "gohan", "chashu", "egg", "ajitama", "tamago",
				"nori", "menma", "edamame", "salad", "bun", "topping", "side", "餃子", "ご飯",
			}},
			{ramendex.CategoryNoodles, []string{"noodle", "noodles", "udon", "soba", "mazesoba", "mazemen", "tantanmen"}},
			{ramendex.CategoryRamen, []string{"ramen", "shio", "shoyu", "tonkotsu", "miso", "ラーメン", "らーめん"}},
		},
		ProductCodes: map[string]ramendex.Category{
			"RA": ramendex.CategoryRamen,
			"TS": ramendex.CategoryTsukemen,
			"NO": ramendex.CategoryNoodles,
			"CY": ramendex.CategoryChiyu,
			"SD": ramendex.CategorySideDishes,
			"DR": ramendex.CategoryDrinks,
			"SP": ramendex.CategorySoup,
			"GS": ramendex.CategoryGiftSet,
			"SC": ramendex.CategorySauce,
			"FZ": ramendex.CategoryFrozen,
			"KD": ramendex.CategoryKidsMenu,
			"GD": ramendex.CategoryOthers,
		},
		SectionEndMarkers: []string{
			"Allergens", "Allergy information", "Nutrition", "Add to cart", "Related products",
			"Back to menu", "アレルギー", "カートに入れる",
		},

		FoodKeywords: []string{
			"ramen", "tsukemen", "noodle", "noodles", "soup", "broth", "pork", "chashu", "chicken",
			"yuzu", "shio", "shoyu", "miso", "gyoza", "rice", "gohan", "egg", "nori", "menma",
			"sauce", "tare", "chi-yu", "beer", "lemonade", "highball", "sake", "vegan",
			"ラーメン", "つけ麺", "麺", "スープ", "チャーシュー", "餃子",
		},
		NonFoodTitlePatterns: []string{
			"mug", "tumbler", "chopsticks", "renge", "spoon", "t-shirt", "tshirt", "tee", "hoodie",
			"sweatshirt", "cap", "hat", "tote", "apron", "towel", "sticker", "keychain",
			"gift card", "socks", "マグ", "Tシャツ", "箸",
		},
		ApparelKeywords: []string{
			"shirt", "t-shirt", "hoodie", "sweatshirt", "jacket", "cap", "hat", "apron",
			"socks", "beanie", "Tシャツ", "パーカー",
		},
		MerchandiseKeywords: []string{
			"mug", "tumbler", "chopsticks", "renge", "spoon", "bowl", "towel", "sticker",
			"keychain", "tote", "bag", "gift card", "箸", "丼",
		},
		PrintedMediaKeywords: []string{
			"book", "magazine", "poster", "postcard", "calendar", "zine", "booklet",
		},

		MojibakeSampleRunes: 500,
		MojibakeThreshold:   0.01,

		StoreDelimiter: `(?i)^google\s*map`,
		BrandPrefix:    "AFURI",
		LocationKeywords: []string{
			"Ebisu", "Harajuku", "Roppongi", "Azabu-Juban", "Nakameguro", "Shinjuku", "Shibuya",
			"Hamamatsucho", "Yokohama", "Mitaka", "Tokyo", "Kyoto", "Osaka",
			"Portland", "Beaverton", "Lisbon", "Hong Kong", "Singapore", "Vancouver", "Toronto",
			"恵比寿", "原宿", "六本木", "麻布十番", "中目黒", "新宿", "横浜", "三鷹", "浜松町",
		},
		StopTokens: []string{" - ", " | ", " / ", "(", "（", ":", "：", "  "},
		LocaleNames: []LocaleName{
			{"恵比寿", "AFURI Ebisu"},
			{"原宿", "AFURI Harajuku"},
			{"六本木", "AFURI Roppongi"},
			{"麻布十番", "AFURI Azabu-Juban"},
			{"中目黒", "AFURI Nakameguro"},
			{"新宿", "AFURI Shinjuku"},
			{"横浜", "AFURI Yokohama"},
			{"三鷹", "AFURI Mitaka"},
			{"浜松町", "AFURI Hamamatsucho"},
		},
		PhoneMarkers:   []string{"tel", "phone", "電話", "☎"},
		AddressMarkers: []string{"〒", "address", "住所", "-ku", "-shi", "丁目"},
		Weekdays: []string{
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
			"mon", "tue", "wed", "thu", "fri", "sat", "sun", "weekdays", "weekends", "holidays",
			"月曜", "火曜", "水曜", "木曜", "金曜", "土曜", "日曜", "平日", "土日", "祝日",
		},
		Countries: []string{
			"Japan", "USA", "United States", "Portugal", "Hong Kong", "Singapore", "Canada", "Taiwan", "日本",
		},

		MinContentLength: map[ramendex.Section]int{
			ramendex.SectionMenu:  0,
			ramendex.SectionStore: 10,
			ramendex.SectionBrand: 100,
		},
		SkipURLPatterns: []string{"/blog/categories/", "/blog/page/"},
		SkipTitles:      []string{"blog", "browse the 5am ramen blog", "blog | 5 am ramen"},
	}
}
