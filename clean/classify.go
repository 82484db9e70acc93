package clean

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/ramendex"
)

var productCodePattern = regexp.MustCompile(`(?i)/(?:products?|items?)/([a-z]{2})[-_]?[0-9]`)

// ItemInput is what the category rules inspect.
type ItemInput struct {
	Name string
	Text string
	URL  string
	// Declared is the category the source page stated, if any.
	Declared ramendex.Category
}

// CategoryRule is one entry of the ordered category rule list. Apply
// reports the category when the rule matches.
type CategoryRule struct {
	Name  string
	Apply func(in ItemInput) (ramendex.Category, bool)
}

// Classification is the outcome of classifying one item.
type Classification struct {
	// Name is the canonical item name, or "" if none could be resolved.
	Name     string
	Category ramendex.Category
	// Downgraded is set when the candidate name was rejected and no known
	// item was found in the text.
	Downgraded bool
}

// ItemMatch is a known item located in a text by the sweep.
// Start and End are byte offsets.
type ItemMatch struct {
	Name  string
	Start int
	End   int
}

type knownItem struct {
	name  string
	lower string
	re    *regexp.Regexp
}

// Classifier resolves canonical menu item names and categories.
type Classifier struct {
	known     []knownItem
	whitelist map[string]bool

	openers     []string
	markers     []string
	maxLen      int
	sentenceLen int
	minPrefix   int

	rules      []CategoryRule
	endMarkers terms
}

// NewClassifier compiles the vocabulary's item and category tables.
func NewClassifier(v *Vocabulary) *Classifier {
	c := &Classifier{
		whitelist:   make(map[string]bool, len(v.KnownItems)),
		openers:     lowerAll(v.SentenceOpeners),
		markers:     lowerAll(v.DescriptiveMarkers),
		maxLen:      v.MaxNameLength,
		sentenceLen: v.SentenceNameLength,
		minPrefix:   v.MinWhitelistPrefix,
		endMarkers:  newTerms(v.SectionEndMarkers, false),
	}

	for _, name := range v.KnownItems {
		name = strings.TrimSpace(name)
		lower := strings.ToLower(name)
		if name == "" || c.whitelist[lower] {
			continue
		}
		c.whitelist[lower] = true
		c.known = append(c.known, knownItem{
			name:  name,
			lower: lower,
			re:    regexp.MustCompile(regexp.QuoteMeta(name)),
		})
	}
	// Longest first, so a more specific name claims its span before any
	// of its substrings.
	slices.SortStableFunc(c.known, func(a, b knownItem) int {
		return utf8.RuneCountInString(b.name) - utf8.RuneCountInString(a.name)
	})

	c.rules = newCategoryRules(v)
	return c
}

func newCategoryRules(v *Vocabulary) []CategoryRule {
	overrides := make(map[string]ramendex.Category, len(v.NameOverrides))
	for name, cat := range v.NameOverrides {
		overrides[strings.ToLower(strings.TrimSpace(name))] = cat
	}
	codes := make(map[string]ramendex.Category, len(v.ProductCodes))
	for code, cat := range v.ProductCodes {
		codes[strings.ToUpper(code)] = cat
	}
	type keywordTable struct {
		category ramendex.Category
		terms    terms
	}
	tables := make([]keywordTable, 0, len(v.CategoryKeywords))
	for _, ck := range v.CategoryKeywords {
		tables = append(tables, keywordTable{ck.Category, newTerms(ck.Keywords, false)})
	}
	scan := func(s string) (ramendex.Category, bool) {
		if s == "" {
			return "", false
		}
		for _, t := range tables {
			if t.terms.match(s) {
				return t.category, true
			}
		}
		return "", false
	}

	return []CategoryRule{
		{
			Name: "name override",
			Apply: func(in ItemInput) (ramendex.Category, bool) {
				cat, ok := overrides[strings.ToLower(in.Name)]
				return cat, ok
			},
		},
		{
			Name: "tsukemen",
			Apply: func(in ItemInput) (ramendex.Category, bool) {
				name := strings.ToLower(in.Name)
				if strings.Contains(name, "tsukemen") || strings.Contains(name, "つけ麺") {
					return ramendex.CategoryTsukemen, true
				}
				return "", false
			},
		},
		{
			Name: "product code",
			Apply: func(in ItemInput) (ramendex.Category, bool) {
				m := productCodePattern.FindStringSubmatch(in.URL)
				if m == nil {
					return "", false
				}
				cat, ok := codes[strings.ToUpper(m[1])]
				return cat, ok
			},
		},
		{
			Name: "name keyword",
			Apply: func(in ItemInput) (ramendex.Category, bool) {
				return scan(in.Name)
			},
		},
		{
			Name: "text keyword",
			Apply: func(in ItemInput) (ramendex.Category, bool) {
				return scan(in.Text)
			},
		},
		{
			Name: "declared",
			Apply: func(in ItemInput) (ramendex.Category, bool) {
				return in.Declared, in.Declared != ""
			},
		},
		{
			Name: "fallback",
			Apply: func(ItemInput) (ramendex.Category, bool) {
				return ramendex.CategoryRamen, true
			},
		},
	}
}

// Rules returns the category rules in evaluation order.
func (c *Classifier) Rules() []CategoryRule {
	return slices.Clone(c.rules)
}

// Categorize returns the category of the first matching rule.
func (c *Classifier) Categorize(in ItemInput) ramendex.Category {
	for _, r := range c.rules {
		if cat, ok := r.Apply(in); ok {
			return cat
		}
	}
	return ramendex.CategoryRamen
}

// Classify resolves the canonical name and category of an item. The
// candidate in.Name is kept unless it reads as descriptive prose, in which
// case the longest known item found in in.Text replaces it.
func (c *Classifier) Classify(in ItemInput) Classification {
	in.Name = strings.TrimSpace(in.Name)
	if !c.IsItemName(in.Name) {
		in.Name = c.longestMatch(in.Text)
		if in.Name == "" {
			return Classification{
				Category:   c.Categorize(in),
				Downgraded: true,
			}
		}
	}
	return Classification{
		Name:     in.Name,
		Category: c.Categorize(in),
	}
}

// IsItemName reports whether candidate reads as an item name rather than
// descriptive text. Known items, and prefixes of known items, always pass.
func (c *Classifier) IsItemName(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	lower := strings.ToLower(candidate)
	length := utf8.RuneCountInString(candidate)
	if c.whitelisted(lower, length) {
		return true
	}

	for _, opener := range c.openers {
		if strings.HasPrefix(lower, opener) {
			return false
		}
	}

	markers := 0
	for _, m := range c.markers {
		if strings.Contains(lower, m) {
			markers++
		}
	}
	if markers >= 2 {
		return false
	}

	if c.maxLen > 0 && length > c.maxLen && !c.embedsKnownItem(lower) {
		return false
	}

	last, _ := utf8.DecodeLastRuneInString(candidate)
	if strings.ContainsRune(".!?。！？", last) && length > c.sentenceLen {
		return false
	}
	return true
}

func (c *Classifier) whitelisted(lower string, length int) bool {
	if c.whitelist[lower] {
		return true
	}
	if length < c.minPrefix {
		return false
	}
	for _, k := range c.known {
		if strings.HasPrefix(k.lower, lower) {
			return true
		}
	}
	return false
}

func (c *Classifier) embedsKnownItem(lower string) bool {
	for _, k := range c.known {
		if strings.Contains(lower, k.lower) {
			return true
		}
	}
	return false
}

// Sweep finds the known items in text, ordered by position. Each item is
// reported at most once, at its first boundary-delimited occurrence. An
// item contained in a longer item that is also present is suppressed.
func (c *Classifier) Sweep(text string) []ItemMatch {
	var found []ItemMatch
	for _, k := range c.known {
		if suppressedBy(k, found) {
			continue
		}
		for _, loc := range k.re.FindAllStringIndex(text, -1) {
			if !atBoundary(text, loc[0], loc[1]) || overlaps(found, loc[0], loc[1]) {
				continue
			}
			found = append(found, ItemMatch{Name: k.name, Start: loc[0], End: loc[1]})
			break
		}
	}
	slices.SortFunc(found, func(a, b ItemMatch) int { return a.Start - b.Start })
	return found
}

func suppressedBy(k knownItem, found []ItemMatch) bool {
	for _, m := range found {
		if strings.Contains(strings.ToLower(m.Name), k.lower) {
			return true
		}
	}
	return false
}

func overlaps(found []ItemMatch, start, end int) bool {
	for _, m := range found {
		if start < m.End && m.Start < end {
			return true
		}
	}
	return false
}

func atBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (c *Classifier) longestMatch(text string) string {
	var best string
	for _, m := range c.Sweep(text) {
		if utf8.RuneCountInString(m.Name) > utf8.RuneCountInString(best) {
			best = m.Name
		}
	}
	return best
}

// minItemContentRunes is the letters and digits a non-empty item slice
// needs to count as that item's own content.
const minItemContentRunes = 4

// Known reports whether name is exactly one of the known items, ignoring case.
func (c *Classifier) Known(name string) bool {
	return c.whitelist[strings.ToLower(strings.TrimSpace(name))]
}

// Items returns the known items that head their own block of text: the
// item starts a line and the content after it is either empty or more than
// a fragment. Items mentioned mid-sentence ("topped with Ajitama, Menma
// and Nori") belong to the surrounding item's content.
func (c *Classifier) Items(text string) []ItemMatch {
	items := c.Sweep(text)
	for {
		kept := make([]ItemMatch, 0, len(items))
		for i, m := range items {
			if startsLine(text, m.Start) && !c.isFragment(c.Slice(text, items, i)) {
				kept = append(kept, m)
			}
		}
		if len(kept) == len(items) {
			return kept
		}
		items = kept
	}
}

func startsLine(text string, start int) bool {
	line := text[:start]
	if i := strings.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}
	return strings.Trim(line, " \t-*•・") == ""
}

// isFragment reports whether slice is leftover punctuation or a connective
// rather than an item's description.
func (c *Classifier) isFragment(slice string) bool {
	if slice == "" || ParseTaggedPrice(slice) != "" {
		return false
	}
	n := 0
	for _, r := range slice {
		if isWordRune(r) {
			n++
		}
	}
	return n < minItemContentRunes
}

// Slice returns the content belonging to matches[i]: the text after the
// item name up to the next item or the first section-end marker.
func (c *Classifier) Slice(text string, matches []ItemMatch, i int) string {
	end := len(text)
	if i+1 < len(matches) {
		end = matches[i+1].Start
	}
	return c.slice(text, matches[i].End, end)
}

// ContentAfter returns the content that follows name in text, up to the
// next item heading its own block or the first section-end marker. Returns
// "" if name does not occur in text.
func (c *Classifier) ContentAfter(text, name string) string {
	if name == "" {
		return ""
	}
	matches := c.Items(text)
	for i, m := range matches {
		if strings.EqualFold(m.Name, name) {
			return c.Slice(text, matches, i)
		}
	}
	idx := strings.Index(text, name)
	if idx < 0 {
		return ""
	}
	start, end := idx+len(name), len(text)
	for _, m := range matches {
		if m.Start >= start {
			end = m.Start
			break
		}
	}
	return c.slice(text, start, end)
}

func (c *Classifier) slice(text string, start, end int) string {
	seg := text[start:end]
	if c.endMarkers.re != nil {
		if loc := c.endMarkers.re.FindStringIndex(seg); loc != nil {
			seg = seg[:loc[0]]
		}
	}
	seg = strings.TrimSpace(seg)
	seg = strings.TrimLeft(seg, ":-|・")
	return strings.TrimSpace(seg)
}

func lowerAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}
