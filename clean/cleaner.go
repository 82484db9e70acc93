// Package clean turns raw scraped records into canonical records. Every
// stage is a pure function of its input and the Vocabulary; only the final
// deduplication pass looks across records.
package clean

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/ramendex"
	"golang.org/x/sync/errgroup"
)

// Cleaner runs the full cleaning pipeline.
type Cleaner struct {
	// Concurrency is the number of records cleaned in parallel.
	// Zero means GOMAXPROCS.
	Concurrency int

	// Logger receives structural mismatches and the run summary.
	// Nil discards them.
	Logger *slog.Logger

	// Now returns the current time. Year-less dates take its year.
	Now func() time.Time

	repairer   *Repairer
	segmenter  *Segmenter
	classifier *Classifier
	food       *FoodClassifier
	validator  *Validator
}

// NewCleaner compiles v into a Cleaner. v must not be modified afterwards.
func NewCleaner(v *Vocabulary) (*Cleaner, error) {
	segmenter, err := NewSegmenter(v)
	if err != nil {
		return nil, err
	}
	return &Cleaner{
		Now:        time.Now,
		repairer:   NewRepairer(v),
		segmenter:  segmenter,
		classifier: NewClassifier(v),
		food:       NewFoodClassifier(v),
		validator:  NewValidator(v),
	}, nil
}

// Classifier returns the item classifier used by the pipeline.
func (c *Cleaner) Classifier() *Classifier { return c.classifier }

// Clean converts raws into canonical records in input order. Records are
// cleaned in parallel; duplicates are then removed in a single pass that
// keeps the first record for each identity key. The only error returned is
// the context's.
func (c *Cleaner) Clean(ctx context.Context, raws []ramendex.RawRecord) ([]*ramendex.Record, ramendex.Stats, error) {
	results := make([][]*ramendex.Record, len(raws))
	perRecord := make([]ramendex.Stats, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], perRecord[i] = c.CleanRecord(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ramendex.Stats{}, err
	}

	var stats ramendex.Stats
	var records []*ramendex.Record
	for i := range raws {
		stats.Add(perRecord[i])
		records = append(records, results[i]...)
	}

	records, stats.Duplicates = Dedupe(records)
	stats.Kept = len(records)

	c.logger().Info("clean",
		"total", stats.Total,
		"produced", stats.Produced,
		"kept", stats.Kept,
		"invalid", stats.Invalid,
		"duplicates", stats.Duplicates,
		"split", stats.SplitMenuItems,
		"stores", stats.SegmentedStores,
		"mismatches", stats.StructuralMismatches,
	)
	return records, stats, nil
}

// CleanRecord converts one raw record into the valid canonical records it
// yields. A page may yield several records, or none.
func (c *Cleaner) CleanRecord(raw ramendex.RawRecord) ([]*ramendex.Record, ramendex.Stats) {
	stats := ramendex.Stats{Total: 1}

	title, content := raw.Get("title"), raw.Get("content")
	if repaired, ok := c.repairer.Repair(title); ok {
		title = repaired
		stats.EncodingRepaired++
	}
	if repaired, ok := c.repairer.Repair(content); ok {
		content = repaired
		stats.EncodingRepaired++
	}

	base := &ramendex.Record{
		URL:          strings.TrimSpace(raw.Get("url")),
		Title:        Normalize(title),
		Content:      Normalize(content),
		Section:      resolveSection(raw),
		Date:         StandardizeDate(Normalize(raw.Get("date")), c.now()),
		Author:       Normalize(raw.Get("author")),
		Tags:         normalizeList(raw.List("tags")),
		Categories:   normalizeList(raw.List("categories")),
		StoreName:    Normalize(raw.Get("store_name")),
		Introduction: Normalize(raw.Get("introduction")),
		Ingredients:  Normalize(raw.Get("ingredients")),
	}
	if base.Title != title {
		stats.TitleCleaned++
	}
	if base.Content != content {
		stats.ContentCleaned++
	}

	var candidates []*ramendex.Record
	switch base.Section {
	case ramendex.SectionMenu:
		candidates = c.cleanMenu(base, raw, &stats)
	case ramendex.SectionStore:
		candidates = c.cleanStore(base, &stats)
	default:
		candidates = []*ramendex.Record{base}
	}

	stats.Produced = len(candidates)
	records := make([]*ramendex.Record, 0, len(candidates))
	for _, r := range candidates {
		if !c.validator.Valid(r) {
			stats.Invalid++
			continue
		}
		if r.Content == "" {
			r.Content = r.Title
		}
		records = append(records, r)
	}
	return records, stats
}

func (c *Cleaner) cleanMenu(base *ramendex.Record, raw ramendex.RawRecord, stats *ramendex.Stats) []*ramendex.Record {
	menuItem := Normalize(raw.Get("menu_item"))
	declared, _ := ramendex.ParseCategory(Normalize(raw.Get("menu_category")))

	if menuItem == "" && !c.classifier.Known(base.Title) {
		items := c.classifier.Items(base.Content)
		if len(items) >= 2 && !strings.EqualFold(items[0].Name, base.Title) {
			stats.SplitMenuItems += len(items)
			return c.splitMenu(base, declared, items, stats)
		}
	}

	r := cloneRecord(base)
	candidate := menuItem
	if candidate == "" {
		candidate = base.Title
	}
	cls := c.classifier.Classify(ItemInput{Name: candidate, Text: base.Title + "\n" + base.Content, URL: base.URL, Declared: declared})
	if cls.Downgraded {
		stats.Downgraded++
	}
	r.MenuCategory = cls.Category
	switch {
	case menuItem != "":
		r.MenuItem = menuItem
		if cls.Name != "" {
			r.MenuItem = cls.Name
		}
	case c.classifier.Known(cls.Name):
		// Several items may share a page URL.
		r.SetKeyItem(cls.Name)
	}

	if r.Introduction == "" {
		name := cls.Name
		if name == "" {
			name = candidate
		}
		if intro := c.classifier.ContentAfter(base.Content, name); intro != base.Content {
			r.Introduction = intro
		}
	}

	if rawPrice := Normalize(raw.Get("price")); rawPrice != "" {
		r.Price = ParsePrice(rawPrice)
	} else {
		r.Price = ParseTaggedPrice(base.Content)
	}
	c.finishMenu(r, stats)
	return []*ramendex.Record{r}
}

func (c *Cleaner) splitMenu(base *ramendex.Record, declared ramendex.Category, matches []ItemMatch, stats *ramendex.Stats) []*ramendex.Record {
	records := make([]*ramendex.Record, 0, len(matches))
	for i, m := range matches {
		slice := c.classifier.Slice(base.Content, matches, i)

		r := cloneRecord(base)
		r.Title = m.Name
		r.MenuItem = m.Name
		r.Content = slice
		r.Introduction = slice
		r.Ingredients = ""
		r.MenuCategory = c.classifier.Classify(ItemInput{Name: m.Name, Text: slice, URL: base.URL, Declared: declared}).Category
		r.Price = ParseTaggedPrice(slice)
		c.finishMenu(r, stats)
		records = append(records, r)
	}
	return records
}

func (c *Cleaner) finishMenu(r *ramendex.Record, stats *ramendex.Stats) {
	r.PriceRange = Bucket(r.Price)
	if c.food.IsNonFood(r.Title, r.Content) {
		r.MenuCategory = ramendex.CategoryOthers
		if !r.HasTag("others") {
			r.Tags = append(r.Tags, "others")
		}
		stats.NonFoodOverrides++
	}
}

func (c *Cleaner) cleanStore(base *ramendex.Record, stats *ramendex.Stats) []*ramendex.Record {
	if base.StoreName != "" {
		return []*ramendex.Record{base}
	}

	seg := c.segmenter.Segment(base.Content)
	if len(seg.Blocks) == 0 {
		stats.StructuralMismatches++
		msg := "segment: no stores"
		if !seg.Delimited {
			msg = "segment: no delimiter"
		}
		c.logger().Info(msg, "url", base.URL)
		return []*ramendex.Record{base}
	}

	stats.SegmentedStores += len(seg.Blocks)
	records := make([]*ramendex.Record, 0, len(seg.Blocks))
	for _, b := range seg.Blocks {
		r := cloneRecord(base)
		r.Title = b.Name
		r.StoreName = b.Name
		r.Content = b.Content()
		records = append(records, r)
	}
	return records
}

func (c *Cleaner) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (c *Cleaner) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Cleaner) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// resolveSection parses the declared section, inferring it from the
// section-specific fields when the label is absent or unknown.
func resolveSection(raw ramendex.RawRecord) ramendex.Section {
	if s, ok := ramendex.ParseSection(raw.Get("section")); ok {
		return s
	}
	switch {
	case raw.Has("menu_item") || raw.Has("menu_category"):
		return ramendex.SectionMenu
	case raw.Has("store_name"):
		return ramendex.SectionStore
	}
	return ramendex.SectionBrand
}

func normalizeList(in []string) []string {
	var out []string
	for _, s := range in {
		s = Normalize(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func cloneRecord(r *ramendex.Record) *ramendex.Record {
	out := *r
	out.Tags = slices.Clone(r.Tags)
	out.Categories = slices.Clone(r.Categories)
	return &out
}
