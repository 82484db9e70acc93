package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ramendex"
)

var _ ramendex.PageParser = (*MenuParser)(nil)

// menuItemSelector matches structured menu entries.
const menuItemSelector = ".menu-item, [data-menu-item]"

// MenuParser parses restaurant menu pages. Pages that mark up their entries
// produce one record per entry; other pages produce a single record whose
// content is the visible text, one line per block, for the cleaner to split.
type MenuParser struct{}

// NewMenuParser creates a new MenuParser.
func NewMenuParser() *MenuParser {
	return &MenuParser{}
}

// Name returns the parser identifier.
func (p *MenuParser) Name() string {
	return "menu"
}

// Parse extracts menu records from the page.
func (p *MenuParser) Parse(html string, pageURL string) ([]ramendex.RawRecord, error) {
	doc, base, err := newDocument(html, pageURL)
	if err != nil {
		return nil, err
	}
	doc.Find(chromeSelector).Remove()
	url := canonicalURL(doc, base)

	if items := doc.Find(menuItemSelector); items.Length() > 0 {
		var records []ramendex.RawRecord
		items.Each(func(_ int, s *goquery.Selection) {
			if rec := menuItemRecord(s, url); rec != nil {
				records = append(records, rec)
			}
		})
		return records, nil
	}

	lines := textLines(contentRoot(doc))
	if len(lines) == 0 {
		return nil, nil
	}
	return []ramendex.RawRecord{{
		"url":     url,
		"title":   pageTitle(doc),
		"content": strings.Join(lines, "\n"),
		"section": string(ramendex.SectionMenu),
	}}, nil
}

// menuItemRecord builds a record from one menu entry, or nil if the entry
// has no name.
func menuItemRecord(s *goquery.Selection, url string) ramendex.RawRecord {
	name := selectionText(s.Find(".menu-item__name, .name, h3, h4").First())
	if name == "" {
		name, _ = s.Attr("data-menu-item")
		name = strings.TrimSpace(name)
	}
	if name == "" {
		return nil
	}

	description := selectionText(s.Find(".menu-item__description, .description, p").First())
	rec := ramendex.RawRecord{
		"url":          url,
		"title":        name,
		"content":      description,
		"section":      string(ramendex.SectionMenu),
		"menu_item":    name,
		"introduction": description,
	}
	if price := selectionText(s.Find(".menu-item__price, .price").First()); price != "" {
		rec["price"] = price
	}
	if category := menuGroup(s); category != "" {
		rec["menu_category"] = category
	}
	return rec
}

// menuGroup returns the category an entry is listed under: the
// data-category attribute of an enclosing element, or the heading of the
// enclosing section.
func menuGroup(s *goquery.Selection) string {
	if group := s.ParentsFiltered("[data-category]").First(); group.Length() > 0 {
		category, _ := group.Attr("data-category")
		return strings.TrimSpace(category)
	}
	return selectionText(s.ParentsFiltered("section").First().Find("h2").First())
}

func selectionText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
