package goquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ramendex"
)

var _ ramendex.PageParser = (*ProductParser)(nil)

// ProductParser parses online-shop product pages into a single menu record
// carrying the product name, price, description and breadcrumb category.
type ProductParser struct{}

// NewProductParser creates a new ProductParser.
func NewProductParser() *ProductParser {
	return &ProductParser{}
}

// Name returns the parser identifier.
func (p *ProductParser) Name() string {
	return "product"
}

// Parse extracts the product record. JSON-LD Product data wins over visible
// markup when both are present. Returns EINVALID if no product name is found.
func (p *ProductParser) Parse(html string, pageURL string) ([]ramendex.RawRecord, error) {
	doc, base, err := newDocument(html, pageURL)
	if err != nil {
		return nil, err
	}

	ld := findProductLD(doc)

	name := ld.name
	if name == "" {
		name = firstText(doc, ".product__title", ".product-title", "[itemprop='name']")
	}
	if name == "" {
		name = pageTitle(doc)
	}
	if name == "" {
		return nil, ramendex.Errorf(ramendex.EINVALID, "product page %s has no name", pageURL)
	}

	price := ld.price
	if price == "" {
		price = metaContent(doc, "product:price:amount", "og:price:amount")
	}
	if price == "" {
		price = firstText(doc, "[itemprop='price']", ".product__price", ".price-item--regular", ".price")
	}

	description := ld.description
	if description == "" {
		description = strings.Join(textLines(doc.Find(".product__description, .product-description, [itemprop='description']").First()), "\n")
	}
	if description == "" {
		description = metaContent(doc, "og:description", "description")
	}

	rec := ramendex.RawRecord{
		"url":       canonicalURL(doc, base),
		"title":     name,
		"content":   description,
		"section":   string(ramendex.SectionMenu),
		"menu_item": name,
	}
	if price != "" {
		rec["price"] = price
	}
	if category := breadcrumbCategory(doc, name); category != "" {
		rec["menu_category"] = category
	}
	return []ramendex.RawRecord{rec}, nil
}

// breadcrumbCategory returns the last breadcrumb entry that is neither the
// home link nor the product itself.
func breadcrumbCategory(doc *goquery.Document, product string) string {
	var category string
	doc.Find(".breadcrumb a, .breadcrumbs a, nav[aria-label='breadcrumb'] a, nav[aria-label='breadcrumbs'] a").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" || strings.EqualFold(text, "home") || text == product {
			return
		}
		category = text
	})
	return category
}

type productLD struct {
	name        string
	description string
	price       string
}

// findProductLD returns the first JSON-LD Product on the page. Invalid
// blocks are skipped.
func findProductLD(doc *goquery.Document) productLD {
	var found productLD
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		obj := productObject(data)
		if obj == nil {
			return true
		}
		found.name = strings.TrimSpace(stringField(obj, "name"))
		found.description = strings.TrimSpace(stringField(obj, "description"))
		found.price = offerPrice(obj["offers"])
		return false
	})
	return found
}

// productObject finds an object typed Product, looking through top-level
// arrays and @graph containers.
func productObject(data any) map[string]any {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if obj := productObject(item); obj != nil {
				return obj
			}
		}
	case map[string]any:
		if stringField(v, "@type") == "Product" {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return productObject(graph)
		}
	}
	return nil
}

func offerPrice(offers any) string {
	switch v := offers.(type) {
	case []any:
		for _, offer := range v {
			if price := offerPrice(offer); price != "" {
				return price
			}
		}
	case map[string]any:
		if price, ok := v["price"]; ok && price != nil {
			return strings.TrimSpace(fmt.Sprint(price))
		}
		if price, ok := v["lowPrice"]; ok && price != nil {
			return strings.TrimSpace(fmt.Sprint(price))
		}
	}
	return ""
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
