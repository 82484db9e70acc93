package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ramendex"
)

var _ ramendex.PageDetector = (*Detector)(nil)

// mapLinkSelector matches links to Google Maps, which store directories
// attach to every location.
const mapLinkSelector = "a[href*='maps.google'], a[href*='google.com/maps'], a[href*='goo.gl/maps'], a[href*='maps.app.goo.gl']"

// Detector identifies the layout of a saved source page from its markup and
// URL. Product pages are recognized by Open Graph and JSON-LD markers, store
// directories by their map links, and menu pages by path or menu markup.
// Everything else is a brand page.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and its URL and returns the page kind.
// Returns PageUnknown for blank or unparsable HTML.
func (d *Detector) Detect(html string, pageURL string) ramendex.PageKind {
	if strings.TrimSpace(html) == "" {
		return ramendex.PageUnknown
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ramendex.PageUnknown
	}
	path := urlPath(pageURL)

	// Shop markup is the most reliable signal
	if d.isProduct(doc, path) {
		return ramendex.PageProduct
	}

	// A single map link shows up on brand pages too; directories list several
	if doc.Find(mapLinkSelector).Length() >= 2 ||
		strings.Contains(path, "/store") ||
		strings.Contains(path, "/location") ||
		strings.Contains(path, "/shop-list") {
		return ramendex.PageStores
	}

	if strings.Contains(path, "/menu") ||
		d.hasSelector(doc, ".menu-item") ||
		d.hasSelector(doc, "[data-menu-item]") {
		return ramendex.PageMenu
	}

	return ramendex.PageBrand
}

func (d *Detector) isProduct(doc *goquery.Document, path string) bool {
	if strings.EqualFold(metaContent(doc, "og:type"), "product") {
		return true
	}
	if strings.Contains(path, "/products/") || strings.Contains(path, "/product/") {
		return true
	}

	found := false
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		compact := strings.Join(strings.Fields(s.Text()), "")
		found = strings.Contains(compact, `"@type":"Product"`)
		return !found
	})
	return found
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
