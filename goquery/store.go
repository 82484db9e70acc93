package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ramendex"
)

var _ ramendex.PageParser = (*StoreParser)(nil)

// StoreParser parses store directory pages into a single Store Information
// record. Its content is the visible text, one line per block, with every
// map link rendered as its own "Google map" line so the segmenter can find
// where each location begins.
type StoreParser struct{}

// NewStoreParser creates a new StoreParser.
func NewStoreParser() *StoreParser {
	return &StoreParser{}
}

// Name returns the parser identifier.
func (p *StoreParser) Name() string {
	return "stores"
}

// Parse extracts the store directory record.
func (p *StoreParser) Parse(html string, pageURL string) ([]ramendex.RawRecord, error) {
	doc, base, err := newDocument(html, pageURL)
	if err != nil {
		return nil, err
	}
	doc.Find(chromeSelector).Remove()

	doc.Find(mapLinkSelector).Each(func(_ int, s *goquery.Selection) {
		s.SetText("Google map")
		s.BeforeHtml("<br>")
		s.AfterHtml("<br>")
	})

	lines := textLines(contentRoot(doc))
	if len(lines) == 0 {
		return nil, nil
	}
	return []ramendex.RawRecord{{
		"url":     canonicalURL(doc, base),
		"title":   pageTitle(doc),
		"content": strings.Join(lines, "\n"),
		"section": string(ramendex.SectionStore),
	}}, nil
}
