package readability

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ramendex"
	"github.com/go-shiori/go-readability"
)

var _ ramendex.Extractor = (*Extractor)(nil)

// Extractor is the second extractor for brand pages, used where trafilatura
// finds no main body, typically short pages built from many small blocks.
//
// Unlike a bare readability call it rejects blank input with EINVALID,
// trims the title, and reports an article with no text (an image-only
// banner, an empty wrapper) as an empty body. That lets the extractor chain
// and the article parser fall back instead of indexing markup.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the readable article body as HTML.
func (e *Extractor) Extract(rawHTML string) (*ramendex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ramendex.Errorf(ramendex.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	out := &ramendex.ExtractResult{Title: strings.TrimSpace(article.Title)}
	if strings.TrimSpace(article.TextContent) != "" {
		out.ContentHTML = article.Content
	}
	return out, nil
}
