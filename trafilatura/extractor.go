// Package trafilatura finds the main body of brand pages with go-trafilatura.
package trafilatura

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ramendex"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ ramendex.Extractor = (*Extractor)(nil)

// brandOptions keep text only. Brand stories rarely have comment threads
// worth indexing, and the fallback extractors rescue sparse layouts.
var brandOptions = trafilatura.Options{
	EnableFallback:  true,
	ExcludeComments: true,
}

// Extractor pulls the main text out of brand pages.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's title and main body as HTML. A page without a
// recognisable body yields an empty ContentHTML rather than an error.
func (e *Extractor) Extract(rawHTML string) (*ramendex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ramendex.Errorf(ramendex.EINVALID, "empty HTML input")
	}

	doc, err := trafilatura.Extract(strings.NewReader(rawHTML), brandOptions)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	out := &ramendex.ExtractResult{Title: strings.TrimSpace(doc.Metadata.Title)}
	if doc.ContentNode == nil {
		return out, nil
	}
	var body strings.Builder
	if err := html.Render(&body, doc.ContentNode); err != nil {
		return nil, fmt.Errorf("render main body: %w", err)
	}
	out.ContentHTML = body.String()
	return out, nil
}
