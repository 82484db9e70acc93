package mock

import "github.com/fwojciec/ramendex"

var _ ramendex.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of ramendex.PageParser.
type PageParser struct {
	ParseFn func(html string, pageURL string) ([]ramendex.RawRecord, error)
	NameFn  func() string
}

func (p *PageParser) Parse(html string, pageURL string) ([]ramendex.RawRecord, error) {
	return p.ParseFn(html, pageURL)
}

func (p *PageParser) Name() string {
	return p.NameFn()
}

var _ ramendex.PageDetector = (*PageDetector)(nil)

// PageDetector is a mock implementation of ramendex.PageDetector.
type PageDetector struct {
	DetectFn func(html string, pageURL string) ramendex.PageKind
}

func (d *PageDetector) Detect(html string, pageURL string) ramendex.PageKind {
	return d.DetectFn(html, pageURL)
}

var _ ramendex.PageParserRegistry = (*PageParserRegistry)(nil)

// PageParserRegistry is a mock implementation of ramendex.PageParserRegistry.
type PageParserRegistry struct {
	GetFn        func(kind ramendex.PageKind) ramendex.PageParser
	GetForPageFn func(html string, pageURL string) ramendex.PageParser
	RegisterFn   func(kind ramendex.PageKind, parser ramendex.PageParser)
	ListFn       func() []ramendex.PageKind
}

func (r *PageParserRegistry) Get(kind ramendex.PageKind) ramendex.PageParser {
	return r.GetFn(kind)
}

func (r *PageParserRegistry) GetForPage(html string, pageURL string) ramendex.PageParser {
	return r.GetForPageFn(html, pageURL)
}

func (r *PageParserRegistry) Register(kind ramendex.PageKind, parser ramendex.PageParser) {
	r.RegisterFn(kind, parser)
}

func (r *PageParserRegistry) List() []ramendex.PageKind {
	return r.ListFn()
}
