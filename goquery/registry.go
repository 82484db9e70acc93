package goquery

import "github.com/fwojciec/ramendex"

var _ ramendex.PageParserRegistry = (*Registry)(nil)

// Registry manages layout-specific page parsers and picks one for a page
// using a PageDetector, falling back to a default parser when the kind is
// unknown or no specific parser is registered.
type Registry struct {
	detector ramendex.PageDetector
	fallback ramendex.PageParser
	parsers  map[ramendex.PageKind]ramendex.PageParser
}

// NewRegistry creates a new Registry with the given detector and fallback parser.
func NewRegistry(detector ramendex.PageDetector, fallback ramendex.PageParser) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		parsers:  make(map[ramendex.PageKind]ramendex.PageParser),
	}
}

// NewDefaultRegistry returns a registry wired with the built-in detector and
// parsers. Brand pages go through the article parser, which also serves as
// the fallback.
func NewDefaultRegistry(article *ArticleParser) *Registry {
	if article == nil {
		article = NewArticleParser(nil, nil)
	}
	r := NewRegistry(NewDetector(), article)
	r.Register(ramendex.PageProduct, NewProductParser())
	r.Register(ramendex.PageMenu, NewMenuParser())
	r.Register(ramendex.PageStores, NewStoreParser())
	r.Register(ramendex.PageBrand, article)
	return r
}

// Get returns the parser for a specific page kind.
// Returns nil if no parser is registered for the kind.
func (r *Registry) Get(kind ramendex.PageKind) ramendex.PageParser {
	return r.parsers[kind]
}

// GetForPage detects the page kind and returns the appropriate parser.
func (r *Registry) GetForPage(html string, pageURL string) ramendex.PageParser {
	kind := r.detector.Detect(html, pageURL)
	if parser, ok := r.parsers[kind]; ok {
		return parser
	}
	return r.fallback
}

// Register adds a parser for a page kind.
// If a parser is already registered for the kind, it is replaced.
func (r *Registry) Register(kind ramendex.PageKind, parser ramendex.PageParser) {
	r.parsers[kind] = parser
}

// List returns all registered page kinds.
func (r *Registry) List() []ramendex.PageKind {
	kinds := make([]ramendex.PageKind, 0, len(r.parsers))
	for k := range r.parsers {
		kinds = append(kinds, k)
	}
	return kinds
}
