package ramendex

// Page is a source page saved to disk by a scraper.
type Page struct {
	URL  string
	HTML string
}

// PageKind identifies the layout of a saved source page.
type PageKind string

// Known page layouts.
const (
	PageUnknown PageKind = ""
	PageProduct PageKind = "product"
	PageMenu    PageKind = "menu"
	PageStores  PageKind = "stores"
	PageBrand   PageKind = "brand"
)

// PageDetector identifies the layout of a saved page.
type PageDetector interface {
	// Detect analyzes HTML and its URL and returns the page kind.
	// Returns PageUnknown if the kind cannot be determined.
	Detect(html string, pageURL string) PageKind
}

// PageParser turns a saved page into raw records.
type PageParser interface {
	// Parse extracts raw records from HTML. The pageURL is used to resolve
	// relative links and is recorded on every record.
	Parse(html string, pageURL string) ([]RawRecord, error)

	// Name returns the parser's identifier (e.g., "product", "menu").
	Name() string
}

// PageParserRegistry manages layout-specific parsers.
type PageParserRegistry interface {
	// Get returns the parser for a page kind, or nil.
	Get(kind PageKind) PageParser

	// GetForPage detects the page kind and returns the matching parser.
	// Falls back to the registry's default parser if the kind is unknown.
	GetForPage(html string, pageURL string) PageParser

	// Register adds a parser for a page kind.
	Register(kind PageKind, parser PageParser)

	// List returns all registered page kinds.
	List() []PageKind
}
