package ramendex

// ExtractResult holds the main content pulled out of a brand page.
type ExtractResult struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the main body with navigation, footers and banners removed.
	ContentHTML string
}

// Extractor pulls the main content out of free-text pages such as brand
// stories, news posts and company profiles.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EINVALID for empty input.
	Extract(html string) (*ExtractResult, error)
}
