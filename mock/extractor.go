package mock

import "github.com/fwojciec/ramendex"

var _ ramendex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ramendex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*ramendex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*ramendex.ExtractResult, error) {
	return e.ExtractFn(html)
}
