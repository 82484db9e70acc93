package ingest

import (
	"strings"

	"github.com/fwojciec/ramendex"
)

// Ensure ExtractorChain implements ramendex.Extractor at compile time.
var _ ramendex.Extractor = ExtractorChain(nil)

// ExtractorChain tries extractors in order and returns the first result
// with a non-empty body. When every extractor comes back empty the last
// result is returned; when every extractor fails the last error is.
type ExtractorChain []ramendex.Extractor

func (c ExtractorChain) Extract(html string) (*ramendex.ExtractResult, error) {
	if len(c) == 0 {
		return nil, ramendex.Errorf(ramendex.EINVALID, "no extractors configured")
	}

	var last *ramendex.ExtractResult
	var lastErr error
	for _, e := range c {
		result, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			return result, nil
		}
		last = result
	}
	if last != nil {
		return last, nil
	}
	return nil, lastErr
}
