package mock

import "github.com/fwojciec/ramendex"

var _ ramendex.Converter = (*Converter)(nil)

// Converter is a mock implementation of ramendex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
