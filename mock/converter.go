package mock

import "github.com/fwojciec/ibl"

var _ ibl.Converter = (*Converter)(nil)

// Converter is a mock implementation of ibl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
