// Package htmltomarkdown converts markup captured by allow-markup fields
// into Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/ibl"
)

// Ensure Converter implements ibl.Converter at compile time.
var _ ibl.Converter = (*Converter)(nil)

// Converter renders extracted HTML fragments as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders fragment as Markdown. Extracted regions are often
// unbalanced, so the fragment is parsed leniently.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", ibl.Errorf(ibl.EINVALID, "empty markup")
	}

	md, err := c.conv.ConvertString(fragment)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// Markdown returns a validator that replaces markup values with Markdown.
func Markdown() ibl.Validator {
	return ibl.ConverterValidator(NewConverter())
}
