package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ibl"
)

var _ ibl.Converter = (*TextConverter)(nil)

// TextConverter reduces markup to its visible text with whitespace
// collapsed.
type TextConverter struct{}

// Convert returns the text content of fragment.
func (TextConverter) Convert(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", ibl.Errorf(ibl.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// Text returns a validator that replaces markup values with their text.
func Text() ibl.Validator {
	return ibl.ConverterValidator(TextConverter{})
}
