package ibl

import "strings"

// Converter transforms extracted markup into another representation.
type Converter interface {
	Convert(html string) (string, error)
}

// ConverterValidator returns a Validator that replaces each value with its
// conversion. Values that fail to convert or convert to blank text are
// rejected.
func ConverterValidator(c Converter) Validator {
	return func(value string) (string, bool) {
		out, err := c.Convert(value)
		if err != nil {
			return "", false
		}
		out = strings.TrimSpace(out)
		return out, out != ""
	}
}
