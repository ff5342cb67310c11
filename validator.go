package ibl

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// Validators holds the builtin validators by name.
var Validators = map[string]Validator{
	"strip":                Strip,
	"contains_any_numbers": ContainsAnyNumbers,
	"image_url":            ImageURL,
}

// Strip trims surrounding whitespace and rejects empty values.
func Strip(value string) (string, bool) {
	value = strings.TrimSpace(value)
	return value, value != ""
}

// ContainsAnyNumbers rejects values without a digit.
func ContainsAnyNumbers(value string) (string, bool) {
	if strings.IndexFunc(value, unicode.IsDigit) < 0 {
		return "", false
	}
	return value, true
}

var cssImageRe = regexp.MustCompile(`url\(\s*['"]?([^'")\s]+)['"]?\s*\)`)

// ImageURL extracts an image URL from a src value or CSS url() reference.
func ImageURL(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if m := cssImageRe.FindStringSubmatch(value); m != nil {
		value = m[1]
	}
	value = html.UnescapeString(value)
	if value == "" || strings.ContainsAny(value, " \t\n") {
		return "", false
	}
	u, err := url.Parse(value)
	if err != nil || u.Path == "" {
		return "", false
	}
	return u.String(), true
}
