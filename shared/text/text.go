package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Keyify normalizes a display name into a stable grouping key:
// diacritics stripped, lowercased, trimmed, spaces collapsed to dashes.
// "Alger Centre" and "Algér centre" map to the same key.
func Keyify(value string) string {
	normalized, _, err := transform.String(stripDiacritics, value)
	if err != nil {
		normalized = value
	}

	normalized = strings.ToLower(strings.TrimSpace(normalized))

	return strings.Join(strings.Fields(normalized), "-")
}
