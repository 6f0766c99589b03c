// Package slug derives the canonical public handle from user input.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops the combining marks,
// so "José" becomes "Jose".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make normalizes raw input into a handle slug: lowercase, diacritics and
// punctuation stripped, words joined with hyphens. The same function runs at
// registration, profile update, and search so uniqueness always compares
// canonical forms.
func Make(raw string) string {
	s, _, err := transform.String(stripAccents, raw)
	if err != nil {
		s = raw
	}

	s = strings.ToLower(s)

	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// punctuation and symbols are dropped entirely
		}
	}

	return strings.TrimRight(b.String(), "-")
}
