// Package texto normalizes the Portuguese labels coming out of the roster
// spreadsheet so comparisons ignore case and accents ("Analista Sênior" and
// "ANALISTA SENIOR" are the same cargo).
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar lowercases, trims and strips accents from a label.
func Normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		return s
	}
	return out
}

// Igual reports whether two labels match ignoring case, accents and
// surrounding whitespace.
func Igual(a, b string) bool {
	return Normalizar(a) == Normalizar(b)
}
