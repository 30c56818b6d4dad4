package sheet

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize collapses runs of whitespace to one space, trims, casefolds and
// strips diacritics, so "  Email da REFERÊNCIA " and "email da referencia"
// compare equal.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		s = folded
	}
	return s
}

// HeaderContains builds a predicate that tests whether a normalized header
// contains the given canonical substring. The substring itself is normalized
// too, so callers can pass accented canon forms.
func HeaderContains(sub string) func(string) bool {
	want := Normalize(sub)
	return func(header string) bool {
		return strings.Contains(Normalize(header), want)
	}
}

// HeaderIs matches a header exactly after normalization.
func HeaderIs(label string) func(string) bool {
	want := Normalize(label)
	return func(header string) bool {
		return Normalize(header) == want
	}
}

// Resolve returns the cell under the first header the predicate accepts.
// Headers are visited in sorted order so repeated runs over the same row
// resolve the same column; multiple matches are an accepted ambiguity, not
// an error.
func Resolve(row Row, match func(string) bool) (Cell, bool) {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if match(k) {
			return row[k], true
		}
	}
	return Absent(), false
}

// ResolveString is Resolve for callers that only care about non-empty text.
func ResolveString(row Row, match func(string) bool) (string, bool) {
	c, ok := Resolve(row, match)
	if !ok || c.IsAbsent() {
		return "", false
	}
	return c.String(), true
}
