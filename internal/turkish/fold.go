// Package turkish provides locale-aware text canonicalization for matching
// gazette headings and titles regardless of case and diacritics.
package turkish

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold uppercases text with Turkish casing rules and folds locale-specific
// letters (İ, ı, Ğ, Ü, Ö, Ş, Ç and the circumflexed Â, Î, Û) onto plain ASCII
// uppercase. Fold is pure and idempotent: folding a folded string is a no-op.
func Fold(text string) string {
	upper := strings.ToUpperSpecial(unicode.TurkishCase, text)

	// Turkish uppercase maps i→İ and ı→I; decomposing and dropping the
	// combining marks then collapses İ→I, Ğ→G, Ü→U, Ö→O, Ş→S, Ç→C, Â→A,
	// Î→I and Û→U in one pass.
	folded, _, err := transform.String(stripMarks, upper)
	if err != nil {
		return upper
	}
	return folded
}

// Equal reports whether two strings are the same under Fold.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
