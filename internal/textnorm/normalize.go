// Package textnorm normalizes free-text labels for rule matching.
//
// Subject labels in the catalog are inconsistent across sources: accents
// ("Mathématiques" vs "Mathematiques"), case, and bilingual spellings.
// Matching happens on the normalized form only.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips combining diacritical marks via NFD
// decomposition. No locale exceptions: "é" → "e", "ò" → "o", "ñ" → "n".
// Total — on a transform failure the lowercased input is returned as-is.
func Normalize(s string) string {
	lower := strings.ToLower(s)

	// Chained transformers carry internal state, so build a fresh chain per
	// call rather than sharing one across goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}
