// Package subparts detects and summarizes enumerated sub-parts inside a
// question body ("a) … b) …" or "1) … 2) …").
package subparts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SubPart is one lettered or numbered component of a multi-part question.
// Ephemeral: only the summary of its content survives into scaffold blanks.
type SubPart struct {
	Marker  string
	Content string
}

// Markers must sit at a line start or right after a sentence-ending,
// bracket or space boundary, so a parenthesized letter inside prose
// ("grade a) material") still matches but "(a)" mid-word does not.
var (
	letterMarker = regexp.MustCompile(`(?m)(?:^|[\s.;:!?()\[\]])([a-hA-H])\)`)
	numberMarker = regexp.MustCompile(`(?m)(?:^|[\s.;:!?()\[\]])([0-9]{1,2})[)°]`)
)

// minSegmentRunes is the noise filter: a candidate segment whose trimmed
// content is this short is a spurious match (a bare "a)" in prose), not a
// question part.
const minSegmentRunes = 3

// Detect splits text into its enumerated sub-parts, or returns nil when the
// question is single-part. Letter markers are tried first; numeric/degree
// markers only when the letter split fails. The two families are never mixed
// in one split, and a lone marker never produces a split — the result is nil
// or at least two parts.
func Detect(text string) []SubPart {
	if parts := splitAt(text, letterMarker); parts != nil {
		return parts
	}
	return splitAt(text, numberMarker)
}

func splitAt(text string, re *regexp.Regexp) []SubPart {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) < 2 {
		return nil
	}

	var parts []SubPart
	for i, m := range locs {
		start := m[1] // just after the marker
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0] // just before the next marker's boundary
		}
		content := strings.TrimSpace(text[start:end])
		if utf8.RuneCountInString(content) <= minSegmentRunes {
			continue
		}
		// Markers are normalized to lowercase so "A) … B) …" papers
		// produce the same scaffolds as "a) … b) …" ones.
		parts = append(parts, SubPart{
			Marker:  strings.ToLower(text[m[2]:m[3]]),
			Content: content,
		})
	}

	if len(parts) < 2 {
		return nil
	}
	return parts
}
