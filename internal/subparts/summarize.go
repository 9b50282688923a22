package subparts

import (
	"strings"
	"unicode/utf8"

	"github.com/edlight/skafo/internal/textnorm"
)

// Instructional imperatives that open a baccalauréat question part, in both
// infinitive and second-person form. Compared against the normalized
// (lowercased, diacritic-stripped) start of the content.
var imperativeVerbs = []string{
	"calculer", "calculez",
	"determiner", "determinez",
	"montrer", "montrez",
	"demontrer", "demontrez",
	"trouver", "trouvez",
	"resoudre", "resolvez",
	"expliquer", "expliquez",
	"definir", "definissez",
	"donner", "donnez",
	"citer", "citez",
	"ecrire", "ecrivez",
	"tracer", "tracez",
	"justifier", "justifiez",
	"comparer", "comparez",
	"etudier", "etudiez",
	"verifier", "verifiez",
	"deduire", "deduisez",
	"exprimer", "exprimez",
	"preciser", "precisez",
	"nommer", "nommez",
	"indiquer", "indiquez",
	"representer", "representez",
	"completer", "completez",
	"identifier", "identifiez",
}

const (
	sentenceCap = 120
	verbatimCap = 100
)

var sentenceEnders = ".;?!"

// Summarize reduces a sub-part's content to a short blank label. Strict
// priority chain — each rule applies only if the previous one did not:
//  1. content opening with an instructional imperative → first sentence,
//     capped at 120 runes;
//  2. content of at most 100 runes → verbatim, line breaks collapsed;
//  3. first full sentence, capped at 120 runes;
//  4. first 100 runes plus an ellipsis.
func Summarize(content string) string {
	content = strings.TrimSpace(content)

	if startsWithImperative(content) {
		return capRunes(firstSentence(content), sentenceCap)
	}

	if utf8.RuneCountInString(content) <= verbatimCap {
		return collapseLines(content)
	}

	if idx := strings.IndexAny(content, sentenceEnders); idx >= 0 {
		return capRunes(content[:idx+1], sentenceCap)
	}

	return string([]rune(content)[:verbatimCap]) + "…"
}

func startsWithImperative(content string) bool {
	norm := textnorm.Normalize(content)
	for _, v := range imperativeVerbs {
		if strings.HasPrefix(norm, v) {
			return true
		}
	}
	return false
}

// firstSentence returns content up to and including the first terminating
// punctuation, or the whole content when there is none.
func firstSentence(content string) string {
	if idx := strings.IndexAny(content, sentenceEnders); idx >= 0 {
		return content[:idx+1]
	}
	return content
}

func capRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func collapseLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
