// Package hints produces the ordered, capped hint list for a question.
// Hint banks are static data; resolution is topic bank, then category
// keyword rules, then category defaults, then a type-keyed fallback.
package hints

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
	"github.com/edlight/skafo/internal/textnorm"
)

// maxHints caps every generated list. The figure hint counts toward the cap.
const maxHints = 3

const figureHint = "Observez attentivement la figure avant de répondre."

// keywordRule maps a text pattern to a fixed hint list. Patterns are matched
// against normalized question text. A rule whose pattern fails to compile is
// recorded for Validate and skipped at evaluation time.
type keywordRule struct {
	Pattern string
	Hints   []string

	re *regexp.Regexp
}

var (
	keywordBanks = map[classify.Category][]keywordRule{}
	compileErrs  []error
)

func registerKeywords(cat classify.Category, rules []keywordRule) {
	for i := range rules {
		re, err := regexp.Compile(rules[i].Pattern)
		if err != nil {
			compileErrs = append(compileErrs,
				fmt.Errorf("hint rule %d for %s (%q): %w", i, cat, rules[i].Pattern, err))
			continue
		}
		rules[i].re = re
	}
	keywordBanks[cat] = rules
}

// Validate reports every hint rule whose pattern failed to compile and
// every bank whose list breaks the size cap. Run once at startup; a
// non-nil result means the committed tables are broken.
func Validate() error {
	errs := append([]error(nil), compileErrs...)

	for cat, bank := range topicBanks {
		for topic, list := range bank {
			errs = append(errs, checkBank(fmt.Sprintf("topic bank %s/%s", cat, topic), list))
		}
	}
	for cat, rules := range keywordBanks {
		for i, r := range rules {
			errs = append(errs, checkBank(fmt.Sprintf("keyword rule %d for %s", i, cat), r.Hints))
		}
	}
	for cat, list := range categoryDefaults {
		errs = append(errs, checkBank(fmt.Sprintf("category default %s", cat), list))
	}
	for typ, list := range typeDefaults {
		errs = append(errs, checkBank(fmt.Sprintf("type default %s", typ), list))
	}
	errs = append(errs, checkBank("generic bank", genericHints))

	return errors.Join(errs...)
}

// checkBank enforces the bank shape: one to maxHints hints, none blank.
func checkBank(name string, list []string) error {
	if len(list) == 0 || len(list) > maxHints {
		return fmt.Errorf("%s: %d hints, want 1 to %d", name, len(list), maxHints)
	}
	for i, h := range list {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("%s: hint %d is empty", name, i)
		}
	}
	return nil
}

// Generate returns at most three hints for the question. It never fails: an
// unmatched category or topic falls through to coarser banks and finally to
// a type-keyed generic set.
func Generate(q *catalog.Question, cat classify.Category, topic classify.Topic) []string {
	hints := resolve(q, cat, topic)

	out := make([]string, 0, maxHints)
	if q.HasFigure {
		out = append(out, figureHint)
	}
	out = append(out, hints...)
	if len(out) > maxHints {
		out = out[:maxHints]
	}
	return out
}

func resolve(q *catalog.Question, cat classify.Category, topic classify.Topic) []string {
	if bank, ok := topicBanks[cat]; ok {
		if h, ok := bank[topic]; ok {
			return h
		}
		if h, ok := bank[classify.TopicGeneral]; ok {
			return h
		}
	}

	if rules, ok := keywordBanks[cat]; ok {
		norm := textnorm.Normalize(q.Text)
		for _, r := range rules {
			if r.re == nil {
				continue
			}
			if r.re.MatchString(norm) {
				return r.Hints
			}
		}
	}

	if h, ok := categoryDefaults[cat]; ok {
		return h
	}

	if h, ok := typeDefaults[q.Type]; ok {
		return h
	}
	return genericHints
}
