package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/edlight/skafo/internal/textnorm"
)

// Topic is a fine-grained classification inside a category. Every category
// owns TopicGeneral as its no-match fallback.
type Topic string

const TopicGeneral Topic = "general"

// Rule is one (pattern, topic) entry of a cascade. Pattern is a regular
// expression matched against the normalized question text.
type Rule struct {
	Pattern string
	Topic   Topic

	re *regexp.Regexp
}

// topicCascades holds one independent ordered cascade per category.
// Categories absent here (health, creole, computing, arts, ethics, general
// have small cascades or none) fall straight to TopicGeneral.
var topicCascades = map[Category][]Rule{}

// compileErrs collects rules whose pattern failed to compile. A bad rule is
// skipped at match time; Validate surfaces the full list so authoring
// mistakes are caught at startup rather than silently per question.
var compileErrs []error

func registerCascade(cat Category, rules []Rule) {
	for i := range rules {
		re, err := regexp.Compile(rules[i].Pattern)
		if err != nil {
			compileErrs = append(compileErrs,
				fmt.Errorf("%s cascade, rule %d (%s): %w", cat, i, rules[i].Topic, err))
			continue
		}
		rules[i].re = re
	}
	topicCascades[cat] = rules
}

// Validate reports every rule-table problem found at load time, or nil.
func Validate() error {
	if len(compileErrs) == 0 {
		return nil
	}
	msgs := make([]string, len(compileErrs))
	for i, err := range compileErrs {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("topic rule validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

// ClassifyTopic maps question text to a topic within the given category.
// The category's cascade is evaluated top-to-bottom against the normalized
// text; the first matching rule wins and later rules are never evaluated.
// No cascade or no match resolves to TopicGeneral.
func ClassifyTopic(cat Category, text string) Topic {
	rules, ok := topicCascades[cat]
	if !ok {
		return TopicGeneral
	}
	norm := textnorm.Normalize(text)
	for _, r := range rules {
		if r.re == nil {
			continue
		}
		if r.re.MatchString(norm) {
			return r.Topic
		}
	}
	return TopicGeneral
}

// Cascade returns the rule list for a category (used by the check command).
func Cascade(cat Category) []Rule {
	return topicCascades[cat]
}
