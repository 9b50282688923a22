// Package scaffold instantiates model-answer templates: a text with {{i}}
// placeholders plus the ordered blank labels those placeholders refer to.
package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
	"github.com/edlight/skafo/internal/subparts"
)

// Scaffold pairs a placeholder-annotated template text with its blanks.
// The i-th {{i}} token in Text corresponds to Blanks[i]. MultiPart marks
// templates produced by the sub-part override.
type Scaffold struct {
	Text      string
	Blanks    []catalog.Blank
	MultiPart bool
}

// Build resolves the template for a question. First applicable rule wins:
//  1. multi-part questions get one blank per sub-part, labeled with its
//     summary;
//  2. type-specific templates (multiple_choice, true_false, matching,
//     fill_blank, essay);
//  3. (category, topic) method templates for math, physics and chemistry;
//  4. the category's short-answer template;
//  5. a generic fallback.
//
// The only nil return is a multiple-choice question with no options.
func Build(q *catalog.Question, cat classify.Category, topic classify.Topic, parts []subparts.SubPart) *Scaffold {
	if len(parts) >= 2 && multiPartType(q.Type) {
		return buildMultiPart(parts)
	}

	switch q.Type {
	case catalog.TypeMultipleChoice:
		return buildMultipleChoice(q)
	case catalog.TypeTrueFalse:
		return numbered(
			"Verdict (Vrai ou Faux)",
			"Justification de votre verdict",
		)
	case catalog.TypeMatching:
		return numbered(
			"Associations dont vous êtes sûr(e)",
			"Associations restantes, par élimination",
			"Liste complète des paires",
		)
	case catalog.TypeFillBlank:
		return buildFillBlank(cat, topic)
	case catalog.TypeEssay:
		return essayTemplate(cat)
	}

	if s := methodTemplate(cat, topic); s != nil {
		return s
	}
	if labels, ok := categoryAnswers[cat]; ok {
		return numbered(labels...)
	}
	return numbered(genericFallback...)
}

// multiPartType reports whether the question type admits the multi-part
// override. Structured types (MCQ, matching, fill-blank) keep their own
// template even when the text contains enumeration markers.
func multiPartType(t string) bool {
	switch t {
	case catalog.TypeCalculation, catalog.TypeShortAnswer, catalog.TypeEssay:
		return true
	}
	return false
}

func buildMultiPart(parts []subparts.SubPart) *Scaffold {
	lines := make([]string, 0, len(parts))
	blanks := make([]catalog.Blank, 0, len(parts))
	for i, p := range parts {
		lines = append(lines, fmt.Sprintf("%s) {{%d}}", p.Marker, i))
		blanks = append(blanks, catalog.Blank{Label: subparts.Summarize(p.Content)})
	}
	return &Scaffold{Text: strings.Join(lines, "\n"), Blanks: blanks, MultiPart: true}
}

func buildMultipleChoice(q *catalog.Question) *Scaffold {
	if len(q.Options) == 0 {
		return nil
	}
	keys := make([]string, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Options :\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s. %s\n", k, q.Options[k])
	}
	b.WriteString("Lettre de la bonne option : {{0}}\n")
	b.WriteString("Justification : {{1}}")
	return &Scaffold{
		Text: b.String(),
		Blanks: []catalog.Blank{
			{Label: "Lettre de l'option correcte"},
			{Label: "Justification du choix"},
		},
	}
}

func buildFillBlank(cat classify.Category, topic classify.Topic) *Scaffold {
	if cat == classify.CategoryMath {
		if framing, ok := mathFillBlank[topic]; ok {
			return single(framing)
		}
	}
	if framing, ok := fillBlankFramings[cat]; ok {
		return single(framing)
	}
	return single("Compléter le blanc avec le terme qui convient")
}

func essayTemplate(cat classify.Category) *Scaffold {
	if labels, ok := essayOutlines[cat]; ok {
		return numbered(labels...)
	}
	return numbered(essayGeneric...)
}

func methodTemplate(cat classify.Category, topic classify.Topic) *Scaffold {
	table, ok := methodTables[cat]
	if !ok {
		return nil
	}
	labels, ok := table[topic]
	if !ok {
		labels = table[classify.TopicGeneral]
	}
	if labels == nil {
		return nil
	}
	return numbered(labels...)
}

// numbered renders labels as "1. label : {{0}}" lines, one blank per label.
// All fixed templates go through here so placeholder/blank parity holds by
// construction.
func numbered(labels ...string) *Scaffold {
	lines := make([]string, 0, len(labels))
	blanks := make([]catalog.Blank, 0, len(labels))
	for i, label := range labels {
		lines = append(lines, fmt.Sprintf("%d. %s : {{%d}}", i+1, label, i))
		blanks = append(blanks, catalog.Blank{Label: label})
	}
	return &Scaffold{Text: strings.Join(lines, "\n"), Blanks: blanks}
}

func single(label string) *Scaffold {
	return &Scaffold{
		Text:   label + " : {{0}}",
		Blanks: []catalog.Blank{{Label: label}},
	}
}
