package scaffold

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
	"github.com/edlight/skafo/internal/subparts"
)

func TestBuildDerivativeMethod(t *testing.T) {
	q := &catalog.Question{
		Text: "Calculer la dérivée de f(x) = x³ - 2x.",
		Type: catalog.TypeCalculation,
	}
	s := Build(q, classify.CategoryMath, classify.TopicDerivatives, nil)
	if s == nil {
		t.Fatal("expected a scaffold")
	}
	if len(s.Blanks) != 3 {
		t.Fatalf("got %d blanks, want 3", len(s.Blanks))
	}
	if s.Blanks[0].Label != "Écrire la formule de dérivation applicable" {
		t.Errorf("blank 0 = %q", s.Blanks[0].Label)
	}
}

func TestBuildMultiPartOverride(t *testing.T) {
	text := "a) Calculer la vitesse. b) Déterminer l'accélération."
	parts := subparts.Detect(text)
	if len(parts) != 2 {
		t.Fatalf("segmentation returned %d parts", len(parts))
	}
	q := &catalog.Question{Text: text, Type: catalog.TypeCalculation}
	s := Build(q, classify.CategoryPhysics, classify.TopicKinematics, parts)
	if len(s.Blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(s.Blanks))
	}
	if s.Blanks[0].Label != "Calculer la vitesse." {
		t.Errorf("blank 0 = %q", s.Blanks[0].Label)
	}
	if s.Blanks[1].Label != "Déterminer l'accélération." {
		t.Errorf("blank 1 = %q", s.Blanks[1].Label)
	}
	if s.Text != "a) {{0}}\nb) {{1}}" {
		t.Errorf("text = %q", s.Text)
	}
}

func TestBuildMultiPartSkippedForStructuredTypes(t *testing.T) {
	// A matching question with enumeration markers keeps its own template.
	text := "a) Associer les éléments. b) Justifier vos choix."
	parts := subparts.Detect(text)
	q := &catalog.Question{Text: text, Type: catalog.TypeMatching}
	s := Build(q, classify.CategoryGeneral, classify.TopicGeneral, parts)
	if len(s.Blanks) != 3 {
		t.Errorf("got %d blanks, want the 3-blank matching template", len(s.Blanks))
	}
}

func TestBuildMultipleChoice(t *testing.T) {
	q := &catalog.Question{
		Text:    "La Terre tourne autour du Soleil.",
		Type:    catalog.TypeMultipleChoice,
		Options: map[string]string{"A": "Vrai", "B": "Faux"},
	}
	s := Build(q, classify.CategoryGeneral, classify.TopicGeneral, nil)
	if s == nil {
		t.Fatal("expected a scaffold")
	}
	if len(s.Blanks) != 2 {
		t.Fatalf("got %d blanks, want 2", len(s.Blanks))
	}
	if !strings.Contains(s.Text, "A. Vrai") || !strings.Contains(s.Text, "B. Faux") {
		t.Errorf("options not rendered inline: %q", s.Text)
	}
}

func TestBuildMultipleChoiceWithoutOptions(t *testing.T) {
	q := &catalog.Question{Text: "Choisir la bonne réponse.", Type: catalog.TypeMultipleChoice}
	if s := Build(q, classify.CategoryGeneral, classify.TopicGeneral, nil); s != nil {
		t.Errorf("expected no scaffold without options, got %+v", s)
	}
}

func TestBuildCombustionTemplate(t *testing.T) {
	q := &catalog.Question{
		Text: "Écrire l'équation de combustion du méthane.",
		Type: catalog.TypeCalculation,
	}
	topic := classify.ClassifyTopic(classify.CategoryChemistry, q.Text)
	if topic != classify.TopicCombustion {
		t.Fatalf("topic = %q, want combustion", topic)
	}
	s := Build(q, classify.CategoryChemistry, topic, nil)
	if len(s.Blanks) != 3 {
		t.Fatalf("got %d blanks, want 3", len(s.Blanks))
	}
	if s.Blanks[1].Label != "Équilibrer l'équation" {
		t.Errorf("blank 1 = %q", s.Blanks[1].Label)
	}
}

func TestBuildEssayVariants(t *testing.T) {
	q := &catalog.Question{Text: "Write an essay about your hometown.", Type: catalog.TypeEssay}
	s := Build(q, classify.CategoryEnglish, classify.TopicGeneral, nil)
	if len(s.Blanks) != 4 {
		t.Errorf("english essay: got %d blanks, want 4", len(s.Blanks))
	}

	q = &catalog.Question{Text: "Dissertation sur la liberté.", Type: catalog.TypeEssay}
	s = Build(q, classify.CategoryPhilosophy, classify.TopicGeneral, nil)
	if len(s.Blanks) != 4 {
		t.Errorf("philosophy essay: got %d blanks, want 4", len(s.Blanks))
	}

	q = &catalog.Question{Text: "Redije yon tèks sou lavil ou.", Type: catalog.TypeEssay}
	s = Build(q, classify.CategoryCreole, classify.TopicGeneral, nil)
	if len(s.Blanks) != len(essayGeneric) {
		t.Errorf("generic essay: got %d blanks, want %d", len(s.Blanks), len(essayGeneric))
	}
}

func TestBuildFillBlankFraming(t *testing.T) {
	q := &catalog.Question{Text: "La solution de 2x = 4 est x = ___.", Type: catalog.TypeFillBlank}
	s := Build(q, classify.CategoryMath, classify.TopicEquations, nil)
	if len(s.Blanks) != 1 {
		t.Fatalf("got %d blanks, want 1", len(s.Blanks))
	}
	if s.Blanks[0].Label != "Compléter avec la solution de l'équation" {
		t.Errorf("label = %q", s.Blanks[0].Label)
	}

	q = &catalog.Question{Text: "Les plantes produisent ___ par photosynthèse.", Type: catalog.TypeFillBlank}
	s = Build(q, classify.CategoryBiology, classify.TopicPlants, nil)
	if s.Blanks[0].Label != "Compléter avec le terme biologique qui convient" {
		t.Errorf("label = %q", s.Blanks[0].Label)
	}
}

func TestBuildGenericFallback(t *testing.T) {
	q := &catalog.Question{Text: "Répondre à la question.", Type: catalog.TypeShortAnswer}
	s := Build(q, classify.CategoryGeneral, classify.TopicGeneral, nil)
	if s == nil {
		t.Fatal("fallback must always produce a scaffold")
	}
	if len(s.Blanks) != len(genericFallback) {
		t.Errorf("got %d blanks, want %d", len(s.Blanks), len(genericFallback))
	}
}

var placeholderRe = regexp.MustCompile(`\{\{(\d+)\}\}`)

// Every reachable (type, category) pair must yield a scaffold whose {{i}}
// tokens are exactly 0..len(blanks)-1, or no scaffold at all.
func TestPlaceholderBlankParity(t *testing.T) {
	types := []string{
		catalog.TypeCalculation, catalog.TypeShortAnswer, catalog.TypeEssay,
		catalog.TypeMultipleChoice, catalog.TypeTrueFalse, catalog.TypeMatching,
		catalog.TypeFillBlank, "",
	}
	texts := []string{
		"Calculer la dérivée de f.",
		"a) Calculer la vitesse. b) Déterminer l'accélération.",
		"Expliquer le phénomène observé.",
	}
	for _, cat := range classify.AllCategories() {
		for _, typ := range types {
			for _, text := range texts {
				q := &catalog.Question{
					Text:    text,
					Type:    typ,
					Options: map[string]string{"A": "oui", "B": "non"},
				}
				topic := classify.ClassifyTopic(cat, text)
				s := Build(q, cat, topic, subparts.Detect(text))
				if s == nil {
					continue
				}
				checkParity(t, fmt.Sprintf("%s/%s/%q", cat, typ, text), s)
			}
		}
	}
}

func checkParity(t *testing.T, desc string, s *Scaffold) {
	t.Helper()
	matches := placeholderRe.FindAllStringSubmatch(s.Text, -1)
	if len(matches) != len(s.Blanks) {
		t.Errorf("%s: %d placeholders, %d blanks", desc, len(matches), len(s.Blanks))
		return
	}
	seen := make(map[int]bool)
	for _, m := range matches {
		i, err := strconv.Atoi(m[1])
		if err != nil || i < 0 || i >= len(s.Blanks) || seen[i] {
			t.Errorf("%s: bad placeholder index %q", desc, m[1])
			return
		}
		seen[i] = true
	}
}

func TestBuildDeterministic(t *testing.T) {
	q := &catalog.Question{
		Text:    "Choisir la capitale d'Haïti.",
		Type:    catalog.TypeMultipleChoice,
		Options: map[string]string{"C": "Cap-Haïtien", "A": "Port-au-Prince", "B": "Gonaïves"},
	}
	first := Build(q, classify.CategoryHistory, classify.TopicGeneral, nil)
	for range 5 {
		if s := Build(q, classify.CategoryHistory, classify.TopicGeneral, nil); s.Text != first.Text {
			t.Fatalf("non-deterministic text:\n%q\n%q", first.Text, s.Text)
		}
	}
}

func TestValidateCommittedTables(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("committed tables invalid: %v", err)
	}
}

func TestCheckScaffoldRejectsBrokenTemplates(t *testing.T) {
	tests := []struct {
		desc string
		s    *Scaffold
	}{
		{"missing blank", &Scaffold{Text: "Réponse : {{0}}\nJustification : {{1}}", Blanks: []catalog.Blank{{Label: "Réponse"}}}},
		{"out of order", &Scaffold{Text: "{{1}} puis {{0}}", Blanks: []catalog.Blank{{Label: "a"}, {Label: "b"}}}},
		{"empty label", &Scaffold{Text: "Réponse : {{0}}", Blanks: []catalog.Blank{{Label: "  "}}}},
	}
	for _, tt := range tests {
		if err := checkScaffold(tt.desc, tt.s); err == nil {
			t.Errorf("%s: accepted", tt.desc)
		}
	}

	good := numbered("Réponse principale", "Justification")
	if err := checkScaffold("good", good); err != nil {
		t.Errorf("rejected a well formed template: %v", err)
	}
}

func TestCheckLabelsRejectsEmptyList(t *testing.T) {
	if err := checkLabels("empty", nil); err == nil {
		t.Error("accepted an empty label list")
	}
}
