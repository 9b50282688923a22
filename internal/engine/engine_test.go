package engine

import (
	"strings"
	"testing"

	"github.com/edlight/skafo/internal/catalog"
)

func TestValidateCleanTables(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("committed rule tables must validate: %v", err)
	}
}

func TestProcessUnansweredCalculation(t *testing.T) {
	q := &catalog.Question{
		Text: "Calculer la dérivée de f(x) = x³.",
		Type: catalog.TypeCalculation,
	}
	scaffolded, multiPart := Process(q, "Mathématiques")
	if !scaffolded || multiPart {
		t.Fatalf("scaffolded=%v multiPart=%v, want true/false", scaffolded, multiPart)
	}
	if len(q.Hints) != 3 {
		t.Errorf("got %d hints, want 3", len(q.Hints))
	}
	if !strings.Contains(q.Hints[0], "dérivation") {
		t.Errorf("hint 0 = %q, want the derivative bank", q.Hints[0])
	}
	if len(q.ScaffoldBlanks) != 3 {
		t.Errorf("got %d blanks, want the derivative method template", len(q.ScaffoldBlanks))
	}
}

func TestProcessAnsweredClearsScaffold(t *testing.T) {
	q := &catalog.Question{
		Text:           "Combien font 6 × 7 ?",
		Type:           catalog.TypeCalculation,
		Correct:        "42",
		ScaffoldText:   "ancien {{0}}",
		ScaffoldBlanks: []catalog.Blank{{Label: "ancien"}},
	}
	scaffolded, _ := Process(q, "Mathématiques")
	if scaffolded {
		t.Error("answered question must not be scaffolded")
	}
	if q.ScaffoldText != "" || q.ScaffoldBlanks != nil {
		t.Errorf("stale scaffold kept: %q %v", q.ScaffoldText, q.ScaffoldBlanks)
	}
	if len(q.Hints) == 0 {
		t.Error("hints must still be regenerated for answered questions")
	}
}

func TestProcessMultiPart(t *testing.T) {
	q := &catalog.Question{
		Text: "a) Calculer la vitesse. b) Déterminer l'accélération.",
		Type: catalog.TypeCalculation,
	}
	scaffolded, multiPart := Process(q, "Physique")
	if !scaffolded || !multiPart {
		t.Fatalf("scaffolded=%v multiPart=%v, want true/true", scaffolded, multiPart)
	}
	if len(q.ScaffoldBlanks) != 2 {
		t.Errorf("got %d blanks, want 2", len(q.ScaffoldBlanks))
	}
}

func TestProcessOptionlessMCQ(t *testing.T) {
	q := &catalog.Question{Text: "Choisir la bonne réponse.", Type: catalog.TypeMultipleChoice}
	scaffolded, _ := Process(q, "Histoire")
	if scaffolded {
		t.Error("MCQ without options must produce no scaffold")
	}
	if q.ScaffoldText != "" {
		t.Errorf("scaffold text = %q, want empty", q.ScaffoldText)
	}
	if len(q.Hints) == 0 {
		t.Error("hints must still be generated")
	}
}

func runCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			Subject: "Mathématiques",
			Sections: []*catalog.Section{
				{
					Questions: []*catalog.Question{
						{Text: "Calculer la dérivée de f(x) = x².", Type: catalog.TypeCalculation},
						{Text: "a) Calculer la vitesse. b) Déterminer l'accélération.", Type: catalog.TypeCalculation},
						{Text: "Combien font 6 × 7 ?", Type: catalog.TypeCalculation, Correct: "42", ScaffoldText: "vieux {{0}}", ScaffoldBlanks: []catalog.Blank{{Label: "vieux"}}},
					},
				},
			},
		},
		{
			Subject: "Chimie",
			Sections: []*catalog.Section{
				{
					Questions: []*catalog.Question{
						{Text: "Écrire l'équation de combustion du méthane.", Type: catalog.TypeCalculation},
					},
				},
			},
		},
	}
}

func TestRunCounters(t *testing.T) {
	c := runCatalog()
	rep := Run(c, 4)

	if rep.Processed != 4 {
		t.Errorf("Processed = %d, want 4", rep.Processed)
	}
	if rep.Scaffolded != 3 {
		t.Errorf("Scaffolded = %d, want 3", rep.Scaffolded)
	}
	if rep.MultiPart != 1 {
		t.Errorf("MultiPart = %d, want 1", rep.MultiPart)
	}
	if rep.SkippedAnswered != 1 {
		t.Errorf("SkippedAnswered = %d, want 1", rep.SkippedAnswered)
	}

	answered := c[0].Sections[0].Questions[2]
	if answered.ScaffoldText != "" || answered.ScaffoldBlanks != nil {
		t.Error("answered question still carries a scaffold after the pass")
	}
	if len(answered.Hints) == 0 {
		t.Error("answered question hints were not regenerated")
	}
}

func TestRunSingleWorkerMatchesParallel(t *testing.T) {
	serial := runCatalog()
	parallel := runCatalog()

	a := Run(serial, 1)
	b := Run(parallel, 8)
	if a != b {
		t.Fatalf("reports differ: %+v vs %+v", a, b)
	}

	for i, h := range serial.Walk() {
		other := parallel.Walk()[i]
		if h.Question.ScaffoldText != other.Question.ScaffoldText {
			t.Errorf("question %s scaffold differs across worker counts", h.Key())
		}
	}
}
