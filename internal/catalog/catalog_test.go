package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `[
  {
    "subject": "Mathématiques",
    "year": "2018",
    "sections": [
      {
        "section_title": "Algèbre",
        "questions": [
          {"question": "Résoudre x²-4=0", "type": "calculation"},
          {"question": "Vrai ou faux: 2 est pair", "type": "true_false", "correct": "vrai"}
        ]
      },
      {
        "section_title": "Analyse",
        "questions": [
          {"question": "Calculer la dérivée de f", "type": "calculation"}
        ]
      }
    ]
  },
  {
    "subject": "Anglais",
    "sections": [
      {"questions": [{"question": "Fill in the blank", "type": "fill_blank"}]}
    ]
  }
]`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exam_catalog.json")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("got %d exams, want 2", len(c))
	}
	if c[0].Subject != "Mathématiques" {
		t.Errorf("subject = %q", c[0].Subject)
	}
	if got := c.QuestionCount(); got != 4 {
		t.Errorf("QuestionCount = %d, want 4", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveCreatesBackup(t *testing.T) {
	path := writeSample(t)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	c[0].Sections[0].Questions[0].Hints = []string{"premier indice"}
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("backup not written: %v", err)
	}

	reread, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	got := reread[0].Sections[0].Questions[0].Hints
	if len(got) != 1 || got[0] != "premier indice" {
		t.Errorf("hints not persisted: %v", got)
	}
}

func TestScaffoldFieldsOmittedWhenCleared(t *testing.T) {
	path := writeSample(t)
	c, _ := Load(path)
	q := c[0].Sections[0].Questions[1]
	q.ScaffoldText = ""
	q.ScaffoldBlanks = nil
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)
	for _, field := range []string{"scaffold_text", "scaffold_blanks"} {
		if contains(string(raw), field) {
			t.Errorf("cleared field %q still serialized", field)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestWalk(t *testing.T) {
	c, _ := Load(writeSample(t))
	handles := c.Walk()
	if len(handles) != 4 {
		t.Fatalf("got %d handles, want 4", len(handles))
	}
	if handles[2].Key() != "0-1-0" {
		t.Errorf("key = %q, want 0-1-0", handles[2].Key())
	}
	if handles[3].Subject != "Anglais" {
		t.Errorf("subject = %q, want Anglais", handles[3].Subject)
	}
	// Handles alias the catalog questions.
	handles[0].Question.Hints = []string{"x"}
	if len(c[0].Sections[0].Questions[0].Hints) != 1 {
		t.Error("handle does not alias the underlying question")
	}
}
