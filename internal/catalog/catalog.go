// Package catalog models the exam catalog file: a JSON array of exams, each
// holding sections, each holding questions. The engine mutates questions in
// place and the catalog is written back whole.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Blank is one labeled fill-in position of a scaffold. The renderer matches
// the {{i}} token in ScaffoldText against ScaffoldBlanks[i].Label.
type Blank struct {
	Label string `json:"label"`
}

// AnswerPart is one labeled component of a multi-part model answer.
type AnswerPart struct {
	Label  string `json:"label,omitempty"`
	Answer string `json:"answer,omitempty"`
}

// Question is the unit of work. Type and Subject are fixed at ingestion;
// Hints, ScaffoldText and ScaffoldBlanks are owned by the engine.
type Question struct {
	Text        string            `json:"question"`
	Type        string            `json:"type,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
	Correct     string            `json:"correct,omitempty"`
	HasFigure   bool              `json:"has_figure,omitempty"`
	ModelAnswer string            `json:"model_answer,omitempty"`
	FinalAnswer string            `json:"final_answer,omitempty"`
	AnswerParts []AnswerPart      `json:"answer_parts,omitempty"`
	Explanation string            `json:"explanation,omitempty"`

	Hints          []string `json:"hints,omitempty"`
	ScaffoldText   string   `json:"scaffold_text,omitempty"`
	ScaffoldBlanks []Blank  `json:"scaffold_blanks,omitempty"`
}

// Answered reports whether the question carries a non-empty correct answer.
// Answered questions get hints but no scaffold.
func (q *Question) Answered() bool {
	return q.Correct != ""
}

// Section groups questions under a shared title and instructions block.
type Section struct {
	Title        string      `json:"section_title,omitempty"`
	Instructions string      `json:"instructions,omitempty"`
	Questions    []*Question `json:"questions"`
}

// Exam is one exam paper. Subject is the free-text label every question in
// the exam is classified under.
type Exam struct {
	Title    string     `json:"title,omitempty"`
	Subject  string     `json:"subject"`
	Level    string     `json:"level,omitempty"`
	Year     string     `json:"year,omitempty"`
	Sections []*Section `json:"sections"`
}

// Catalog is the whole exam collection.
type Catalog []*Exam

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Save writes the catalog back to path. If the file already exists it is
// copied to path+".bak" first, so a bad run never destroys the only copy.
func (c Catalog) Save(path string) error {
	if prev, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".bak", prev, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// QuestionCount returns the total number of questions across all exams.
func (c Catalog) QuestionCount() int {
	n := 0
	for _, e := range c {
		for _, s := range e.Sections {
			n += len(s.Questions)
		}
	}
	return n
}
