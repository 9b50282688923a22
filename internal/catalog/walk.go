package catalog

import "fmt"

// Handle is a flat reference to one question plus the context the engine
// needs: the owning exam's subject label and the position in the tree.
// Flattening keeps the transform pure and testable apart from tree walking.
type Handle struct {
	Exam     int
	Section  int
	Index    int
	Subject  string
	Question *Question
}

// Key returns the stable "exam-section-question" identifier used by the
// refinement checkpoint store.
func (h Handle) Key() string {
	return fmt.Sprintf("%d-%d-%d", h.Exam, h.Section, h.Index)
}

// Walk flattens the exam → section → question tree into handles, in
// document order.
func (c Catalog) Walk() []Handle {
	var out []Handle
	for ei, e := range c {
		for si, s := range e.Sections {
			for qi, q := range s.Questions {
				out = append(out, Handle{
					Exam:     ei,
					Section:  si,
					Index:    qi,
					Subject:  e.Subject,
					Question: q,
				})
			}
		}
	}
	return out
}
