// Package engine runs the classification and templating pass over a
// catalog: every question gets fresh hints, and unanswered questions get a
// scaffold.
package engine

import (
	"errors"
	"runtime"
	"sync"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
	"github.com/edlight/skafo/internal/hints"
	"github.com/edlight/skafo/internal/scaffold"
	"github.com/edlight/skafo/internal/subparts"
)

// Report carries the counters of one pass.
type Report struct {
	Processed       int
	Scaffolded      int
	MultiPart       int
	SkippedAnswered int
}

// Validate checks every committed rule and template table. Run once at
// startup so a malformed pattern or broken template aborts the command
// instead of being skipped silently per question.
func Validate() error {
	return errors.Join(classify.Validate(), scaffold.Validate(), hints.Validate())
}

// Process transforms one question in place. Hints are rewritten
// unconditionally; scaffold fields are attached only when the question is
// unanswered, and cleared otherwise.
func Process(q *catalog.Question, subject string) (scaffolded, multiPart bool) {
	cat := classify.ClassifySubject(subject)
	topic := classify.ClassifyTopic(cat, q.Text)

	q.Hints = hints.Generate(q, cat, topic)

	if q.Answered() {
		q.ScaffoldText = ""
		q.ScaffoldBlanks = nil
		return false, false
	}

	s := scaffold.Build(q, cat, topic, subparts.Detect(q.Text))
	if s == nil {
		q.ScaffoldText = ""
		q.ScaffoldBlanks = nil
		return false, false
	}
	q.ScaffoldText = s.Text
	q.ScaffoldBlanks = s.Blanks
	return true, s.MultiPart
}

// Run processes every question in the catalog with a worker pool. Each
// transform reads only its own question plus static rule tables, so the
// counters are the only shared state.
func Run(c catalog.Catalog, workers int) Report {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu  sync.Mutex
		rep Report
		wg  sync.WaitGroup
	)
	jobs := make(chan catalog.Handle)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range jobs {
				answered := h.Question.Answered()
				scaffolded, multiPart := Process(h.Question, h.Subject)

				mu.Lock()
				rep.Processed++
				if answered {
					rep.SkippedAnswered++
				}
				if scaffolded {
					rep.Scaffolded++
				}
				if multiPart {
					rep.MultiPart++
				}
				mu.Unlock()
			}
		}()
	}

	for _, h := range c.Walk() {
		jobs <- h
	}
	close(jobs)
	wg.Wait()
	return rep
}
