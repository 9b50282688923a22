// Package refine replaces rule-generated hints with question-specific ones
// produced by an LLM. Questions are sent in batches and progress is
// checkpointed per question, so an interrupted run resumes without
// re-spending API calls.
package refine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/llm"
	"github.com/edlight/skafo/internal/store"
)

// DefaultBatchSize is the number of questions per API call.
const DefaultBatchSize = 10

const (
	minHints = 2
	maxHints = 3
)

const systemPrompt = `You are an expert tutor creating progressive hints for Haitian baccalauréat exam questions.

For each question, generate exactly 2 or 3 SHORT progressive hints that:
1. Guide the student's thinking WITHOUT revealing the answer
2. Are SPECIFIC to THIS particular question (reference the actual content)
3. Progress from a general nudge to a more specific clue to a near-giveaway

RULES:
- Each hint must be 1 sentence, max 20 words
- Hint 1 points toward the right topic, concept, era or formula
- Hint 2 gives a more specific clue (a key detail, date range, related concept)
- Hint 3 (optional, for hard questions) almost reveals the answer without stating it
- For MCQ with options, help eliminate wrong choices without naming the correct one
- NEVER repeat the question text back
- NEVER use generic advice like "read carefully"
- Write hints in the SAME LANGUAGE as the question (French, English, Spanish, or Kreyòl)
- Use $...$ for any math in hints

Return a JSON array where each element corresponds to a question (same order).
Each element is an array of 2-3 hint strings.`

// hintsSchema constrains the response to an array of per-question hint lists.
var hintsSchema = &llm.Schema{
	Name:        "refined-hints",
	Description: "Per-question progressive hint lists, in question order.",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": minHints,
			"maxItems": maxHints,
		},
	},
}

// Options configures a refinement run.
type Options struct {
	// BatchSize is the number of questions per API call.
	// Zero means DefaultBatchSize.
	BatchSize int

	// Resume skips questions already present in the checkpoint store.
	Resume bool

	// Limit caps how many pending questions are sent. Zero means all.
	Limit int
}

// Report carries the counters of one refinement run.
type Report struct {
	Refined     int
	Failed      int
	SkippedDone int
	Batches     int
}

// Refiner drives the batched LLM hint refinement.
type Refiner struct {
	provider    llm.Provider
	checkpoints store.CheckpointRepo
}

// New creates a Refiner.
func New(provider llm.Provider, checkpoints store.CheckpointRepo) *Refiner {
	return &Refiner{provider: provider, checkpoints: checkpoints}
}

// Run refines hints for every pending question in the catalog, mutating
// questions in place. Batch failures are counted, not fatal; checkpoint
// write failures abort since resuming would re-spend calls.
func (r *Refiner) Run(ctx context.Context, c catalog.Catalog, opts Options) (Report, error) {
	var rep Report

	pending, skipped, err := r.pending(ctx, c, opts)
	if err != nil {
		return rep, err
	}
	rep.SkippedDone = skipped

	for start := 0; start < len(pending); start += batchSize(opts) {
		end := min(start+batchSize(opts), len(pending))
		batch := pending[start:end]
		rep.Batches++

		lists, err := r.generate(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				return rep, ctx.Err()
			}
			rep.Failed += len(batch)
			continue
		}

		// A short response still carries usable prefixes. Apply what we got.
		for i, h := range batch {
			if i >= len(lists) || len(lists[i]) < minHints {
				rep.Failed++
				continue
			}
			hints := lists[i]
			if len(hints) > maxHints {
				hints = hints[:maxHints]
			}
			h.Question.Hints = hints
			if err := r.checkpoints.MarkDone(ctx, h.Key(), hints); err != nil {
				return rep, fmt.Errorf("checkpoint %s: %w", h.Key(), err)
			}
			rep.Refined++
		}
	}

	return rep, nil
}

// pending returns the handles still needing refinement, applying Resume and
// Limit. Resumed questions get their checkpointed hints re-applied so the
// catalog stays consistent with the checkpoint store.
func (r *Refiner) pending(ctx context.Context, c catalog.Catalog, opts Options) ([]catalog.Handle, int, error) {
	handles := c.Walk()

	done := map[string]bool{}
	if opts.Resume {
		var err error
		done, err = r.checkpoints.Done(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("load checkpoints: %w", err)
		}
	}

	var pending []catalog.Handle
	skipped := 0
	for _, h := range handles {
		if done[h.Key()] {
			skipped++
			if hints, err := r.checkpoints.Hints(ctx, h.Key()); err == nil && len(hints) >= minHints {
				h.Question.Hints = hints
			}
			continue
		}
		pending = append(pending, h)
	}

	if opts.Limit > 0 && len(pending) > opts.Limit {
		pending = pending[:opts.Limit]
	}
	return pending, skipped, nil
}

func (r *Refiner) generate(ctx context.Context, batch []catalog.Handle) ([][]string, error) {
	resp, err := r.provider.Generate(llm.WithPurpose(ctx, "refine-hints"), llm.Request{
		System:      systemPrompt,
		Prompt:      Prompt(batch),
		Schema:      hintsSchema,
		MaxTokens:   4096,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	var lists [][]string
	if err := json.Unmarshal(resp.Content, &lists); err != nil {
		return nil, fmt.Errorf("decode hint lists: %w", err)
	}
	return lists, nil
}

// Prompt renders the question blocks for one batch. Exposed so a dry run
// can show exactly what would be sent.
func Prompt(batch []catalog.Handle) string {
	blocks := make([]string, 0, len(batch))
	for i, h := range batch {
		blocks = append(blocks, questionBlock(h, i))
	}
	return strings.Join(blocks, "\n\n")
}

// questionBlock formats one question, including answer material when known
// so hints can be crafted to guide toward it.
func questionBlock(h catalog.Handle, idx int) string {
	q := h.Question
	var b strings.Builder
	fmt.Fprintf(&b, "Q%d:\n", idx+1)
	fmt.Fprintf(&b, "  Subject: %s\n", h.Subject)
	fmt.Fprintf(&b, "  Type: %s\n", q.Type)
	fmt.Fprintf(&b, "  Question: %s\n", truncate(q.Text, 500))

	switch {
	case q.Correct != "":
		fmt.Fprintf(&b, "  Correct answer: %s\n", truncate(q.Correct, 200))
	case q.ModelAnswer != "":
		fmt.Fprintf(&b, "  Answer: %s\n", truncate(q.ModelAnswer, 200))
	case len(q.AnswerParts) > 0:
		labels := make([]string, 0, len(q.AnswerParts))
		for _, p := range q.AnswerParts[:min(len(q.AnswerParts), 5)] {
			labels = append(labels, p.Label+": "+p.Answer)
		}
		fmt.Fprintf(&b, "  Answer parts: %s\n", strings.Join(labels, "; "))
	}

	if len(q.Options) > 0 {
		opts := make([]string, 0, len(q.Options))
		for _, k := range sortedKeys(q.Options) {
			opts = append(opts, q.Options[k])
			if len(opts) == 6 {
				break
			}
		}
		fmt.Fprintf(&b, "  Options: %s\n", strings.Join(opts, " | "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func batchSize(opts Options) int {
	if opts.BatchSize > 0 {
		return opts.BatchSize
	}
	return DefaultBatchSize
}
