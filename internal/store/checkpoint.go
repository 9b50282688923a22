package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// CheckpointRepo tracks which questions a refinement pass has already
// handled, so an interrupted run can resume without re-spending LLM calls.
// Keys are the "exam-section-question" identifiers from catalog.Handle.
type CheckpointRepo interface {
	// MarkDone records a question as refined, with the hints produced.
	MarkDone(ctx context.Context, key string, hints []string) error

	// Done returns the set of refined question keys.
	Done(ctx context.Context) (map[string]bool, error)

	// Hints returns the stored hints for a key, or nil if absent.
	Hints(ctx context.Context, key string) ([]string, error)

	// Clear removes every checkpoint, forcing the next run to start over.
	Clear(ctx context.Context) error
}

type checkpointRepo struct {
	db *sql.DB
}

func (r *checkpointRepo) MarkDone(ctx context.Context, key string, hints []string) error {
	data, err := json.Marshal(hints)
	if err != nil {
		return fmt.Errorf("encode hints: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO refine_checkpoints (question_key, hints_json) VALUES (?, ?)
		 ON CONFLICT(question_key) DO UPDATE SET hints_json = excluded.hints_json`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("save checkpoint %s: %w", key, err)
	}
	return nil
}

func (r *checkpointRepo) Done(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT question_key FROM refine_checkpoints`)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		done[key] = true
	}
	return done, rows.Err()
}

func (r *checkpointRepo) Hints(ctx context.Context, key string) ([]string, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT hints_json FROM refine_checkpoints WHERE question_key = ?`, key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query checkpoint %s: %w", key, err)
	}

	var hints []string
	if err := json.Unmarshal([]byte(data), &hints); err != nil {
		return nil, fmt.Errorf("decode checkpoint %s: %w", key, err)
	}
	return hints, nil
}

func (r *checkpointRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM refine_checkpoints`); err != nil {
		return fmt.Errorf("clear checkpoints: %w", err)
	}
	return nil
}
