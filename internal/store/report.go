package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunReport is one persisted engine pass over a catalog.
type RunReport struct {
	ID              string
	CatalogPath     string
	Processed       int
	Scaffolded      int
	MultiPart       int
	SkippedAnswered int
	CreatedAt       time.Time
}

// ReportRepo records the counters of each engine pass.
type ReportRepo interface {
	// Save stores a report and returns its generated id.
	Save(ctx context.Context, rep *RunReport) (string, error)

	// Recent returns the latest reports, newest first.
	Recent(ctx context.Context, limit int) ([]RunReport, error)
}

type reportRepo struct {
	db *sql.DB
}

func (r *reportRepo) Save(ctx context.Context, rep *RunReport) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO run_reports
		 (id, catalog_path, processed, scaffolded, multi_part, skipped_answered)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, rep.CatalogPath, rep.Processed, rep.Scaffolded, rep.MultiPart, rep.SkippedAnswered)
	if err != nil {
		return "", fmt.Errorf("save run report: %w", err)
	}
	return id, nil
}

func (r *reportRepo) Recent(ctx context.Context, limit int) ([]RunReport, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, catalog_path, processed, scaffolded, multi_part, skipped_answered, created_at
		 FROM run_reports ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query run reports: %w", err)
	}
	defer rows.Close()

	var out []RunReport
	for rows.Next() {
		var rep RunReport
		if err := rows.Scan(&rep.ID, &rep.CatalogPath, &rep.Processed, &rep.Scaffolded,
			&rep.MultiPart, &rep.SkippedAnswered, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run report: %w", err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
