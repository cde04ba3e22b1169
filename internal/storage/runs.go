package storage

import (
	"context"
	"fmt"
	"time"
)

// Run is one recorded conversion: where the fragments came from and what the
// pipeline produced.
type Run struct {
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	ID        int64     `json:"id"`
	Fragments int       `json:"fragments"`
	Objects   int       `json:"objects"`
	Cards     int       `json:"cards"`
	Pledges   int       `json:"pledges"`
}

// SaveRun records one conversion run.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run Run) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(run.Source, "source"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (source, fragments, objects, cards, pledges) VALUES (?, ?, ?, ?, ?)`,
		run.Source, run.Fragments, run.Objects, run.Cards, run.Pledges)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first, capped at limit.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, fragments, objects, cards, pledges, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Source, &run.Fragments, &run.Objects,
			&run.Cards, &run.Pledges, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
