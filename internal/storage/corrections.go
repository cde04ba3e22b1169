package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

// SaveCorrection persists one correction sample. The style, when present, is
// stored as JSON.
func (s *SQLiteStorage) SaveCorrection(ctx context.Context, correction model.Correction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(string(correction.Original), "original"); err != nil {
		return err
	}
	if err := validateString(string(correction.Corrected), "corrected"); err != nil {
		return err
	}

	var style sql.NullString
	if correction.Style != nil {
		encoded, err := json.Marshal(correction.Style)
		if err != nil {
			return fmt.Errorf("failed to encode style: %w", err)
		}
		style = sql.NullString{String: string(encoded), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO corrections (original_type, corrected_type, text, style) VALUES (?, ?, ?, ?)`,
		string(correction.Original), string(correction.Corrected), correction.Text, style)
	if err != nil {
		return fmt.Errorf("failed to save correction: %w", err)
	}
	return nil
}

// ListCorrections returns every stored correction, oldest first.
func (s *SQLiteStorage) ListCorrections(ctx context.Context) ([]model.Correction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT original_type, corrected_type, text, style FROM corrections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query corrections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var corrections []model.Correction
	for rows.Next() {
		var c model.Correction
		var original, corrected string
		var style sql.NullString
		if err := rows.Scan(&original, &corrected, &c.Text, &style); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		c.Original = model.ObjectType(original)
		c.Corrected = model.ObjectType(corrected)
		if style.Valid {
			var decoded model.TextStyle
			if err := json.Unmarshal([]byte(style.String), &decoded); err != nil {
				return nil, fmt.Errorf("failed to decode style: %w", err)
			}
			c.Style = &decoded
		}
		corrections = append(corrections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate corrections: %w", err)
	}
	return corrections, nil
}

// CorrectionCounts returns how often each original type was corrected,
// keyed by original type.
func (s *SQLiteStorage) CorrectionCounts(ctx context.Context) (map[model.ObjectType]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT original_type, COUNT(*) FROM corrections GROUP BY original_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to query correction counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.ObjectType]int)
	for rows.Next() {
		var original string
		var count int
		if err := rows.Scan(&original, &count); err != nil {
			return nil, fmt.Errorf("failed to scan correction count: %w", err)
		}
		counts[model.ObjectType(original)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate correction counts: %w", err)
	}
	return counts, nil
}
