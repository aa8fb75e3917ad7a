package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/curvelab/lsys/internal/preset"
)

// ErrNotFound is returned when no curve with the requested name exists.
var ErrNotFound = errors.New("curve not found")

// Record is a catalog row: the definition plus its catalog metadata.
type Record struct {
	ID         string
	CreatedAt  string
	Definition preset.Definition
}

// GetCurve returns the definition stored under name.
// Returns ErrNotFound (wrapped) if the name is absent.
func (s *Store) GetCurve(ctx context.Context, name string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, axiom, repeat, rules, iterations, skipped, turtle, created_at
		FROM curves
		WHERE name = ?
	`, name)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get curve: %w", err)
	}
	return rec, nil
}

// ListCurves returns all stored definitions ordered by name.
// Returns an empty slice (not nil) when the catalog is empty.
func (s *Store) ListCurves(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, axiom, repeat, rules, iterations, skipped, turtle, created_at
		FROM curves
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list curves: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list curves: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list curves: %w", err)
	}
	return records, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord decodes one catalog row.
func scanRecord(row scanner) (Record, error) {
	var (
		rec        Record
		rulesText  string
		turtleYAML string
	)
	err := row.Scan(
		&rec.ID,
		&rec.Definition.Name,
		&rec.Definition.Axiom,
		&rec.Definition.Repeat,
		&rulesText,
		&rec.Definition.Iterations,
		&rec.Definition.Skipped,
		&turtleYAML,
		&rec.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	if rulesText != "" {
		rules, err := preset.ParseRules(rulesText)
		if err != nil {
			return Record{}, fmt.Errorf("decode rules: %w", err)
		}
		rec.Definition.Rules = rules
	}
	if turtleYAML != "" {
		if err := yaml.Unmarshal([]byte(turtleYAML), &rec.Definition.Turtle); err != nil {
			return Record{}, fmt.Errorf("decode turtle params: %w", err)
		}
	}
	return rec, nil
}
