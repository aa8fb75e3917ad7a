package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/curvelab/lsys/internal/preset"
)

// SaveCurve inserts or replaces a curve definition, keyed by name.
// Saving an existing name keeps the original id and creation time and
// replaces everything else. Returns the record id.
func (s *Store) SaveCurve(ctx context.Context, def preset.Definition) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("save curve: %w", err)
	}

	turtleYAML, err := yaml.Marshal(def.Turtle)
	if err != nil {
		return "", fmt.Errorf("save curve: marshal turtle params: %w", err)
	}

	repeat := def.Repeat
	if repeat < 1 {
		repeat = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO curves (id, name, axiom, repeat, rules, iterations, skipped, turtle)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			axiom = excluded.axiom,
			repeat = excluded.repeat,
			rules = excluded.rules,
			iterations = excluded.iterations,
			skipped = excluded.skipped,
			turtle = excluded.turtle
	`,
		id.String(),
		def.Name,
		def.Axiom,
		repeat,
		preset.FormatRules(def.Rules),
		def.Iterations,
		def.Skipped,
		string(turtleYAML),
	)
	if err != nil {
		return "", fmt.Errorf("save curve: %w", err)
	}

	// On conflict the stored id is the original one, not the fresh v7.
	var storedID string
	err = s.db.QueryRowContext(ctx, `SELECT id FROM curves WHERE name = ?`, def.Name).Scan(&storedID)
	if err != nil {
		return "", fmt.Errorf("save curve: %w", err)
	}
	return storedID, nil
}

// DeleteCurve removes a definition by name.
// Returns false if no definition with that name existed.
func (s *Store) DeleteCurve(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM curves WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete curve: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete curve: %w", err)
	}
	return n > 0, nil
}
