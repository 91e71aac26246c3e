// Package history records encode/decode operations for the dashboard.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/lexicode/internal/db"
)

// Store is the DB-backed operation history.
type Store struct {
	database *db.DB
}

// New creates a Store.
func New(database *db.DB) *Store {
	return &Store{database: database}
}

// Record inserts one operation row. Failures are logged by callers; the
// operation result itself is never affected by a failed insert.
func (s *Store) Record(ctx context.Context, op *db.Operation) error {
	_, err := s.database.ExecContext(ctx, `
		INSERT INTO history (op, source, input_chars, output_chars, ok, error, duration_us)
		VALUES (?,?,?,?,?,?,?)`,
		op.Op, op.Source, op.InputChars, op.OutputChars, op.OK, op.Error, op.DurationUS,
	)
	if err != nil {
		return fmt.Errorf("history.Record: %w", err)
	}
	return nil
}

// List returns operations newest first. page is 1-based.
func (s *Store) List(ctx context.Context, page, limit int) ([]db.Operation, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	rows, err := s.database.QueryContext(ctx, `
		SELECT id, op, source, input_chars, output_chars, ok, error, duration_us, created_at
		FROM history ORDER BY id DESC LIMIT ? OFFSET ?`,
		limit, (page-1)*limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	defer rows.Close()

	ops := []db.Operation{}
	for rows.Next() {
		var op db.Operation
		if err := rows.Scan(&op.ID, &op.Op, &op.Source, &op.InputChars, &op.OutputChars,
			&op.OK, &op.Error, &op.DurationUS, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("history.List: scan: %w", err)
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// Count returns the total number of recorded operations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.database.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history.Count: %w", err)
	}
	return n, nil
}

// Prune deletes operations older than the cutoff and returns how many went.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	// created_at is stored by SQLite in UTC; compare in UTC.
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := s.database.ExecContext(ctx,
		`DELETE FROM history WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history.Prune: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Clear deletes all history rows.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.database.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}
	return nil
}
