package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/acunit/internal/harness"
)

// WriteRun appends a finished run to the history in one transaction.
// A run ID that is already recorded is an error.
func (s *Store) WriteRun(ctx context.Context, r *harness.Result) error {
	suitesJSON, err := json.Marshal(r.Suites)
	if err != nil {
		return fmt.Errorf("write run: marshal suites: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, suites, failed, executed)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM runs), ?, ?, ?)
	`,
		r.RunID,
		string(suitesJSON),
		r.Summary.Failed,
		r.Summary.Executed,
	)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("write run: run %s already recorded: %w", r.RunID, err)
		}
		return fmt.Errorf("write run: %w", err)
	}

	for _, t := range r.Tests {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO test_results (run_id, seq, suite, name, status)
			VALUES (?, ?, ?, ?, ?)
		`, r.RunID, t.Seq, t.Suite, t.Name, string(t.Status))
		if err != nil {
			return fmt.Errorf("write run: test %s: %w", t.Name, err)
		}

		for i, d := range t.Failures {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO failures (run_id, test_seq, idx, file, line, condition, message)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, r.RunID, t.Seq, i, d.File, d.Line, d.Condition, d.Message)
			if err != nil {
				return fmt.Errorf("write run: test %s failure %d: %w", t.Name, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
