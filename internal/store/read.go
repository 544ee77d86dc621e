package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/acunit/internal/acunit"
	"github.com/roach88/acunit/internal/harness"
)

// RunSummary is one line of the run history.
type RunSummary struct {
	Seq     int64          `json:"seq"`
	ID      string         `json:"id"`
	Suites  []string       `json:"suites"`
	Summary acunit.Summary `json:"summary"`
	Skipped int            `json:"skipped"`
}

// ListRuns returns the most recent runs, newest first. A limit of zero or
// less returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.seq, r.id, r.suites, r.failed, r.executed,
		       (SELECT COUNT(*) FROM test_results t WHERE t.run_id = r.id AND t.status = 'SKIPPED')
		FROM runs r
		ORDER BY r.seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var (
			rs         RunSummary
			suitesJSON string
		)
		if err := rows.Scan(&rs.Seq, &rs.ID, &suitesJSON, &rs.Summary.Failed, &rs.Summary.Executed, &rs.Skipped); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(suitesJSON), &rs.Suites); err != nil {
			return nil, fmt.Errorf("list runs: run %s: decode suites: %w", rs.ID, err)
		}
		runs = append(runs, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// ReadRun reconstructs a recorded run. Returns ErrNotFound for an unknown ID.
func (s *Store) ReadRun(ctx context.Context, id string) (*harness.Result, error) {
	result := harness.NewResult(id)

	var suitesJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT suites, failed, executed FROM runs WHERE id = ?
	`, id).Scan(&suitesJSON, &result.Summary.Failed, &result.Summary.Executed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(suitesJSON), &result.Suites); err != nil {
		return nil, fmt.Errorf("read run %s: decode suites: %w", id, err)
	}

	tests, err := s.readTests(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Tests = tests
	return result, nil
}

// readTests loads the tests of a run with their failures, ordered by seq.
func (s *Store) readTests(ctx context.Context, runID string) ([]harness.TestResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.seq, t.suite, t.name, t.status,
		       f.file, f.line, f.condition, f.message
		FROM test_results t
		LEFT JOIN failures f ON f.run_id = t.run_id AND f.test_seq = t.seq
		WHERE t.run_id = ?
		ORDER BY t.seq ASC, f.idx ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read run %s: tests: %w", runID, err)
	}
	defer rows.Close()

	tests := []harness.TestResult{}
	for rows.Next() {
		var (
			t                        harness.TestResult
			status                   string
			file, condition, message sql.NullString
			line                     sql.NullInt64
		)
		if err := rows.Scan(&t.Seq, &t.Suite, &t.Name, &status, &file, &line, &condition, &message); err != nil {
			return nil, fmt.Errorf("read run %s: scan test: %w", runID, err)
		}
		t.Status = harness.Status(status)

		if n := len(tests); n > 0 && tests[n-1].Seq == t.Seq {
			// Another failure of the previous test
			tests[n-1].Failures = append(tests[n-1].Failures, diagnostic(file, line, condition, message))
			continue
		}
		if file.Valid {
			t.Failures = []acunit.Diagnostic{diagnostic(file, line, condition, message)}
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read run %s: tests: %w", runID, err)
	}
	return tests, nil
}

func diagnostic(file sql.NullString, line sql.NullInt64, condition, message sql.NullString) acunit.Diagnostic {
	return acunit.Diagnostic{
		Location:  acunit.Location{File: file.String, Line: int(line.Int64)},
		Condition: condition.String,
		Message:   message.String,
	}
}
