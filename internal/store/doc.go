// Package store keeps a history of test runs in SQLite.
//
// Each run is stored with its summary, every test result (skipped tests
// included), and the diagnostics of failed assertions:
//
//   - runs: one row per run, keyed by run ID, ordered by seq
//   - test_results: one row per test, ordered by seq within the run
//   - failures: one row per failed assertion
//
// Runs are append-only. Writing a run ID twice is an error.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks held by another acunit process
//   - foreign_keys=ON: Cascade deletes from runs
package store
