package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/acunit/internal/config"
	"github.com/roach88/acunit/internal/harness"
	"github.com/roach88/acunit/internal/report"
	"github.com/roach88/acunit/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	History string // history database
	Limit   int    // number of runs to list
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded runs",
		Long: `Show runs recorded with 'acunit run --history'.

Without a run ID the most recent runs are listed, newest first. With a run
ID the run's report is printed again.

Examples:
  acunit history --history runs.db
  acunit history 0192c9c4-8f3e-7a51-b7a2-3c6a2f1d9e10 --history runs.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.History, "history", "", "history database (default from config, else "+config.DefaultHistoryPath+")")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "number of runs to list (0 for all)")

	return cmd
}

func showHistory(opts *HistoryOptions, args []string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	path := cfg.History.Path
	if cmd.Flags().Changed("history") {
		path = opts.History
	}

	// Opening would create an empty database
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("history database not found: %s", path))
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history", err)
	}
	defer st.Close()

	w := cmd.OutOrStdout()

	if len(args) == 0 {
		runs, err := st.ListRuns(cmd.Context(), opts.Limit)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list runs", err)
		}
		if cfg.Format == "json" {
			return writeJSON(w, runs)
		}
		if len(runs) == 0 {
			fmt.Fprintln(w, "No runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(w, "%d  %s  %s  [%s]", r.Seq, r.ID, r.Summary, strings.Join(r.Suites, ", "))
			if r.Skipped > 0 {
				fmt.Fprintf(w, "  %d skipped", r.Skipped)
			}
			fmt.Fprintln(w)
		}
		return nil
	}

	result, err := st.ReadRun(cmd.Context(), args[0])
	if errors.Is(err, store.ErrNotFound) {
		return WrapExitError(ExitCommandError, "unknown run", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	if cfg.Format == "json" {
		return writeJSON(w, result)
	}

	mode, err := report.ParseColorMode(cfg.Color)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid color", err)
	}
	replayRun(report.NewText(w, mode), result, w)
	return nil
}

// replayRun prints a recorded run in the format of the live report. Tests
// excluded by a filter are listed as SKIPPED.
func replayRun(rep report.Reporter, result *harness.Result, w io.Writer) {
	fmt.Fprintf(w, "Run %s [%s]\n", result.RunID, strings.Join(result.Suites, ", "))
	for _, t := range result.Tests {
		if t.Status == harness.StatusSkipped {
			fmt.Fprintf(w, "%s: %s\n", harness.StatusSkipped, t.Name)
			continue
		}
		for _, d := range t.Failures {
			rep.Failure(d)
		}
		rep.TestFinished(t.Name, t.Status == harness.StatusPassed)
	}
	rep.Summary(result.Summary)
}
