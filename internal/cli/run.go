package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/acunit/internal/config"
	"github.com/roach88/acunit/internal/examples"
	"github.com/roach88/acunit/internal/harness"
	"github.com/roach88/acunit/internal/report"
	"github.com/roach88/acunit/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Filter  string // test filter (glob pattern)
	History string // history database to record the run in
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run test suites",
		Long: `Run built-in test suites and print a report.

Without arguments the default suites run (see 'acunit list'). Suites named
on the command line replace the ones in the config file.

Exit codes:
  0 - No assertion failed
  1 - One or more assertions failed
  2 - Command error (unknown suite, invalid config, history database, etc.)

Examples:
  acunit run
  acunit run simple_asserts failing
  acunit run --filter "test_*message*"
  acunit run --format json --history runs.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "run only tests whose name matches the glob pattern")
	cmd.Flags().StringVar(&opts.History, "history", "", "record the run in this history database")

	return cmd
}

func runSuites(opts *RunOptions, args []string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("filter") {
		cfg.Filter = opts.Filter
	}
	if cmd.Flags().Changed("history") {
		cfg.History.Enabled = true
		cfg.History.Path = opts.History
	}
	if len(args) > 0 {
		cfg.Suites = args
	}

	suites, err := resolveSuites(cfg.Suites)
	if err != nil {
		return err
	}

	rep, err := newReporter(cfg, cmd)
	if err != nil {
		return err
	}

	runnerOpts := []harness.Option{
		harness.WithFilter(cfg.Filter),
		harness.WithIDGenerator(opts.ids),
	}
	if logger := newLogger(cfg, cmd); logger != nil {
		runnerOpts = append(runnerOpts, harness.WithLogger(logger))
	}

	result, err := harness.NewRunner(rep, runnerOpts...).Run(suites...)
	if err != nil {
		return WrapExitError(ExitCommandError, "run not started", err)
	}
	if j, ok := rep.(*report.JSON); ok && j.Err() != nil {
		return WrapExitError(ExitCommandError, "failed to write report", j.Err())
	}

	if cfg.History.Enabled {
		if err := recordRun(cfg.History.Path, result, cmd); err != nil {
			return err
		}
	}

	if !result.Pass() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d assertion(s) failed", result.Summary.Failed))
	}
	return nil
}

// resolveSuites maps suite names to built-in suites. No names selects the
// defaults.
func resolveSuites(names []string) ([]*harness.Suite, error) {
	if len(names) == 0 {
		return examples.Defaults(), nil
	}

	suites := make([]*harness.Suite, 0, len(names))
	for _, name := range names {
		s, ok := examples.Lookup(name)
		if !ok {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown suite %q (see 'acunit list')", name))
		}
		suites = append(suites, s)
	}
	return suites, nil
}

func newReporter(cfg config.Config, cmd *cobra.Command) (report.Reporter, error) {
	w := cmd.OutOrStdout()
	if cfg.Format == "json" {
		return report.NewJSON(w), nil
	}

	mode, err := report.ParseColorMode(cfg.Color)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid color", err)
	}
	return report.NewText(w, mode), nil
}

func recordRun(path string, result *harness.Result, cmd *cobra.Command) error {
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history", err)
	}
	defer st.Close()

	if err := st.WriteRun(cmd.Context(), result); err != nil {
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Recorded run %s in %s\n", result.RunID, path)
	return nil
}
