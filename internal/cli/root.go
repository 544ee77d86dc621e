package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/acunit/internal/config"
	"github.com/roach88/acunit/internal/harness"
	"github.com/roach88/acunit/internal/report"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Color   string // "auto" | "always" | "never"
	Config  string // path to a .yaml, .yml or .cue file

	ids harness.IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the acunit CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(harness.UUIDv7Generator{})
}

func newRootCommand(ids harness.IDGenerator) *cobra.Command {
	opts := &RootOptions{ids: ids}

	cmd := &cobra.Command{
		Use:   "acunit",
		Short: "acunit - a minimal test harness",
		Long: `A minimal test harness with early-return assertions.

Each test stops at its first failing assertion, failures inside guarded
helpers unwind exactly one test, and the run ends with a summary line and
an exit status.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := report.ParseColorMode(opts.Color); err != nil {
				return WrapExitError(ExitCommandError, "invalid --color", err)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log run progress to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "auto", "color PASSED/FAILED in text output (auto|always|never)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "configuration file (.yaml, .yml or .cue)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// loadConfig resolves the configuration of a command: defaults, then the
// config file, then flags given on the command line.
func loadConfig(opts *RootOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return cfg, WrapExitError(ExitCommandError, "invalid config", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("color") {
		cfg.Color = opts.Color
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	return cfg, nil
}

// newLogger returns a debug logger on stderr when verbose, else nil.
func newLogger(cfg config.Config, cmd *cobra.Command) *slog.Logger {
	if !cfg.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
