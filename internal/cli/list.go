package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/acunit/internal/examples"
)

// SuiteInfo describes a built-in suite.
type SuiteInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Default     bool     `json:"default"`
	Tests       []string `json:"tests"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in suites and their tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSuites(rootOpts, cmd)
		},
	}
}

func listSuites(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts, cmd)
	if err != nil {
		return err
	}

	var defaults []string
	for _, s := range examples.Defaults() {
		defaults = append(defaults, s.Name)
	}

	infos := []SuiteInfo{}
	for _, s := range examples.Suites() {
		info := SuiteInfo{
			Name:        s.Name,
			Description: s.Description,
			Default:     slices.Contains(defaults, s.Name),
			Tests:       []string{},
		}
		for _, t := range s.Tests {
			info.Tests = append(info.Tests, t.Name)
		}
		infos = append(infos, info)
	}

	w := cmd.OutOrStdout()
	if cfg.Format == "json" {
		return writeJSON(w, infos)
	}

	for _, info := range infos {
		marker := ""
		if info.Default {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s%s: %s\n", info.Name, marker, info.Description)
		for _, t := range info.Tests {
			fmt.Fprintf(w, "  %s\n", t)
		}
	}
	return nil
}
