package main

import (
	"fmt"
	"io"
	"os"

	"github.com/roach88/acunit/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status. A failing run has
// already said so in its summary, so only command errors are printed.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	code := cli.GetExitCode(err)
	if err != nil && code != cli.ExitFailure {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return code
}
