/*
main.go - roster CLI entry point

PURPOSE:
  A roster command with three subcommands (solve, validate, export).
  Each is a one-shot batch invocation: load a file, call the solver
  once, write a file, exit — no listener, no session state.

SEE ALSO:
  - solve.go, validate.go, export.go: the three subcommands
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	root := &cobra.Command{
		Use:   "roster",
		Short: "Weekly staff roster solver",
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newExportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
