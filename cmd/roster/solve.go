/*
solve.go - "roster solve" subcommand

PURPOSE:
  Loads an input snapshot and a policy config, runs the solver once,
  and writes the result as JSON to stdout or --out.
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rosterforge/engine/config"
	"github.com/rosterforge/engine/roster"
)

func newSolveCmd() *cobra.Command {
	var inputPath, configPath, outPath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the solver against an input snapshot and write the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runSolve(cmd.Context(), inputPath, configPath)
			if err != nil {
				return err
			}
			return writeResultJSON(result, outPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to the input snapshot (YAML)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to the policy config (YAML, optional)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path for the result JSON (default: stdout)")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runSolve(ctx context.Context, inputPath, configPath string) (roster.Result, error) {
	in, err := config.LoadInput(inputPath)
	if err != nil {
		return roster.Result{}, err
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return roster.Result{}, err
	}
	return roster.Solve(ctx, in, cfg)
}

func writeResultJSON(result roster.Result, outPath string) error {
	buf, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("solve: encoding result: %w", err)
	}
	if outPath == "" {
		_, err := os.Stdout.Write(append(buf, '\n'))
		return err
	}
	return os.WriteFile(outPath, append(buf, '\n'), 0o644)
}
