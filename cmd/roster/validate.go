/*
validate.go - "roster validate" subcommand

PURPOSE:
  Runs the solver and prints only the validation report, exiting
  non-zero when validation.isValid is false, so it composes in a
  batch/CI context.
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var inputPath, configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the solver and print the validation report",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runSolve(cmd.Context(), inputPath, configPath)
			if err != nil {
				return err
			}

			v := result.Validation
			fmt.Printf("isValid: %v\n", v.IsValid)
			for _, e := range v.Errors {
				fmt.Printf("  error: %s\n", e)
			}
			for _, w := range v.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}

			if !v.IsValid {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to the input snapshot (YAML)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to the policy config (YAML, optional)")
	cmd.MarkFlagRequired("input")
	cmd.SilenceUsage = true

	return cmd
}

var errValidationFailed = fmt.Errorf("roster: validation failed")
