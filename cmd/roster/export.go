/*
export.go - "roster export" subcommand

PURPOSE:
  Renders a previously-produced result as a spreadsheet workbook and,
  per employee, a PDF timecard.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rosterforge/engine/export"
	"github.com/rosterforge/engine/roster"
)

func newExportCmd() *cobra.Command {
	var resultPath, workbookPath, timecardDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a result as a workbook and per-employee timecards",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadResultJSON(resultPath)
			if err != nil {
				return err
			}
			if workbookPath != "" {
				if err := export.WriteWorkbook(result, workbookPath); err != nil {
					return err
				}
			}
			if timecardDir != "" {
				if err := export.WriteTimecards(result, timecardDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resultPath, "result", "", "path to a result JSON produced by 'roster solve'")
	cmd.Flags().StringVar(&workbookPath, "workbook", "", "output path for the roster workbook (.xlsx)")
	cmd.Flags().StringVar(&timecardDir, "timecards", "", "output directory for per-employee timecards (.pdf)")
	cmd.MarkFlagRequired("result")

	return cmd
}

func loadResultJSON(path string) (roster.Result, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return roster.Result{}, fmt.Errorf("export: reading result %s: %w", path, err)
	}
	var result roster.Result
	if err := json.Unmarshal(buf, &result); err != nil {
		return roster.Result{}, fmt.Errorf("export: decoding result %s: %w", path, err)
	}
	return result, nil
}
