/*
timecard.go - Per-employee PDF timecard renderer

PURPOSE:
  Renders one weekly timecard per employee present in a roster.Result:
  hours worked by day, total, and an overtime flag. A pure structural
  view over the result, same as workbook.go.

SEE ALSO:
  - roster/result.go: EmployeeSummary and Shift, the records read here
*/
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/rosterforge/engine/roster"
)

// WriteTimecards renders one PDF per employee into dir, named
// "<employeeID>.pdf".
func WriteTimecards(result roster.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: creating timecard dir %s: %w", dir, err)
	}

	byEmployee := make(map[string][]roster.Shift)
	for _, s := range result.Data.Shifts {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	summaries := make(map[string]roster.EmployeeSummary, len(result.Data.EmployeeSummaries))
	for _, s := range result.Data.EmployeeSummaries {
		summaries[s.EmployeeID] = s
	}

	for empID, shifts := range byEmployee {
		if err := writeTimecard(dir, empID, shifts, summaries[empID], result); err != nil {
			return err
		}
	}
	return nil
}

func writeTimecard(dir, employeeID string, shifts []roster.Shift, summary roster.EmployeeSummary, result roster.Result) error {
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].Date.Before(shifts[j].Date) })

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Timecard: %s", employeeID), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Week: %s to %s", result.WeekStart, result.WeekEnd), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Shift", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Hours", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Overtime", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, s := range shifts {
		overtime := ""
		if s.Overtime {
			overtime = "yes"
		}
		pdf.CellFormat(40, 8, s.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%s-%s (%s)", s.Start, s.End, s.Class), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, s.Hours.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, overtime, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s (weekday %s, Sunday %s)", summary.TotalHours, summary.WeekdayHours, summary.SundayHours), "", 1, "L", false, 0, "")

	path := filepath.Join(dir, employeeID+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: writing timecard %s: %w", path, err)
	}
	return nil
}
