/*
workbook.go - Weekly roster spreadsheet renderer

PURPOSE:
  Renders a roster.Result as a printable workbook: one sheet per shop,
  employees down the rows, days across the columns, shift times in
  each cell. This is a pure, deterministic view over an already-opaque
  result — it never feeds back into solving and never mutates its
  input.

SEE ALSO:
  - roster/result.go: the record this reads
  - cmd/roster/export.go: the CLI command that calls WriteWorkbook
*/
package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/rosterforge/engine/roster"
)

// WriteWorkbook renders result as a multi-sheet workbook and saves it
// to path. One sheet is created per shop that has at least one shift.
func WriteWorkbook(result roster.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	byShop := groupByShop(result.Data.Shifts)
	shopIDs := sortedKeys(byShop)

	if len(shopIDs) == 0 {
		return f.SaveAs(path)
	}

	for i, shopID := range shopIDs {
		sheet := sheetName(shopID)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("export: creating sheet for shop %s: %w", shopID, err)
			}
		}
		if err := writeShopSheet(f, sheet, byShop[shopID]); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: saving workbook to %s: %w", path, err)
	}
	return nil
}

func writeShopSheet(f *excelize.File, sheet string, shifts []roster.Shift) error {
	f.SetCellValue(sheet, "A1", "Employee")

	byEmployeeDay := make(map[string]map[roster.Date][]roster.Shift)
	days := make(map[roster.Date]bool)
	for _, s := range shifts {
		if byEmployeeDay[s.EmployeeID] == nil {
			byEmployeeDay[s.EmployeeID] = make(map[roster.Date][]roster.Shift)
		}
		byEmployeeDay[s.EmployeeID][s.Date] = append(byEmployeeDay[s.EmployeeID][s.Date], s)
		days[s.Date] = true
	}

	orderedDays := sortedDates(days)
	for col, d := range orderedDays {
		cell, _ := excelize.CoordinatesToCellName(col+2, 1)
		f.SetCellValue(sheet, cell, d.String())
	}

	employeeIDs := sortedEmployeeIDs(byEmployeeDay)
	for row, empID := range employeeIDs {
		r := row + 2
		nameCell, _ := excelize.CoordinatesToCellName(1, r)
		f.SetCellValue(sheet, nameCell, empID)

		for col, d := range orderedDays {
			cell, _ := excelize.CoordinatesToCellName(col+2, r)
			entries := byEmployeeDay[empID][d]
			if len(entries) == 0 {
				continue
			}
			f.SetCellValue(sheet, cell, formatShiftsInCell(entries))
		}
	}

	return nil
}

func formatShiftsInCell(shifts []roster.Shift) string {
	out := ""
	for i, s := range shifts {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s-%s (%s)", s.Start, s.End, s.Class)
	}
	return out
}

func groupByShop(shifts []roster.Shift) map[string][]roster.Shift {
	out := make(map[string][]roster.Shift)
	for _, s := range shifts {
		out[s.ShopID] = append(out[s.ShopID], s)
	}
	return out
}

func sortedKeys(m map[string][]roster.Shift) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEmployeeIDs(m map[string]map[roster.Date][]roster.Shift) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDates(m map[roster.Date]bool) []roster.Date {
	out := make([]roster.Date, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// sheetName truncates a shop ID to Excel's 31-character sheet-name limit.
func sheetName(shopID string) string {
	if len(shopID) > 31 {
		return shopID[:31]
	}
	return shopID
}
