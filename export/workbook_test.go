package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rosterforge/engine/roster"
)

func sampleResult() roster.Result {
	monday := roster.NewDate(2026, 1, 5)
	tuesday := roster.NewDate(2026, 1, 6)
	return roster.Result{
		WeekStart: monday,
		WeekEnd:   roster.NewDate(2026, 1, 11),
		Data: roster.ResultData{
			Shifts: []roster.Shift{
				{
					ShopID: "s1", EmployeeID: "f1", Date: monday,
					Start: roster.NewClockTime(6, 30), End: roster.NewClockTime(21, 30),
					Hours: roster.HoursOf(15), Class: roster.ClassFullDay,
				},
				{
					ShopID: "s1", EmployeeID: "f2", Date: tuesday,
					Start: roster.NewClockTime(6, 30), End: roster.NewClockTime(14, 0),
					Hours: roster.HoursOf(7.5), Class: roster.ClassMorning,
				},
			},
		},
	}
}

func TestWriteWorkbookCreatesOneSheetPerShop(t *testing.T) {
	result := sampleResult()
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	require.NoError(t, WriteWorkbook(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	names := f.GetSheetList()
	require.Len(t, names, 1)
	assert.Equal(t, "s1", names[0])

	header, err := f.GetCellValue("s1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	row1, err := f.GetCellValue("s1", "A2")
	require.NoError(t, err)
	row2, err := f.GetCellValue("s1", "A3")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f1", "f2"}, []string{row1, row2})
}

func TestWriteWorkbookEmptyResultStillSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(roster.Result{}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 1) // excelize always keeps the default sheet
}

func TestSheetNameTruncatesTo31Chars(t *testing.T) {
	long := "this-shop-id-is-way-too-long-for-excel"
	assert.Len(t, sheetName(long), 31)
	assert.Equal(t, "short", sheetName("short"))
}
