package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterforge/engine/roster"
)

func TestWriteTimecardsOnePerEmployee(t *testing.T) {
	result := sampleResult()
	result.Data.EmployeeSummaries = []roster.EmployeeSummary{
		{EmployeeID: "f1", TotalHours: roster.HoursOf(15), WeekdayHours: roster.HoursOf(15)},
		{EmployeeID: "f2", TotalHours: roster.HoursOf(7.5), WeekdayHours: roster.HoursOf(7.5)},
	}

	dir := filepath.Join(t.TempDir(), "timecards")
	require.NoError(t, WriteTimecards(result, dir))

	for _, empID := range []string{"f1", "f2"} {
		info, err := os.Stat(filepath.Join(dir, empID+".pdf"))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestWriteTimecardsNoShiftsProducesNoFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "timecards")
	require.NoError(t, WriteTimecards(roster.Result{}, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
