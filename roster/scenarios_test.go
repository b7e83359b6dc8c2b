package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterforge/engine/roster"
)

// =============================================================================
// SCENARIO TESTS - concrete end-to-end behaviors, one per documented scenario
// =============================================================================

func TestScenarioA_FullDayAbsorbsAMDemand(t *testing.T) {
	shop := createShop("s1", roster.CompanyA, roster.RoleSoloPaired,
		onlyMondayOpen(2, 1, roster.NewClockTime(6, 30), roster.NewClockTime(21, 30)))
	shop.PrimaryEmployees = []string{"f1"}

	emp := createEmployee("f1", roster.CompanyA, roster.FullTime)

	result, err := roster.Solve(context.Background(), baseInput([]roster.Shop{shop}, []roster.Employee{emp}), roster.DefaultConfig())
	require.NoError(t, err)

	shifts := result.Data.Shifts
	require.Len(t, shifts, 1)
	s := shifts[0]
	assert.Equal(t, roster.ClassFullDay, s.Class)
	assert.Equal(t, 15.0, s.Hours.Float64())
	assert.Equal(t, roster.NewClockTime(6, 30), s.Start)
	assert.Equal(t, roster.NewClockTime(21, 30), s.End)

	assertNoDoubleBooking(t, shifts)

	unfilled := unfilledSlotFor(result, "s1")
	require.NotNil(t, unfilled, "expected an unfilled slot at shop s1")
	assert.Equal(t, 1, unfilled.AM)
	assert.Equal(t, 0, unfilled.PM)
}

func TestScenarioB_FixedDayOffRespected(t *testing.T) {
	shop := createShop("s2", roster.CompanyA, roster.RoleTwoPerson,
		onlyMondayOpen(1, 1, roster.NewClockTime(8, 0), roster.NewClockTime(20, 0)))
	shop.PrimaryEmployees = []string{"x", "y"}

	x := createEmployee("x", roster.CompanyA, roster.FullTime)
	x.Constraints.OffDays = map[time.Weekday]bool{time.Monday: true}
	y := createEmployee("y", roster.CompanyA, roster.FullTime)

	result, err := roster.Solve(context.Background(), baseInput([]roster.Shop{shop}, []roster.Employee{x, y}), roster.DefaultConfig())
	require.NoError(t, err)

	var yShifts []roster.Shift
	for _, s := range result.Data.Shifts {
		assert.NotEqual(t, "x", s.EmployeeID, "employee x has a fixed Monday off")
		if s.EmployeeID == "y" {
			yShifts = append(yShifts, s)
		}
	}
	require.Len(t, yShifts, 1, "want y to carry Monday alone")
	assert.Equal(t, roster.ClassFullDay, yShifts[0].Class)

	assertNoDoubleBooking(t, result.Data.Shifts)
}

func TestScenarioC_SaturdaySpecialShifts(t *testing.T) {
	hours := map[time.Weekday]roster.DayHours{
		time.Saturday: {
			Open:   roster.NewClockTime(6, 0),
			Close:  roster.NewClockTime(22, 0),
			Demand: roster.Demand{AM: 1, PM: 1},
		},
	}
	for _, wd := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		hours[wd] = roster.DayHours{Closed: true}
	}

	shop := createShop("s3", roster.CompanyA, roster.RoleSpecialSaturday, hours)
	shop.Special = map[time.Weekday][]roster.SpecialShift{
		time.Saturday: {
			{Start: roster.NewClockTime(6, 30), End: roster.NewClockTime(14, 0)},
			{Start: roster.NewClockTime(10, 0), End: roster.NewClockTime(21, 30)},
		},
	}
	shop.PrimaryEmployees = []string{"p1", "p2"}

	p1 := createEmployee("p1", roster.CompanyA, roster.FullTime)
	p2 := createEmployee("p2", roster.CompanyA, roster.FullTime)

	result, err := roster.Solve(context.Background(), baseInput([]roster.Shop{shop}, []roster.Employee{p1, p2}), roster.DefaultConfig())
	require.NoError(t, err)

	shifts := result.Data.Shifts
	require.Len(t, shifts, 2)

	byEmployee := map[string]roster.Shift{}
	for _, s := range shifts {
		byEmployee[s.EmployeeID] = s
	}

	first, ok := byEmployee["p1"]
	require.True(t, ok, "expected p1 to take the first special interval")
	assert.Equal(t, roster.ClassMorning, first.Class)
	assert.Equal(t, 7.5, first.Hours.Float64())

	second, ok := byEmployee["p2"]
	require.True(t, ok, "expected p2 to take the second special interval")
	assert.Equal(t, roster.ClassFullDay, second.Class)
	assert.Equal(t, 11.5, second.Hours.Float64())

	assert.Nil(t, unfilledSlotFor(result, "s3"), "want Saturday demand fully cleared")

	assertNoDoubleBooking(t, shifts)
}

func TestScenarioE_FailsafeActivates(t *testing.T) {
	shop := createShop("s4", roster.CompanyA, roster.RoleUnrouted,
		onlyMondayOpen(1, 0, roster.NewClockTime(8, 0), roster.NewClockTime(20, 0)))

	emergency := createEmployee("e1", roster.CompanyA, roster.FullTime)
	emergency.Constraints.EmergencyOnly = true

	result, err := roster.Solve(context.Background(), baseInput([]roster.Shop{shop}, []roster.Employee{emergency}), roster.DefaultConfig())
	require.NoError(t, err)

	shifts := result.Data.Shifts
	require.Len(t, shifts, 1, "want failsafe to issue exactly 1 shift")
	assert.Equal(t, "e1", shifts[0].EmployeeID)

	assert.Nil(t, unfilledSlotFor(result, "s4"), "want failsafe to clear the slot")
}

func TestSolveIsDeterministic(t *testing.T) {
	shop := createShop("s1", roster.CompanyA, roster.RoleSoloPaired,
		onlyMondayOpen(2, 1, roster.NewClockTime(6, 30), roster.NewClockTime(21, 30)))
	shop.PrimaryEmployees = []string{"f1"}
	emp := createEmployee("f1", roster.CompanyA, roster.FullTime)
	input := baseInput([]roster.Shop{shop}, []roster.Employee{emp})

	r1, err := roster.Solve(context.Background(), input, roster.DefaultConfig())
	require.NoError(t, err)
	r2, err := roster.Solve(context.Background(), input, roster.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, r2.Data.Shifts, len(r1.Data.Shifts))
	for i := range r1.Data.Shifts {
		a, b := r1.Data.Shifts[i], r2.Data.Shifts[i]
		assert.Equal(t, a.ShopID, b.ShopID)
		assert.Equal(t, a.EmployeeID, b.EmployeeID)
		assert.True(t, a.Date.Equal(b.Date))
		assert.Equal(t, a.Start, b.Start)
		assert.Equal(t, a.End, b.End)
		assert.Equal(t, a.Class, b.Class)
		assert.Equal(t, a.Hours.Float64(), b.Hours.Float64())
	}
	assert.Equal(t, r1.Summary.TotalShifts, r2.Summary.TotalShifts)
}

// unfilledSlotFor returns the unfilled-slot entry for shopID, or nil if
// every cell at that shop was filled.
func unfilledSlotFor(result roster.Result, shopID string) *roster.UnfilledSlot {
	for _, u := range result.Data.UnfilledSlots {
		if u.ShopID == shopID {
			return &u
		}
	}
	return nil
}

// assertNoDoubleBooking fails the test if any employee has two shifts on
// the same date whose intervals overlap.
func assertNoDoubleBooking(t *testing.T, shifts []roster.Shift) {
	t.Helper()
	for i := range shifts {
		for j := i + 1; j < len(shifts); j++ {
			a, b := shifts[i], shifts[j]
			if a.EmployeeID != b.EmployeeID || !a.Date.Equal(b.Date) {
				continue
			}
			assert.False(t, a.OverlapsTimeOfDay(b.Start, b.End),
				"double-booking: employee %s has overlapping shifts on %s", a.EmployeeID, a.Date)
		}
	}
}
