package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// INTERNAL PHASE TESTS - exercise unexported engine methods directly so a
// scenario's pre-state (accumulated hours from earlier phases) can be set up
// precisely, without re-running the whole ten-phase pipeline.
// =============================================================================

func newTestEngine(t *testing.T, shop Shop, emp Employee) *Engine {
	t.Helper()
	week, err := NewWeek(NewDate(2026, time.January, 5)) // a Monday
	require.NoError(t, err)
	input := Input{
		WeekStart: week.Start,
		Shops:     []Shop{shop},
		Employees: []Employee{emp},
	}
	eng, err := newEngine(input, DefaultConfig(), NewPhaseLogger())
	require.NoError(t, err)
	return eng
}

func gapFillerTestShop() Shop {
	hours := map[time.Weekday]DayHours{time.Monday: {
		Open:   NewClockTime(8, 0),
		Close:  NewClockTime(20, 0),
		Demand: Demand{AM: 1, PM: 0},
	}}
	for _, wd := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		hours[wd] = DayHours{Closed: true}
	}
	return Shop{
		ID: "gapshop", Name: "gapshop", Company: CompanyA, Active: true,
		Role: RoleUnrouted, Hours: hours, Midpoint: NewClockTime(14, 0),
	}
}

// TestGapFillerZeroesTinyDeficit: a full-timer at 37h weekday has a 3h
// gap to target (40h). Since 3h falls in [2.5h, 5h), the gap filler issues
// a shift of exactly that length rather than clamping to the window.
func TestGapFillerZeroesTinyDeficit(t *testing.T) {
	shop := gapFillerTestShop()
	emp := Employee{ID: "f", Name: "f", Company: CompanyA, Contract: FullTime, Active: true}
	eng := newTestEngine(t, shop, emp)

	eng.ledger.Record("f", eng.week.Days[1], HoursOf(37), 1) // Tuesday, simulating prior phases

	monday := eng.week.Days[0]
	dh := shop.DayHoursFor(monday.Weekday())
	eng.gapFillHalf(shop, monday, dh, HalfAM)

	shifts := eng.issuer.ShiftsFor("f")
	require.Len(t, shifts, 1)
	assert.Equal(t, 3.0, shifts[0].Hours.Float64())
	assert.Equal(t, 40.0, eng.ledger.WeekdayOf("f").Float64())
}

// TestGapFillerClampsToWindow: a full-timer with no prior hours has a 40h
// gap, far more than the window can hold, so the shift length clamps to
// the AM window's own length instead of spilling past it.
func TestGapFillerClampsToWindow(t *testing.T) {
	shop := gapFillerTestShop()
	emp := Employee{ID: "f", Name: "f", Company: CompanyA, Contract: FullTime, Active: true}
	eng := newTestEngine(t, shop, emp)

	monday := eng.week.Days[0]
	dh := shop.DayHoursFor(monday.Weekday())
	eng.gapFillHalf(shop, monday, dh, HalfAM)

	shifts := eng.issuer.ShiftsFor("f")
	require.Len(t, shifts, 1)
	wantWindow := Minutes(int(shop.Midpoint) - int(dh.Open)).Float64()
	assert.Equal(t, wantWindow, shifts[0].Hours.Float64())
}

// TestGapFillerSkipsSubMinimumGap: a full-timer 2h from target never gets
// offered a shift, since a sub-2.5h remainder falls below the gap
// filler's minimum useful shift length.
func TestGapFillerSkipsSubMinimumGap(t *testing.T) {
	shop := gapFillerTestShop()
	emp := Employee{ID: "f", Name: "f", Company: CompanyA, Contract: FullTime, Active: true}
	eng := newTestEngine(t, shop, emp)

	eng.ledger.Record("f", eng.week.Days[1], HoursOf(38), 1)

	monday := eng.week.Days[0]
	dh := shop.DayHoursFor(monday.Weekday())
	eng.gapFillHalf(shop, monday, dh, HalfAM)

	assert.Empty(t, eng.issuer.ShiftsFor("f"))
	assert.Equal(t, 1, eng.slots.Remaining(shop.ID, monday).AM)
}

func trimTestShop() Shop {
	hours := map[time.Weekday]DayHours{time.Monday: {
		Open:   NewClockTime(8, 0),
		Close:  NewClockTime(16, 0),
		Demand: Demand{AM: 1, PM: 1},
	}}
	for _, wd := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		hours[wd] = DayHours{Closed: true}
	}
	return Shop{
		ID: "trimshop", Name: "trimshop", Company: CompanyA, Active: true,
		Role: RoleUnrouted, Hours: hours, Midpoint: NewClockTime(14, 0),
	}
}

// TestPhase10TrimsToTarget: an employee at 43h weekday (3h over the 40h
// target) has their longest non-fullDay weekday shift trimmed by exactly
// that excess, from 8h to 5h, which stays above the universal 4h minimum.
func TestPhase10TrimsToTarget(t *testing.T) {
	shop := trimTestShop()
	emp := Employee{ID: "g", Name: "g", Company: CompanyA, Contract: FullTime, Active: true}
	eng := newTestEngine(t, shop, emp)

	monday := eng.week.Days[0]
	shift, ok := eng.issuer.Issue(shop.ID, "g", monday, NewClockTime(8, 0), NewClockTime(16, 0), shop.Midpoint)
	require.True(t, ok, "expected the 8h setup shift to issue")
	require.NotEqual(t, ClassFullDay, shift.Class, "test setup error: setup shift must not classify as fullDay")

	eng.ledger.Record("g", eng.week.Days[1], HoursOf(35), 1) // Tuesday, bringing weekday total to 43h

	eng.phase10Balance()

	trimmed := eng.issuer.ShiftsFor("g")[0]
	assert.True(t, trimmed.Overtime)
	assert.Equal(t, 5.0, trimmed.Hours.Float64())
	assert.Equal(t, NewClockTime(13, 0), trimmed.End)
	assert.Equal(t, 40.0, eng.ledger.WeekdayOf("g").Float64())
}

// TestPhase10BlockedByMinimum: an employee whose only trimmable shift
// would fall below the universal 4h minimum is left untouched; the
// validator is left to flag the remaining overage.
func TestPhase10BlockedByMinimum(t *testing.T) {
	shop := trimTestShop()
	emp := Employee{ID: "g", Name: "g", Company: CompanyA, Contract: FullTime, Active: true}
	eng := newTestEngine(t, shop, emp)

	monday := eng.week.Days[0]
	_, ok := eng.issuer.Issue(shop.ID, "g", monday, NewClockTime(8, 0), NewClockTime(13, 0), shop.Midpoint) // 5h
	require.True(t, ok, "expected the 5h setup shift to issue")

	eng.ledger.Record("g", eng.week.Days[1], HoursOf(39), 1) // weekday total 44h, excess 4h > (5h - 4h minimum) headroom

	eng.phase10Balance()

	shift := eng.issuer.ShiftsFor("g")[0]
	assert.False(t, shift.Overtime, "want the shift left untouched when trimming would drop below the 4h minimum")
	assert.Equal(t, 5.0, shift.Hours.Float64())
}
