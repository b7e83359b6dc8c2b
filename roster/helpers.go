/*
helpers.go - Shared sub-routines for the targeted phases

PURPOSE:
  Every targeted phase leans on three sub-routines: lowest-hours-first
  candidate ordering, full-day-then-split, and special-shift dispatch.
  Factoring them here keeps phase files focused on the staffing
  pattern each shop actually needs.

SEE ALSO:
  - phase1_solo.go ... phase7: every phase composes these
*/
package roster

import (
	"sort"
	"time"
)

// Half identifies which slot-tracker half a phase is filling.
type Half int

const (
	HalfAM Half = iota
	HalfPM
)

// sortByWeekdayHours returns a stable ascending-by-weekday-hours copy
// of candidates, the fairness tie-break every lowest-hours-first fill
// loop uses.
func (e *Engine) sortByWeekdayHours(candidates []Employee) []Employee {
	out := make([]Employee, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return e.ledger.WeekdayOf(out[i].ID).LessThan(e.ledger.WeekdayOf(out[j].ID))
	})
	return out
}

// fullDayInterval is a shop's entire open window for one day.
func fullDayInterval(dh DayHours) (ClockTime, ClockTime) { return dh.Open, dh.Close }

// morningInterval / eveningInterval split at the shop's midpoint.
func morningInterval(dh DayHours, midpoint ClockTime) (ClockTime, ClockTime) {
	return dh.Open, midpoint
}
func eveningInterval(dh DayHours, midpoint ClockTime) (ClockTime, ClockTime) {
	return midpoint, dh.Close
}

// attemptFullDay issues a full-day shift for employeeID if the oracle
// allows it; callers are responsible for checking both AM and PM
// demand remain before preferring a full-day assignment over a split.
func (e *Engine) attemptFullDay(shop Shop, day Date, employeeID string) (Shift, bool) {
	dh := shop.DayHoursFor(day.Weekday())
	if dh.Closed {
		return Shift{}, false
	}
	start, end := fullDayInterval(dh)
	emp, ok := e.employeeByID[employeeID]
	if !ok {
		return Shift{}, false
	}
	hours := Minutes(int(end) - int(start))
	if !e.oracle.CanAssign(emp, day, hours, start, shop.Midpoint, false) {
		return Shift{}, false
	}
	return e.issuer.Issue(shop.ID, employeeID, day, start, end, shop.Midpoint)
}

// attemptMorning/attemptEvening issue a half-day shift for employeeID.
func (e *Engine) attemptMorning(shop Shop, day Date, employeeID string) (Shift, bool) {
	dh := shop.DayHoursFor(day.Weekday())
	if dh.Closed {
		return Shift{}, false
	}
	start, end := morningInterval(dh, shop.Midpoint)
	return e.attemptInterval(shop, day, employeeID, start, end)
}

func (e *Engine) attemptEvening(shop Shop, day Date, employeeID string) (Shift, bool) {
	dh := shop.DayHoursFor(day.Weekday())
	if dh.Closed {
		return Shift{}, false
	}
	start, end := eveningInterval(dh, shop.Midpoint)
	return e.attemptInterval(shop, day, employeeID, start, end)
}

func (e *Engine) attemptInterval(shop Shop, day Date, employeeID string, start, end ClockTime) (Shift, bool) {
	emp, ok := e.employeeByID[employeeID]
	if !ok {
		return Shift{}, false
	}
	hours := Minutes(int(end) - int(start))
	if !e.oracle.CanAssign(emp, day, hours, start, shop.Midpoint, false) {
		return Shift{}, false
	}
	return e.issuer.Issue(shop.ID, employeeID, day, start, end, shop.Midpoint)
}

// fillHalfByLowestHours sweeps candidates ascending by weekday hours,
// issuing one half-day shift per feasible candidate until the named
// half's demand is exhausted.
func (e *Engine) fillHalfByLowestHours(shop Shop, day Date, half Half, candidates []Employee) {
	ordered := e.sortByWeekdayHours(candidates)
	for _, emp := range ordered {
		remaining := e.slots.Remaining(shop.ID, day)
		if half == HalfAM && remaining.AM <= 0 {
			return
		}
		if half == HalfPM && remaining.PM <= 0 {
			return
		}
		if half == HalfAM {
			e.attemptMorning(shop, day, emp.ID)
		} else {
			e.attemptEvening(shop, day, emp.ID)
		}
	}
}

// dispatchSpecialShifts assigns a shop's declared special intervals in
// order to the given primaries, sequentially, by availability.
func (e *Engine) dispatchSpecialShifts(shop Shop, day Date, primaries []Employee) {
	for _, special := range shop.SpecialShiftsFor(day.Weekday()) {
		for _, emp := range primaries {
			hours := Minutes(int(special.End) - int(special.Start))
			if !e.oracle.CanAssign(emp, day, hours, special.Start, shop.Midpoint, false) {
				continue
			}
			if _, ok := e.issuer.Issue(shop.ID, emp.ID, day, special.Start, special.End, shop.Midpoint); ok {
				primaries = removeEmployee(primaries, emp.ID)
				break
			}
		}
	}
}

func removeEmployee(list []Employee, id string) []Employee {
	out := make([]Employee, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// dayParityFirst reports whether the first-listed primary takes first
// pick today under day-parity alternation: true on even weekday numbers
// (Sunday=0, Tuesday, Thursday, Saturday), so the pick swaps across
// consecutive days from Monday to Saturday; Saturday and Sunday both
// return true.
func dayParityFirst(day Date) bool {
	return int(day.Weekday())%2 == 0
}

// isSunday is a small readability helper used by the blended-shop phases.
func isSunday(day Date) bool { return day.Weekday() == time.Sunday }
