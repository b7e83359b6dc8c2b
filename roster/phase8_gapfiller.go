/*
phase8_gapfiller.go - Phase 8: cross-company gap filler

Up to five passes over all shops x days, days visited in priority
order (Sat, Fri, Thu, Wed, Tue, Mon, Sun). For each cell with demand
> 0: build a company-matched candidate list sorted lowest-hours-first,
skip candidates with remaining gap below the minimum useful shift,
compute a clamped shift length, and issue if feasible. Two targeted
late-pass fixes close out small, specific deficits after the sweeps.
*/
package roster

import "time"

func (e *Engine) phase8GapFiller() {
	for pass := 0; pass < e.cfg.GapFillerMaxPasses; pass++ {
		for _, day := range e.week.DatesByPriority() {
			for _, shop := range e.input.Shops {
				if !shop.Active {
					continue
				}
				dh := shop.DayHoursFor(day.Weekday())
				if dh.Closed {
					continue
				}
				if e.slots.Remaining(shop.ID, day).AM > 0 {
					e.gapFillHalf(shop, day, dh, HalfAM)
				}
				if e.slots.Remaining(shop.ID, day).PM > 0 {
					e.gapFillHalf(shop, day, dh, HalfPM)
				}
			}
		}
	}

	e.gapFillerLatePasses()
}

// gapCandidates is the company-matched, emergency-only-excluded pool
// the gap filler draws from.
func (e *Engine) gapCandidates(shop Shop) []Employee {
	var out []Employee
	for _, emp := range e.input.Employees {
		if !emp.Active || emp.Constraints.EmergencyOnly {
			continue
		}
		if !emp.MatchesCompany(shop.Company) {
			continue
		}
		out = append(out, emp)
	}
	return e.sortByWeekdayHours(out)
}

func (e *Engine) gapFillHalf(shop Shop, day Date, dh DayHours, half Half) {
	for _, cand := range e.gapCandidates(shop) {
		remaining := e.slots.Remaining(shop.ID, day)
		if half == HalfAM && remaining.AM <= 0 {
			return
		}
		if half == HalfPM && remaining.PM <= 0 {
			return
		}

		target := TargetFor(cand.Contract)
		gap := target.Sub(e.ledger.WeekdayOf(cand.ID))
		if gap.LessThan(GapMinShift) {
			continue
		}

		var start, windowEnd ClockTime
		if half == HalfAM {
			start, windowEnd = dh.Open, shop.Midpoint
		} else {
			start, windowEnd = shop.Midpoint, dh.Close
		}
		windowLen := Minutes(int(windowEnd) - int(start))

		length := gap
		if !gap.LessThan(HoursOf(5)) {
			if windowLen.LessThan(gap) {
				length = windowLen
			} else {
				length = gap
			}
		}

		end := ClockTime(int(start) + length.Minutes())
		if end > windowEnd {
			end = windowEnd
		}

		e.attemptInterval(shop, day, cand.ID, start, end)
	}
}

// gapFillerLatePasses applies two targeted fixes for specific
// still-open cells after the five sweeps.
func (e *Engine) gapFillerLatePasses() {
	for _, shop := range e.input.Shops {
		if !shop.Active {
			continue
		}
		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}
			remaining := e.slots.Remaining(shop.ID, day)

			if isSunday(day) && remaining.PM > 0 {
				e.offerSundayFullTimer(shop, day, dh)
			}

			if day.Weekday() == time.Saturday && shop.Role == RoleBlended && remaining.AM > 0 {
				e.offerSaturdayPartTimer(shop, day, dh)
			}
		}
	}
}

func (e *Engine) offerSundayFullTimer(shop Shop, day Date, dh DayHours) {
	for _, emp := range e.gapCandidates(shop) {
		if emp.Contract != FullTime {
			continue
		}
		if e.ledger.WeekdayOf(emp.ID).LessThan(e.cfg.SundayOfferThreshold) {
			continue
		}
		start := shop.Midpoint
		end := ClockTime(int(start) + e.cfg.SundayOfferHours.Minutes())
		if end > dh.Close {
			end = dh.Close
		}
		if _, ok := e.attemptInterval(shop, day, emp.ID, start, end); ok {
			return
		}
	}
}

func (e *Engine) offerSaturdayPartTimer(shop Shop, day Date, dh DayHours) {
	for _, emp := range e.gapCandidates(shop) {
		if emp.Contract != PartTime {
			continue
		}
		if !e.ledger.WeekdayOf(emp.ID).LessThan(e.cfg.SaturdayOfferThreshold) {
			continue
		}
		start := dh.Open
		end := ClockTime(int(start) + e.cfg.SaturdayOfferHours.Minutes())
		if end > shop.Midpoint {
			end = shop.Midpoint
		}
		if _, ok := e.attemptInterval(shop, day, emp.ID, start, end); ok {
			return
		}
	}
}
