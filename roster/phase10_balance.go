/*
phase10_balance.go - Phase 10: hour balancer

For each employee whose weekday hours exceed the contract target by
excess > 0, select that employee's longest non-fullDay weekday shift,
trim it by excess if the result stays at or above the universal 4h
minimum, otherwise leave it and let the validator flag the overage.
Trims exactly once per over-contract employee. Part-timers have no
slack between target and hard cap (both 30h), so this only ever bites
full-timers who drifted above 40h while still under the 42h
feasibility ceiling.
*/
package roster

import "time"

func (e *Engine) phase10Balance() {
	for _, emp := range e.input.Employees {
		target := TargetFor(emp.Contract)
		weekday := e.ledger.WeekdayOf(emp.ID)
		excess := weekday.Sub(target)
		if !excess.GreaterThan(Zero) {
			continue
		}

		longest, ok := e.longestTrimmableShift(emp.ID)
		if !ok {
			continue
		}

		newHours := longest.Hours.Sub(excess)
		if newHours.GreaterOrEqual(MinShiftLength) {
			newEnd := ClockTime(int(longest.Start) + newHours.Minutes())
			e.issuer.Trim(longest.ID, newEnd, newHours)
			e.ledger.ApplyTrim(emp.ID, excess)
			e.log.TrimApplied(emp.ID, longest.ID, excess, newHours)
		} else {
			e.log.TrimBlocked(emp.ID, longest.ID, newHours)
		}
	}
}

// longestTrimmableShift finds an employee's longest non-fullDay
// weekday (Mon-Sat) shift, the only kind phase 10 may trim.
func (e *Engine) longestTrimmableShift(employeeID string) (Shift, bool) {
	var longest Shift
	found := false
	for _, s := range e.issuer.ShiftsFor(employeeID) {
		if s.Weekday == time.Sunday || s.Class == ClassFullDay {
			continue
		}
		if !found || s.Hours.GreaterThan(longest.Hours) {
			longest = s
			found = true
		}
	}
	return longest, found
}
