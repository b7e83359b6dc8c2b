/*
phase2_special_saturday.go - Phase 2: special-Saturday shop

Saturday uses the two declared special intervals, assigned in order;
other days prefer full-day, else split AM/PM among the two primaries,
alternating first pick by day parity.
*/
package roster

import "time"

func (e *Engine) phase2SpecialSaturday() {
	for _, shop := range e.shopsByRole(RoleSpecialSaturday) {
		primaries := e.employeesByIDs(shop.PrimaryEmployees)
		if len(primaries) == 0 {
			continue
		}

		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}

			if day.Weekday() == time.Saturday && len(shop.SpecialShiftsFor(time.Saturday)) > 0 {
				e.dispatchSpecialShifts(shop, day, primaries)
				continue
			}

			demand := e.slots.Remaining(shop.ID, day)
			if demand.AM > 0 && demand.PM > 0 {
				issuedFullDay := false
				for _, p := range primaries {
					if _, ok := e.attemptFullDay(shop, day, p.ID); ok {
						issuedFullDay = true
						break
					}
				}
				if issuedFullDay {
					continue
				}
			}

			first, second := primaries[0], primaries[0]
			if len(primaries) > 1 {
				second = primaries[1]
			}
			if dayParityFirst(day) {
				e.splitAMPM(shop, day, first, second)
			} else {
				e.splitAMPM(shop, day, second, first)
			}
		}
	}
}

// splitAMPM assigns amEmp the morning half and pmEmp the evening half,
// each only if demand for that half remains.
func (e *Engine) splitAMPM(shop Shop, day Date, amEmp, pmEmp Employee) {
	if e.slots.Remaining(shop.ID, day).AM > 0 {
		e.attemptMorning(shop, day, amEmp.ID)
	}
	if e.slots.Remaining(shop.ID, day).PM > 0 {
		e.attemptEvening(shop, day, pmEmp.ID)
	}
}
