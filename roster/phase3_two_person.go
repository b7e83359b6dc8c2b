/*
phase3_two_person.go - Phase 3: two-person shops

For each declared two-person shop, prefer full-day, else split AM/PM
between the two primaries with day-parity alternation.
*/
package roster

func (e *Engine) phase3TwoPerson() {
	for _, shop := range e.shopsByRole(RoleTwoPerson) {
		primaries := e.employeesByIDs(shop.PrimaryEmployees)
		if len(primaries) == 0 {
			continue
		}
		first, second := primaries[0], primaries[0]
		if len(primaries) > 1 {
			second = primaries[1]
		}

		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}

			demand := e.slots.Remaining(shop.ID, day)
			if demand.AM > 0 && demand.PM > 0 {
				issued := false
				for _, p := range primaries {
					if _, ok := e.attemptFullDay(shop, day, p.ID); ok {
						issued = true
						break
					}
				}
				if issued {
					continue
				}
			}

			if dayParityFirst(day) {
				e.splitAMPM(shop, day, first, second)
			} else {
				e.splitAMPM(shop, day, second, first)
			}
		}
	}
}
