/*
phase5_small_team.go - Phase 5: small-team Company-A shop

Like phase 4 but with a small primary roster plus a named secondary
bridge employee, who joins the lowest-hours-first candidate pool
rather than being special-cased.
*/
package roster

func (e *Engine) phase5SmallTeam() {
	for _, shop := range e.shopsByRole(RoleSmallTeam) {
		primaries := e.employeesByIDs(shop.PrimaryEmployees)
		if len(primaries) == 0 {
			continue
		}
		bridge := e.employeesByIDs(shop.SecondaryEmployees)
		pool := append(append([]Employee{}, primaries...), bridge...)

		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}

			demand := e.slots.Remaining(shop.ID, day)
			if demand.AM > 0 && demand.PM > 0 {
				for _, p := range e.sortByWeekdayHours(primaries) {
					if _, ok := e.attemptFullDay(shop, day, p.ID); ok {
						break
					}
				}
			}

			e.fillHalfByLowestHours(shop, day, HalfAM, pool)
			e.fillHalfByLowestHours(shop, day, HalfPM, pool)
		}
	}
}
