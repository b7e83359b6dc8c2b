/*
phase4_flagship.go - Phase 4: high-demand flagship shop

Up to one full-day per day across the primary roster; then fill
remaining AM demand by lowest-hours-first; then fill PM the same way.
*/
package roster

func (e *Engine) phase4Flagship() {
	for _, shop := range e.shopsByRole(RoleFlagship) {
		primaries := e.employeesByIDs(shop.PrimaryEmployees)
		if len(primaries) == 0 {
			continue
		}

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

			e.fillHalfByLowestHours(shop, day, HalfAM, primaries)
			e.fillHalfByLowestHours(shop, day, HalfPM, primaries)
		}
	}
}
