/*
phase6_7_blended.go - Phases 6-7: part-time-blended Company shops

Full-timers first (full-day attempts, then AM, then PM), then
part-timers fill remaining demand. Sunday on these shops is
morning-only with a reduced open-close window, but that's input data
(Shop.Hours[Sunday]), not phase logic: the phase runs its ordinary
loop, and the zeroed PM demand a blended shop declares for Sunday
means no PM candidate is ever offered a shift that day.
*/
package roster

func (e *Engine) phase6And7Blended() {
	for _, shop := range e.shopsByRole(RoleBlended) {
		all := e.employeesByIDs(shop.PrimaryEmployees)
		var fullTimers, partTimers []Employee
		for _, emp := range all {
			if emp.Contract == FullTime {
				fullTimers = append(fullTimers, emp)
			} else {
				partTimers = append(partTimers, emp)
			}
		}

		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}

			demand := e.slots.Remaining(shop.ID, day)
			if demand.AM > 0 && demand.PM > 0 {
				for _, p := range e.sortByWeekdayHours(fullTimers) {
					if _, ok := e.attemptFullDay(shop, day, p.ID); ok {
						break
					}
				}
			}

			e.fillHalfByLowestHours(shop, day, HalfAM, fullTimers)
			e.fillHalfByLowestHours(shop, day, HalfPM, fullTimers)
			e.fillHalfByLowestHours(shop, day, HalfAM, partTimers)
			e.fillHalfByLowestHours(shop, day, HalfPM, partTimers)
		}
	}
}
