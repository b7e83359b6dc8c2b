/*
phase1_solo.go - Phase 1: solo-paired shops

A solo-paired shop has one named primary and an ordered list of
backups. Full-day is preferred first when feasible and both halves
still have demand; otherwise the primary takes AM and the first
available backup takes PM.
*/
package roster

func (e *Engine) phase1SoloPaired() {
	for _, shop := range e.shopsByRole(RoleSoloPaired) {
		if len(shop.PrimaryEmployees) == 0 {
			continue
		}
		primaryID := shop.PrimaryEmployees[0]
		backups := e.employeesByIDs(shop.SecondaryEmployees)

		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}

			demand := e.slots.Remaining(shop.ID, day)
			if demand.AM > 0 && demand.PM > 0 {
				if _, ok := e.attemptFullDay(shop, day, primaryID); ok {
					continue
				}
			}

			if e.slots.Remaining(shop.ID, day).AM > 0 {
				e.attemptMorning(shop, day, primaryID)
			}

			if e.slots.Remaining(shop.ID, day).PM > 0 {
				for _, backup := range backups {
					if _, ok := e.attemptEvening(shop, day, backup.ID); ok {
						break
					}
				}
			}
		}
	}
}
