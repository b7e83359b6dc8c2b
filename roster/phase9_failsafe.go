/*
phase9_failsafe.go - Phase 9: failsafe

If any cell still has demand > 0 after phase 8, sweep the Company-A
shop set with the designated emergency-only employees, attempting an
AM shift then a PM shift per (shop, day). This is the only phase that
assigns emergency-only employees.
*/
package roster

func (e *Engine) phase9Failsafe() {
	var emergency []Employee
	for _, emp := range e.input.Employees {
		if emp.Active && emp.Constraints.EmergencyOnly {
			emergency = append(emergency, emp)
		}
	}
	if len(emergency) == 0 {
		return
	}

	for _, shop := range e.input.Shops {
		if !shop.Active || shop.Company != CompanyA {
			continue
		}
		for _, day := range e.week.Days {
			dh := shop.DayHoursFor(day.Weekday())
			if dh.Closed {
				continue
			}

			if e.slots.Remaining(shop.ID, day).AM > 0 {
				e.failsafeAttempt(shop, day, dh, HalfAM, emergency)
			}
			if e.slots.Remaining(shop.ID, day).PM > 0 {
				e.failsafeAttempt(shop, day, dh, HalfPM, emergency)
			}
		}
	}
}

func (e *Engine) failsafeAttempt(shop Shop, day Date, dh DayHours, half Half, emergency []Employee) {
	var start, end ClockTime
	if half == HalfAM {
		start, end = dh.Open, shop.Midpoint
	} else {
		start, end = shop.Midpoint, dh.Close
	}

	for _, emp := range emergency {
		hours := Minutes(int(end) - int(start))
		if !e.oracle.CanAssign(emp, day, hours, start, shop.Midpoint, true) {
			continue
		}
		if _, ok := e.issuer.Issue(shop.ID, emp.ID, day, start, end, shop.Midpoint); ok {
			return
		}
	}
}
