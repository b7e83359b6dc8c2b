/*
validate.go - Post-solve validation report

PURPOSE:
  Classifies business conditions into errors that block acceptance
  (unfilled slots, over-cap employees) and warnings that are purely
  informational (under-target full-timers, over-target part-timers).
  Neither is ever a Go error — business conditions never unwind the
  call stack, only the caller's judgment on validation.isValid does.

SEE ALSO:
  - result.go: the sole caller, after phase 10 has run
  - errors.go: the (unrelated) Go-error path for malformed input only
*/
package roster

import "fmt"

// Validation is the pass/fail report attached to a solve result.
type Validation struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

func (e *Engine) validate(unfilled []UnfilledSlot) Validation {
	var errs, warnings []string

	for _, u := range unfilled {
		errs = append(errs, fmt.Sprintf("unfilled slot at shop %s on %s (am=%d, pm=%d)", u.ShopID, u.Date, u.AM, u.PM))
	}

	for _, emp := range e.input.Employees {
		weekday := e.ledger.WeekdayOf(emp.ID)
		capHours := CapFor(emp.Contract)

		if weekday.GreaterThan(capHours.Add(HoursOf(2))) {
			errs = append(errs, fmt.Sprintf("employee %s exceeds cap+2h: weekday=%s cap=%s", emp.ID, weekday, capHours))
		}

		switch emp.Contract {
		case FullTime:
			if weekday.LessThan(HoursOf(38)) {
				warnings = append(warnings, fmt.Sprintf("full-timer %s under target: weekday=%s", emp.ID, weekday))
			}
		case PartTime:
			if weekday.GreaterThan(CapPartTime) {
				warnings = append(warnings, fmt.Sprintf("part-timer %s over cap: weekday=%s", emp.ID, weekday))
			}
		}
	}

	return Validation{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
