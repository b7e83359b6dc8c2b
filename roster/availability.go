/*
availability.go - The feasibility oracle

PURPOSE:
  Collapses every personal and contract eligibility rule into the one
  routine every phase calls. No phase file inspects Employee.Constraints
  or LeaveRequests directly — phases must never reach past this oracle.

SEE ALSO:
  - employee.go: ContractType, PersonalConstraints, contract constants
  - leave.go: LeaveRequest.Covers
  - ledger.go: WeekdayOf/ShiftCountOn read by rule 3 and rule 4
*/
package roster

import "time"

// Oracle evaluates whether an employee can take a shift of a given
// length against one solver run's shared state (ledger) and per-run
// overlays (input).
type Oracle struct {
	input  Input
	cfg    Config
	ledger *HourLedger
	leave  map[string][]LeaveRequest
}

// NewOracle indexes leave requests by employee for fast lookup.
func NewOracle(input Input, cfg Config, ledger *HourLedger) *Oracle {
	byEmployee := make(map[string][]LeaveRequest, len(input.LeaveRequests))
	for _, lr := range input.LeaveRequests {
		byEmployee[lr.EmployeeID] = append(byEmployee[lr.EmployeeID], lr)
	}
	return &Oracle{input: input, cfg: cfg, ledger: ledger, leave: byEmployee}
}

// allowEmergencyOnly is true only for phase 9's failsafe sweep;
// emergency-only employees fail rule 1 in every other phase.
func (o *Oracle) CanAssign(e Employee, d Date, h Hours, start ClockTime, midpoint ClockTime, allowEmergencyOnly bool) bool {
	// Rule 1: active, and not emergency-only outside phase 9.
	if !e.Active {
		return false
	}
	if e.Constraints.EmergencyOnly && !allowEmergencyOnly {
		return false
	}

	// Rule 2: off-days, fixed-days-off overlay, leave, force-exclusion.
	if o.input.ExcludedEmployeeIDs[e.ID] {
		return false
	}
	wd := d.Weekday()
	if e.Constraints.OffDays[wd] {
		return false
	}
	if overlay, ok := o.input.FixedDaysOff[e.ID]; ok && overlay[int(wd)] {
		return false
	}
	for _, lr := range o.leave[e.ID] {
		if lr.Covers(d) {
			return false
		}
	}

	// Rule 3: weekday cap, with Sunday's carve-out.
	if wd != time.Sunday || o.cfg.SundayCountsTowardCap {
		capHours := CapFor(e.Contract)
		if o.ledger.WeekdayOf(e.ID).Add(h).GreaterThan(capHours) {
			return false
		}
	}

	// Rule 4: daily shift-count cap, with the short-shift exception.
	existing := o.ledger.ShiftCountOn(e.ID, d)
	if existing >= 2 {
		return false
	}
	if existing >= 1 && h.GreaterThan(HoursOf(8)) {
		return false
	}

	// Rule 5: morning-only / evening-only, including the week's AM-only overlay.
	morningOnly := e.Constraints.MorningOnly || o.input.AMOnlyEmployeeIDs[e.ID]
	isMorningStart := start.IsMorningStart(midpoint)
	if morningOnly && !isMorningStart {
		return false
	}
	if e.Constraints.EveningOnly && isMorningStart {
		return false
	}

	return true
}
