/*
employee.go - Employee records and contract constants

PURPOSE:
  Employees are read-only for the solver's lifetime, same as Shop.
  Contract type determines which cap the feasibility oracle enforces;
  personal constraints are carried as plain fields and collapsed into
  Oracle.CanAssign (availability.go), never consulted directly by a phase.

SEE ALSO:
  - availability.go: the single routine phases call instead of reading
    these fields directly
  - ledger.go: per-employee running totals keyed by Employee.ID
*/
package roster

import "time"

// ContractType determines an employee's weekly cap.
type ContractType string

const (
	FullTime ContractType = "full-time"
	PartTime ContractType = "part-time"
)

// Contract constants.
var (
	TargetFullTime = HoursOf(40) // T_FT target
	CapFullTime    = HoursOf(42) // T_FT_MAX hard cap
	CapPartTime    = HoursOf(30) // T_PT cap

	MinShiftLength = HoursOf(4)   // universal minimum shift length (phase 10)
	GapMinShift    = HoursOf(2.5) // gap filler skips candidates below this remaining
)

// TargetFor returns the weekly hour target used by the gap filler and
// the overtime balancer: 40 for full-time, 30 for part-time.
func TargetFor(c ContractType) Hours {
	if c == FullTime {
		return TargetFullTime
	}
	return CapPartTime
}

// CapFor returns the hard weekday cap enforced by the feasibility oracle.
func CapFor(c ContractType) Hours {
	if c == FullTime {
		return CapFullTime
	}
	return CapPartTime
}

// PersonalConstraints layers the per-employee restrictions that
// availability.go collapses into a single eligibility check.
type PersonalConstraints struct {
	OffDays       map[time.Weekday]bool
	MorningOnly   bool
	EveningOnly   bool
	EmergencyOnly bool
}

// Employee is the input record for one staff member.
type Employee struct {
	ID                 string
	Name               string
	Company            Company // CompanyA, CompanyB, or "Both"
	Contract           ContractType
	PrimaryShopID      string
	SecondaryShopIDs   []string
	Constraints        PersonalConstraints
	Active             bool
}

const CompanyBoth Company = "Both"

// MatchesCompany reports whether the employee may staff a shop of company c.
func (e Employee) MatchesCompany(c Company) bool {
	return e.Company == CompanyBoth || e.Company == c
}
