/*
shop.go - Shop records, demand, and special shifts

PURPOSE:
  A Shop is read-only for the solver's entire lifetime: opening hours,
  base AM/PM demand, and any declared special shifts are fixed at
  input time. RosterRole is the one piece of routing metadata that
  lets the engine dispatch a shop to the correct targeted phase (1-7)
  without the solver code naming specific shop identifiers.

SEE ALSO:
  - engine.go: routes shops to phases by RosterRole
  - fixtures_test.go: shop fixtures for scenario tests
*/
package roster

import "time"

// Company tags the two companies the roster spans.
type Company string

const (
	CompanyA Company = "A"
	CompanyB Company = "B"
)

// RosterRole tags a shop with the staffing pattern it follows, so
// phases 1-7 route by role rather than by a hard-coded shop name.
type RosterRole string

const (
	RoleSoloPaired       RosterRole = "solo-paired"
	RoleSpecialSaturday  RosterRole = "special-saturday"
	RoleTwoPerson        RosterRole = "two-person"
	RoleFlagship         RosterRole = "flagship"
	RoleSmallTeam        RosterRole = "small-team"
	RoleBlended          RosterRole = "blended"
	RoleUnrouted         RosterRole = "" // not targeted by phases 1-7; gap filler and failsafe only
)

// Demand is the outstanding AM/PM coverage obligation for one shop-day.
type Demand struct {
	AM int
	PM int
}

// IsZero reports whether both halves of demand are satisfied.
func (d Demand) IsZero() bool { return d.AM <= 0 && d.PM <= 0 }

// DayHours is a shop's opening window for one weekday. Closed days carry
// a zero Open/Close pair and must declare zero Demand (Input.Validate
// enforces this).
type DayHours struct {
	Closed bool
	Open   ClockTime
	Close  ClockTime
	Demand Demand
}

// SpecialShift is a declared interval overriding the default AM/PM split
// for a specific weekday, assigned in order to a shop's primaries.
type SpecialShift struct {
	Start ClockTime
	End   ClockTime
}

// Shop is the input record for one retail location.
type Shop struct {
	ID       string
	Name     string
	Company  Company
	Active   bool
	Role     RosterRole
	Hours    map[time.Weekday]DayHours
	Special  map[time.Weekday][]SpecialShift

	// PrimaryEmployees / SecondaryEmployees: phase priority orders are
	// derived from these ordered slices, never embedded as literals in
	// phase code.
	PrimaryEmployees   []string
	SecondaryEmployees []string

	// Midpoint splits AM from PM for gap-filler shift-length clamping.
	// Company-A shops typically split at 14:00, Company-B at 13:00.
	Midpoint ClockTime
}

// DayHoursFor returns the shop's opening window for weekday wd, or the
// zero value with Closed=true if the shop has no entry for that day.
func (s Shop) DayHoursFor(wd time.Weekday) DayHours {
	dh, ok := s.Hours[wd]
	if !ok {
		return DayHours{Closed: true}
	}
	return dh
}

// SpecialShiftsFor returns the declared special intervals for weekday wd,
// or nil if none are declared.
func (s Shop) SpecialShiftsFor(wd time.Weekday) []SpecialShift {
	return s.Special[wd]
}
