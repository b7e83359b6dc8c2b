/*
input.go - Solver input snapshot and configuration

PURPOSE:
  Input is the immutable record the solver reads once at Solve start.
  Config carries the tunable thresholds that would otherwise be
  literals scattered across phase files, the same way
  Shop.PrimaryEmployees/SecondaryEmployees keep employee-ID lists out
  of phase code. The contract caps and targets are not part of Config;
  they are package constants in employee.go.

SEE ALSO:
  - engine.go: Solve(ctx, Input, Config)
  - config/load.go: loads Config from a YAML file via viper
*/
package roster

// Input is the frozen snapshot the solver consumes for one invocation.
type Input struct {
	WeekStart     Date
	Shops         []Shop
	Employees     []Employee
	LeaveRequests []LeaveRequest

	ExcludedEmployeeIDs map[string]bool
	AMOnlyEmployeeIDs   map[string]bool
	FixedDaysOff        map[string]map[int]bool // employeeID -> weekday(int) -> true
}

// Config carries the tunable numeric policy the phases read instead of
// embedding literals.
type Config struct {
	// SundayCountsTowardCap: Sunday hours never count toward the
	// weekday cap by default; every shipped config leaves this false.
	SundayCountsTowardCap bool

	// GapFillerMaxPasses bounds phase 8's sweep (five passes by default).
	GapFillerMaxPasses int

	// SundayOfferThreshold/Hours: a full-timer at or above this weekday
	// total may be offered one Sunday shift of this length, a targeted
	// late-pass fix.
	SundayOfferThreshold Hours
	SundayOfferHours     Hours

	// SaturdayOfferThreshold/Hours: a part-timer below this weekday total
	// may be offered one Saturday morning of this length on a blended shop.
	SaturdayOfferThreshold Hours
	SaturdayOfferHours     Hours
}

// DefaultConfig holds the policy's baseline numeric values.
func DefaultConfig() Config {
	return Config{
		SundayCountsTowardCap:  false,
		GapFillerMaxPasses:     5,
		SundayOfferThreshold:   HoursOf(38),
		SundayOfferHours:       HoursOf(7.5),
		SaturdayOfferThreshold: CapPartTime,
		SaturdayOfferHours:     HoursOf(6),
	}
}

// Validate fails fast on malformed input, before any phase runs,
// with a single descriptive error.
func (in Input) Validate() error {
	if in.WeekStart.IsZero() {
		return inputErrorf("weekStart", "must be set")
	}
	if _, err := NewWeek(in.WeekStart); err != nil {
		return &InputError{Field: "weekStart", Reason: err.Error()}
	}

	shopIDs := make(map[string]bool, len(in.Shops))
	for _, s := range in.Shops {
		if s.ID == "" {
			return inputErrorf("shops", "shop with empty id")
		}
		shopIDs[s.ID] = true
		for wd, dh := range s.Hours {
			if dh.Closed {
				if !dh.Demand.IsZero() {
					return inputErrorf("shops", "shop %s: weekday %v is closed but declares demand", s.ID, wd)
				}
				continue
			}
			if dh.Close <= dh.Open {
				return inputErrorf("shops", "shop %s: weekday %v has close <= open", s.ID, wd)
			}
		}
	}

	for _, e := range in.Employees {
		if e.ID == "" {
			return inputErrorf("employees", "employee with empty id")
		}
		if e.PrimaryShopID != "" && !shopIDs[e.PrimaryShopID] {
			return inputErrorf("employees", "employee %s references unknown primary shop %s", e.ID, e.PrimaryShopID)
		}
		for _, sid := range e.SecondaryShopIDs {
			if !shopIDs[sid] {
				return inputErrorf("employees", "employee %s references unknown secondary shop %s", e.ID, sid)
			}
		}
	}

	for _, lr := range in.LeaveRequests {
		if lr.End.Before(lr.Start) {
			return inputErrorf("leaveRequests", "employee %s: leave end before start", lr.EmployeeID)
		}
	}

	return nil
}
