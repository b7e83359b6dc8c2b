/*
engine.go - Engine: the owner of all shared mutable solver state

PURPOSE:
  Engine owns the ledger, slot tracker, shift issuer, and oracle for
  one Solve invocation, plus read-only indexes over the input. Phase
  files are methods on *Engine; Solve runs them in a fixed order.

SEE ALSO:
  - phase1_solo.go ... phase10_balance.go: the ten phase methods
  - result.go: builds the output record from engine state after phase 10
*/
package roster

import (
	"context"

	"github.com/google/uuid"
)

// Engine owns every mutable structure a solver run touches, plus
// read-only indexes built once at construction.
type Engine struct {
	input Input
	cfg   Config
	week  Week

	ledger *HourLedger
	slots  *SlotTracker
	issuer *ShiftIssuer
	oracle *Oracle

	shopByID     map[string]Shop
	employeeByID map[string]Employee

	runID string
	log   *PhaseLogger
}

// newEngine builds an Engine from a validated Input and Config.
func newEngine(input Input, cfg Config, logger *PhaseLogger) (*Engine, error) {
	week, err := NewWeek(input.WeekStart)
	if err != nil {
		return nil, &InputError{Field: "weekStart", Reason: err.Error()}
	}

	ledger := NewHourLedger()
	slots := NewSlotTracker(input.Shops, week)
	issuer := NewShiftIssuer(ledger, slots)
	oracle := NewOracle(input, cfg, ledger)

	shopByID := make(map[string]Shop, len(input.Shops))
	for _, s := range input.Shops {
		shopByID[s.ID] = s
	}
	employeeByID := make(map[string]Employee, len(input.Employees))
	for _, e := range input.Employees {
		employeeByID[e.ID] = e
	}

	return &Engine{
		input:        input,
		cfg:          cfg,
		week:         week,
		ledger:       ledger,
		slots:        slots,
		issuer:       issuer,
		oracle:       oracle,
		shopByID:     shopByID,
		employeeByID: employeeByID,
		runID:        uuid.NewString(),
		log:          logger,
	}, nil
}

// shopsByRole returns the active shops tagged with role, in input order.
func (e *Engine) shopsByRole(role RosterRole) []Shop {
	var out []Shop
	for _, s := range e.input.Shops {
		if s.Active && s.Role == role {
			out = append(out, s)
		}
	}
	return out
}

// employeesByIDs resolves an ordered ID slice to Employee records,
// silently skipping unknown or inactive ids. Phase-level ordering
// comes entirely from the ID slice itself — usually a shop's
// PrimaryEmployees/SecondaryEmployees field.
func (e *Engine) employeesByIDs(ids []string) []Employee {
	out := make([]Employee, 0, len(ids))
	for _, id := range ids {
		if emp, ok := e.employeeByID[id]; ok && emp.Active {
			out = append(out, emp)
		}
	}
	return out
}

// Solve runs the full ten-phase pipeline and returns the result record.
// ctx is honored only at phase boundaries: a cancellation takes effect
// between phases, never mid-phase.
func Solve(ctx context.Context, input Input, cfg Config) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	logger := NewPhaseLogger()
	eng, err := newEngine(input, cfg, logger)
	if err != nil {
		return Result{}, err
	}

	phases := []struct {
		name string
		run  func()
	}{
		{"phase1_solo_paired", eng.phase1SoloPaired},
		{"phase2_special_saturday", eng.phase2SpecialSaturday},
		{"phase3_two_person", eng.phase3TwoPerson},
		{"phase4_flagship", eng.phase4Flagship},
		{"phase5_small_team", eng.phase5SmallTeam},
		{"phase6_7_blended", eng.phase6And7Blended},
		{"phase8_gap_filler", eng.phase8GapFiller},
		{"phase9_failsafe", eng.phase9Failsafe},
		{"phase10_balance", eng.phase10Balance},
	}

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		eng.log.Phase(p.name)
		p.run()
	}

	return eng.buildResult(), nil
}
