/*
logging.go - Structured, purely observational phase logging

PURPOSE:
  Phase starts, trims applied or blocked in phase 10, and slots still
  unfilled when the result is built are logged through zerolog.
  ShiftIssued is defined but no phase calls it, so individual shift
  issuance is not logged. This is observational only: nothing in the
  solver reads back a log line, and logging never blocks, so it cannot
  affect the solver's determinism.

SEE ALSO:
  - engine.go: Engine.log.Phase called once per phase
  - phase10_balance.go: logs each trim applied or blocked
  - result.go: logs each slot left unfilled
*/
package roster

import (
	"os"

	"github.com/rs/zerolog"
)

// PhaseLogger wraps a zerolog.Logger scoped to one Solve invocation.
type PhaseLogger struct {
	log zerolog.Logger
}

// NewPhaseLogger builds a logger writing structured JSON lines to
// stderr, consistent with the rest of the ambient stack's preference
// for structured over ad-hoc log output.
func NewPhaseLogger() *PhaseLogger {
	return &PhaseLogger{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

func (l *PhaseLogger) Phase(name string) {
	l.log.Debug().Str("phase", name).Msg("phase start")
}

func (l *PhaseLogger) ShiftIssued(phase, shopID, employeeID string, day Date, class Classification, hours Hours) {
	l.log.Info().
		Str("phase", phase).
		Str("shop", shopID).
		Str("employee", employeeID).
		Str("date", day.String()).
		Str("class", string(class)).
		Float64("hours", hours.Float64()).
		Msg("shift issued")
}

func (l *PhaseLogger) SlotUnfilled(shopID string, day Date, am, pm int) {
	l.log.Warn().
		Str("shop", shopID).
		Str("date", day.String()).
		Int("am", am).
		Int("pm", pm).
		Msg("slot unfilled after gap filler")
}

func (l *PhaseLogger) TrimApplied(employeeID string, shiftID int, excess, newHours Hours) {
	l.log.Info().
		Str("employee", employeeID).
		Int("shift", shiftID).
		Float64("excess", excess.Float64()).
		Float64("newHours", newHours.Float64()).
		Msg("overtime trim applied")
}

func (l *PhaseLogger) TrimBlocked(employeeID string, shiftID int, wouldBeHours Hours) {
	l.log.Warn().
		Str("employee", employeeID).
		Int("shift", shiftID).
		Float64("wouldBeHours", wouldBeHours.Float64()).
		Msg("overtime trim blocked by minimum shift length")
}
