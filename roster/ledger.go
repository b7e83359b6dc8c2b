/*
ledger.go - Running employee hour totals

PURPOSE:
  Tracks four employee-keyed quantities: total minutes, weekday-only
  minutes, Sunday-only minutes, and shifts-issued per day. Every
  update happens through Record, called once per issued shift by the
  shift issuer; phase 10 is the one caller allowed to reverse part of
  an update, via ApplyTrim.

SEE ALSO:
  - issuer.go: the sole caller of Record on the happy path
  - phase10_balance.go: the sole caller of ApplyTrim
  - availability.go: reads WeekdayOf/ShiftCountOn, never mutates
*/
package roster

import "time"

type employeeTotals struct {
	Total      Hours
	Weekday    Hours
	Sunday     Hours
	DailyCount map[Date]int
}

// HourLedger is append-then-decrement-monotone: every field only
// grows except during phase 10's single trim per over-contract
// employee.
type HourLedger struct {
	byEmployee map[string]*employeeTotals
}

// NewHourLedger returns an empty ledger, ready for a fresh solver run.
func NewHourLedger() *HourLedger {
	return &HourLedger{byEmployee: make(map[string]*employeeTotals)}
}

func (l *HourLedger) entry(employeeID string) *employeeTotals {
	e, ok := l.byEmployee[employeeID]
	if !ok {
		e = &employeeTotals{DailyCount: make(map[Date]int)}
		l.byEmployee[employeeID] = e
	}
	return e
}

// Record applies one issued shift's contribution to the ledger: total
// grows by h, weekday or Sunday grows by h, and the daily count grows
// by the shift's count contribution (1, or 2 for a full day).
func (l *HourLedger) Record(employeeID string, d Date, h Hours, countContribution int) {
	e := l.entry(employeeID)
	e.Total = e.Total.Add(h)
	if d.Weekday() == time.Sunday {
		e.Sunday = e.Sunday.Add(h)
	} else {
		e.Weekday = e.Weekday.Add(h)
	}
	e.DailyCount[d] += countContribution
}

// ApplyTrim reverses `excess` hours of weekday time from a trimmed
// shift. Phase 10 only.
func (l *HourLedger) ApplyTrim(employeeID string, excess Hours) {
	e := l.entry(employeeID)
	e.Total = e.Total.Sub(excess)
	e.Weekday = e.Weekday.Sub(excess)
}

func (l *HourLedger) TotalOf(employeeID string) Hours { return l.entry(employeeID).Total }
func (l *HourLedger) WeekdayOf(employeeID string) Hours { return l.entry(employeeID).Weekday }
func (l *HourLedger) SundayOf(employeeID string) Hours  { return l.entry(employeeID).Sunday }

// ShiftCountOn returns the shift-count contribution already recorded
// for employeeID on day d, checked against the daily cap of 2.
func (l *HourLedger) ShiftCountOn(employeeID string, d Date) int {
	return l.entry(employeeID).DailyCount[d]
}
