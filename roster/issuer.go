/*
issuer.go - Shift issuer

PURPOSE:
  The only code path allowed to construct a Shift. Computes hours,
  applies the duplicate guard and the 0.5h minimum,
  assigns the next monotonic id, and folds the shift into the ledger
  and slot tracker in one call. Idempotent: re-issuing an identical
  (employee, day, start, end) shift returns the existing one rather
  than erroring, so phases never need to precheck.

SEE ALSO:
  - ledger.go, slots.go: the two structures Issue updates
  - phase10_balance.go: the only caller that mutates an issued Shift afterward
*/
package roster

// ShiftIssuer owns the monotonic shift counter and the full shift list.
type ShiftIssuer struct {
	ledger *HourLedger
	slots  *SlotTracker
	nextID int
	shifts []Shift
	seen   map[dedupeKey]int // -> index in shifts
}

type dedupeKey struct {
	employeeID string
	day        Date
	start      ClockTime
	end        ClockTime
}

// NewShiftIssuer wires an issuer to the engine's shared ledger and slots.
func NewShiftIssuer(ledger *HourLedger, slots *SlotTracker) *ShiftIssuer {
	return &ShiftIssuer{
		ledger: ledger,
		slots:  slots,
		seen:   make(map[dedupeKey]int),
	}
}

// Issue appends a shift for (shop, employee, day, start, end), refusing
// sub-0.5h durations and deduplicating identical attempts. midpoint is
// the shop's AM/PM split, used to classify the shift.
func (si *ShiftIssuer) Issue(shopID, employeeID string, day Date, start, end ClockTime, midpoint ClockTime) (Shift, bool) {
	hours := Minutes(int(end) - int(start))
	if hours.LessThan(HoursOf(0.5)) {
		return Shift{}, false
	}

	key := dedupeKey{employeeID: employeeID, day: day, start: start, end: end}
	if idx, ok := si.seen[key]; ok {
		return si.shifts[idx], true
	}

	class := Classify(start, end, midpoint)
	si.nextID++
	s := Shift{
		ID:         si.nextID,
		ShopID:     shopID,
		EmployeeID: employeeID,
		Date:       day,
		Weekday:    day.Weekday(),
		Start:      start,
		End:        end,
		Hours:      hours,
		Class:      class,
	}

	si.shifts = append(si.shifts, s)
	si.seen[key] = len(si.shifts) - 1

	si.ledger.Record(employeeID, day, hours, s.ShiftCountContribution())
	am, pm := s.DaySlotsConsumed()
	si.slots.DecrementFor(shopID, day, am, pm)

	return s, true
}

// Shifts returns every issued shift, in issuance order.
func (si *ShiftIssuer) Shifts() []Shift {
	return si.shifts
}

// ShiftsFor returns the shifts issued to one employee, in issuance order.
func (si *ShiftIssuer) ShiftsFor(employeeID string) []Shift {
	var out []Shift
	for _, s := range si.shifts {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out
}

// Trim shortens shift id's end time and marks it overtime-trimmed; the
// sole mutation path for an already-issued shift (phase 10 only).
func (si *ShiftIssuer) Trim(id int, newEnd ClockTime, newHours Hours) {
	for i := range si.shifts {
		if si.shifts[i].ID == id {
			si.shifts[i].End = newEnd
			si.shifts[i].Hours = newHours
			si.shifts[i].Overtime = true
			return
		}
	}
}
