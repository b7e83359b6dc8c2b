/*
amount.go - Decimal-backed hour quantities

PURPOSE:
  Ledger totals accumulate across ten solver phases through repeated
  addition, subtraction, and a single trim. A bare float64 drifts over
  that many operations, so Hours wraps decimal.Decimal instead: every
  arithmetic op stays exact to the minute.

KEY CONCEPTS:
  Hours:   a non-negative-by-convention quantity of worked time.
  Minutes: the integer unit shift durations are measured in internally;
           Hours is minutes/60, surfaced at API boundaries.

SEE ALSO:
  - ledger.go: HourLedger fields are all Hours
  - shift.go: Shift.Hours is computed from start/end via Minutes
*/
package roster

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Hours is a precise quantity of worked time, always non-negative in
// practice (the engine never constructs a negative Hours value).
type Hours struct {
	v decimal.Decimal
}

// Minutes builds Hours from a whole number of minutes.
func Minutes(m int) Hours {
	return Hours{v: decimal.NewFromInt(int64(m)).Div(decimal.NewFromInt(60))}
}

// HoursOf builds Hours from a float literal, used for constants like
// contract caps (40, 42, 30) and minimum shift length (4).
func HoursOf(h float64) Hours {
	return Hours{v: decimal.NewFromFloat(h)}
}

// Zero is the additive identity.
var Zero = Hours{v: decimal.Zero}

func (h Hours) Add(other Hours) Hours { return Hours{v: h.v.Add(other.v)} }
func (h Hours) Sub(other Hours) Hours { return Hours{v: h.v.Sub(other.v)} }

func (h Hours) GreaterThan(other Hours) bool   { return h.v.GreaterThan(other.v) }
func (h Hours) GreaterOrEqual(other Hours) bool { return h.v.GreaterThanOrEqual(other.v) }
func (h Hours) LessThan(other Hours) bool      { return h.v.LessThan(other.v) }
func (h Hours) LessOrEqual(other Hours) bool   { return h.v.LessThanOrEqual(other.v) }

// Float64 surfaces the value for output rendering and log fields.
func (h Hours) Float64() float64 {
	f, _ := h.v.Float64()
	return f
}

// Minutes returns the whole-minute count, rounded to the nearest minute.
func (h Hours) Minutes() int {
	return int(h.v.Mul(decimal.NewFromInt(60)).Round(0).IntPart())
}

func (h Hours) String() string { return fmt.Sprintf("%sh", h.v.StringFixed(2)) }

// MarshalJSON renders Hours as a plain JSON number.
func (h Hours) MarshalJSON() ([]byte, error) {
	return []byte(h.v.StringFixed(2)), nil
}

// UnmarshalJSON parses a plain JSON number, the inverse of MarshalJSON.
func (h *Hours) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	h.v = d
	return nil
}
