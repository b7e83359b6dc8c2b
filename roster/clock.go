/*
clock.go - Day-granularity calendar values and the weekly clock

PURPOSE:
  The solver reasons about calendar dates and weekdays, never about
  timestamps finer than a minute-of-day start/end pair. Date wraps
  time.Time at day granularity so every comparison, addition, and map
  key across the engine uses the same normalized representation.

KEY CONCEPTS:
  Date:      a calendar day, always normalized to UTC midnight.
  Week:      the seven Date values for a roster week, Monday first.
  ClockTime: a minute-of-day value used for shift start/end times.

SEE ALSO:
  - shift.go: builds Shift.Start/End from ClockTime values
  - engine.go: Week is threaded through every phase
*/
package roster

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day component.
type Date struct {
	t time.Time
}

// NewDate normalizes year/month/day to a UTC midnight Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime truncates t to its calendar day.
func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) AddDays(n int) Date  { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Between reports whether d falls within [from, to] inclusive.
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

func (d Date) String() string { return d.t.Format("2006-01-02") }

// MarshalJSON renders Date as an ISO calendar date.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON parses an ISO calendar date, the inverse of MarshalJSON.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses an ISO "2006-01-02" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("roster: invalid date %q: %w", s, err)
	}
	return DateFromTime(t), nil
}

// Week is the seven calendar dates of a roster week, Monday through Sunday.
type Week struct {
	Start Date // always a Monday
	Days  [7]Date
}

// NewWeek builds a Week from its Monday start date.
func NewWeek(monday Date) (Week, error) {
	if monday.Weekday() != time.Monday {
		return Week{}, fmt.Errorf("roster: week start %s is not a Monday", monday)
	}
	w := Week{Start: monday}
	for i := range w.Days {
		w.Days[i] = monday.AddDays(i)
	}
	return w, nil
}

// End returns the Sunday that closes the week.
func (w Week) End() Date { return w.Days[6] }

// DayPriority is the fixed gap-filler visitation order: hardest-to-fill
// weekend days first, consuming remaining slack while employees still
// have headroom.
var DayPriority = [7]time.Weekday{
	time.Saturday, time.Friday, time.Thursday, time.Wednesday,
	time.Tuesday, time.Monday, time.Sunday,
}

// DatesByPriority returns the week's Date values ordered per DayPriority.
func (w Week) DatesByPriority() []Date {
	out := make([]Date, 0, 7)
	for _, wd := range DayPriority {
		for _, d := range w.Days {
			if d.Weekday() == wd {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// ClockTime is a minute-of-day value (0..1439), used for shift boundaries.
type ClockTime int

// NewClockTime builds a ClockTime from hour and minute.
func NewClockTime(hour, minute int) ClockTime { return ClockTime(hour*60 + minute) }

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

// MarshalJSON renders ClockTime as "HH:MM".
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

// UnmarshalJSON parses an "HH:MM" string, the inverse of MarshalJSON.
func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := parseClockTimeString(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func parseClockTimeString(s string) (ClockTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("roster: invalid clock time %q: %w", s, err)
	}
	return NewClockTime(hour, minute), nil
}

// IsMorningStart reports whether c falls in the morning half of the day,
// relative to a shop's midpoint (the AM/PM split used by the feasibility
// oracle's morning-only/evening-only check).
func (c ClockTime) IsMorningStart(midpoint ClockTime) bool { return c < midpoint }
