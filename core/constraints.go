package core

import "time"

// HolidayFunc reports whether a calendar day is a holiday. Holiday status
// is a display flag only; it never blocks selection. The zero value (nil)
// means no day is a holiday.
type HolidayFunc func(time.Time) bool

// Bounds is the selectable date range. A nil side means unbounded. Both
// sides are inclusive and compared at day granularity.
type Bounds struct {
	Min *time.Time
	Max *time.Time
}

// Disabled reports whether a date falls outside the bounds. Disabled days
// are excluded from keyboard traversal and cannot be committed.
func (b Bounds) Disabled(date time.Time) bool {
	d := Midnight(date)
	if b.Min != nil && d.Before(Midnight(*b.Min)) {
		return true
	}
	if b.Max != nil && d.After(Midnight(*b.Max)) {
		return true
	}
	return false
}

// Constraints annotates grid dates with selectability and styling flags.
type Constraints struct {
	Bounds  Bounds
	Holiday HolidayFunc
}

func (c Constraints) IsHoliday(date time.Time) bool {
	return c.Holiday != nil && c.Holiday(date)
}

// Evaluate fills the constraint-derived flags of a cell for a date.
func (c Constraints) Evaluate(date time.Time) DayCell {
	wd := date.Weekday()
	return DayCell{
		Date:     date,
		Disabled: c.Bounds.Disabled(date),
		Sunday:   wd == time.Sunday,
		Saturday: wd == time.Saturday,
		Holiday:  c.IsHoliday(date),
	}
}
