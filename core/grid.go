package core

import "time"

// GridCells is the fixed number of day cells in a rendered month: six full
// weeks, regardless of month length or starting weekday. Keyboard row
// arithmetic (±7) depends on this never changing.
const GridCells = 42

// ViewMonth is the displayed month anchor. It deliberately carries no
// day-of-month: stepping months on a date that holds a day silently
// overflows when the day exceeds the target month's length (the 31st
// problem), so the anchor is a bare (year, month) pair.
type ViewMonth struct {
	Year  int
	Month time.Month
}

func ViewMonthOf(t time.Time) ViewMonth {
	y, m, _ := t.Date()
	return ViewMonth{Year: y, Month: m}
}

// First returns the first day of the month at midnight UTC.
func (v ViewMonth) First() time.Time {
	return time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month. Day zero of the following
// month is the last day of this one.
func (v ViewMonth) Days() int {
	return time.Date(v.Year, v.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (v ViewMonth) Next() ViewMonth {
	return ViewMonthOf(time.Date(v.Year, v.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

func (v ViewMonth) Prev() ViewMonth {
	return ViewMonthOf(time.Date(v.Year, v.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

func (v ViewMonth) Contains(t time.Time) bool {
	y, m, _ := t.Date()
	return y == v.Year && m == v.Month
}

// DayCell is one derived slot of the rendered grid. Flags are computed per
// render and never stored on the picker.
type DayCell struct {
	Date       time.Time
	OtherMonth bool
	Today      bool
	Selected   bool
	Disabled   bool
	Sunday     bool
	Saturday   bool
	Holiday    bool
}

// MonthGrid returns the 42 dates shown for a view month: trailing days of
// the previous month back from its last day, the full current month, then
// next-month days up to 42. weekStart is the weekday rendered in column
// zero (Sunday for the default locale).
func MonthGrid(v ViewMonth, weekStart time.Weekday) []time.Time {
	first := v.First()
	lead := int(first.Weekday()-weekStart+7) % 7

	out := make([]time.Time, 0, GridCells)
	for i := lead; i > 0; i-- {
		out = append(out, first.AddDate(0, 0, -i))
	}
	for d := 0; d < v.Days(); d++ {
		out = append(out, first.AddDate(0, 0, d))
	}
	next := v.Next().First()
	for len(out) < GridCells {
		out = append(out, next)
		next = next.AddDate(0, 0, 1)
	}
	return out
}

// Midnight truncates a moment to its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two moments fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
