package core

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestBoundsDisabled(t *testing.T) {
	b := Bounds{Min: ptr(day(2024, 1, 10)), Max: ptr(day(2024, 1, 20))}

	if b.Disabled(day(2024, 1, 10)) || b.Disabled(day(2024, 1, 20)) {
		t.Fatalf("bounds must be inclusive")
	}
	if !b.Disabled(day(2024, 1, 9)) {
		t.Fatalf("day before min should be disabled")
	}
	if !b.Disabled(day(2024, 1, 21)) {
		t.Fatalf("day after max should be disabled")
	}
	if (Bounds{}).Disabled(day(1900, 1, 1)) {
		t.Fatalf("empty bounds disable nothing")
	}
}

func TestBoundsCompareAtDayGranularity(t *testing.T) {
	min := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	b := Bounds{Min: &min}
	if b.Disabled(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("same calendar day as min should be enabled")
	}
}

func TestWideningBoundsIsMonotonic(t *testing.T) {
	narrow := Bounds{Min: ptr(day(2024, 1, 10)), Max: ptr(day(2024, 1, 20))}
	wide := Bounds{Min: ptr(day(2024, 1, 5)), Max: ptr(day(2024, 1, 25))}

	for d := 1; d <= 31; d++ {
		date := day(2024, 1, d)
		if !narrow.Disabled(date) && wide.Disabled(date) {
			t.Fatalf("widening bounds disabled %v", date)
		}
	}
}

func TestHolidayIsDisplayOnly(t *testing.T) {
	holiday := day(2024, 1, 1)
	c := Constraints{Holiday: func(t time.Time) bool { return SameDay(t, holiday) }}

	cell := c.Evaluate(holiday)
	if !cell.Holiday {
		t.Fatalf("expected holiday flag")
	}
	if cell.Disabled {
		t.Fatalf("holiday must not block selection")
	}
}

func TestWeekendFlags(t *testing.T) {
	c := Constraints{}
	sun := c.Evaluate(day(2024, 1, 7))
	sat := c.Evaluate(day(2024, 1, 6))
	mon := c.Evaluate(day(2024, 1, 8))

	if !sun.Sunday || sun.Saturday {
		t.Fatalf("sunday flags wrong: %+v", sun)
	}
	if !sat.Saturday || sat.Sunday {
		t.Fatalf("saturday flags wrong: %+v", sat)
	}
	if mon.Saturday || mon.Sunday {
		t.Fatalf("monday flagged as weekend")
	}
}
