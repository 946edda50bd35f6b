package core

import (
	"testing"
	"time"
)

func TestFormatDateTokens(t *testing.T) {
	d := day(2024, 3, 5)
	cases := []struct {
		template string
		want     string
	}{
		{"YYYY/MM/DD", "2024/03/05"},
		{"YYYY-MM-DD", "2024-03-05"},
		{"DD.MM.YYYY", "05.03.2024"},
		{"YYYY年MM月DD日", "2024年03月05日"},
	}
	for _, c := range cases {
		if got := FormatDate(c.template, d); got != c.want {
			t.Fatalf("template %q: got %q, want %q", c.template, got, c.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	template := "YYYY-MM-DD"
	dates := []time.Time{
		day(2024, 1, 1),
		day(2024, 2, 29),
		day(1999, 12, 31),
		day(2024, 3, 10),
	}
	for _, d := range dates {
		parsed, ok := ParseDate(template, FormatDate(template, d))
		if !ok {
			t.Fatalf("round trip failed to parse %v", d)
		}
		if !SameDay(parsed, d) {
			t.Fatalf("round trip %v -> %v", d, parsed)
		}
	}
}

func TestParseDateRejectsInvalid(t *testing.T) {
	bad := []string{"2023-02-30", "2024-13-01", "2024-00-10", "garbage!!!", "2024-1-5"}
	for _, s := range bad {
		if _, ok := ParseDate("YYYY-MM-DD", s); ok {
			t.Fatalf("expected %q to fail", s)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9, 5); got != "09:05" {
		t.Fatalf("got %q", got)
	}
}

func TestParseClock(t *testing.T) {
	if h, m, ok := ParseClock("09:30"); !ok || h != 9 || m != 30 {
		t.Fatalf("parse 09:30 = %d:%d ok=%v", h, m, ok)
	}
	// datetime values carry a trailing clock
	if h, m, ok := ParseClock("2024/03/10 09:30"); !ok || h != 9 || m != 30 {
		t.Fatalf("parse datetime clock = %d:%d ok=%v", h, m, ok)
	}
	for _, s := range []string{"", "2024/03/10", "25:00", "10:75", "9:3"} {
		if _, _, ok := ParseClock(s); ok {
			t.Fatalf("expected %q to fail", s)
		}
	}
}

func TestParseBound(t *testing.T) {
	now := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)

	if got := ParseBound("today", now); got == nil || !got.Equal(day(2024, 1, 15)) {
		t.Fatalf("today bound = %v", got)
	}
	if got := ParseBound("2024-1-5", now); got == nil || !got.Equal(day(2024, 1, 5)) {
		t.Fatalf("literal bound = %v", got)
	}
	// Malformed bounds mean "no bound", never an error.
	for _, s := range []string{"", "soon", "2024/01/05", "01-05-2024"} {
		if got := ParseBound(s, now); got != nil {
			t.Fatalf("expected no bound for %q, got %v", s, got)
		}
	}
}

func TestRoundToStep(t *testing.T) {
	cases := []struct {
		minute, step, want int
	}{
		{0, 30, 0},
		{14, 30, 0},
		{15, 30, 30},
		{44, 30, 30},
		{45, 30, 0}, // wraps past the hour
		{58, 30, 0},
		{7, 15, 0},
		{8, 15, 15},
	}
	for _, c := range cases {
		if got := RoundToStep(c.minute, c.step); got != c.want {
			t.Fatalf("round(%d, step %d) = %d, want %d", c.minute, c.step, got, c.want)
		}
	}
}
