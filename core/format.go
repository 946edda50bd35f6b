package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultFormat is the date template applied when a field configures none.
const DefaultFormat = "YYYY/MM/DD"

// FormatDate substitutes the literal tokens YYYY, MM and DD in a template
// with the zero-padded parts of the date. Unknown text passes through
// verbatim.
func FormatDate(template string, date time.Time) string {
	y, m, d := date.Date()
	r := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", y),
		"MM", fmt.Sprintf("%02d", int(m)),
		"DD", fmt.Sprintf("%02d", d),
	)
	return r.Replace(template)
}

// FormatClock renders an hour/minute pair as HH:MM.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseDate reverses FormatDate for the same template: it reads the digits
// at each token's position in the formatted string. Tokens substitute to
// the same width they occupy in the template, so offsets line up.
func ParseDate(template, value string) (time.Time, bool) {
	yi := strings.Index(template, "YYYY")
	mi := strings.Index(template, "MM")
	di := strings.Index(template, "DD")
	if yi < 0 || mi < 0 || di < 0 || len(value) != len(template) {
		return time.Time{}, false
	}
	y, err1 := strconv.Atoi(value[yi : yi+4])
	m, err2 := strconv.Atoi(value[mi : mi+2])
	d, err3 := strconv.Atoi(value[di : di+2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		// Day overflowed the month (for example 02-30).
		return time.Time{}, false
	}
	return t, true
}

var clockPattern = regexp.MustCompile(`(\d{2}):(\d{2})$`)

// ParseClock extracts a trailing HH:MM from an input value, as written by
// the time and datetime formatters.
func ParseClock(value string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

var boundPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// ParseBound interprets a configured minDate/maxDate: a YYYY-M-D literal or
// the sentinel "today". Anything else means no bound rather than an error.
func ParseBound(value string, now time.Time) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if strings.EqualFold(value, "today") {
		t := Midnight(now)
		return &t
	}
	m := boundPattern.FindStringSubmatch(value)
	if m == nil {
		return nil
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	return &t
}

// RoundToStep quantizes a raw minute to the nearest step multiple, wrapping
// at 60 so 58 with step 30 becomes 0 rather than a nonexistent 60.
func RoundToStep(minute, step int) int {
	if step <= 0 {
		step = DefaultMinuteStep
	}
	return ((minute + step/2) / step * step) % 60
}
