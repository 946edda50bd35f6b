// Package holiday loads the public-holiday list the calendar flags. The
// source is a line-oriented CSV where each record starts with a YYYY/M/D
// token; everything after the date is a label the picker never needs.
package holiday

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Key identifies one calendar day. Lookups go through a comparable key
// rather than time.Time so a moment in any timezone maps to its civil day
// exactly once.
type Key struct {
	Year  int
	Month time.Month
	Day   int
}

func KeyOf(t time.Time) Key {
	y, m, d := t.Date()
	return Key{Year: y, Month: m, Day: d}
}

// Set is a holiday membership table. Its Contains method satisfies the
// picker's disabled-date predicate shape.
type Set map[Key]struct{}

func (s Set) Contains(t time.Time) bool {
	_, ok := s[KeyOf(t)]
	return ok
}

func (s Set) Add(k Key) {
	s[k] = struct{}{}
}

var recordPattern = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})`)

// Parse extracts the date keys from CSV text. Records that do not begin
// with a date token (headers, blank lines) are skipped, not errors. CRLF
// line endings are tolerated.
func Parse(text string) Set {
	out := Set{}
	for _, line := range strings.Split(text, "\n") {
		m := recordPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		out.Add(Key{Year: y, Month: time.Month(mo), Day: d})
	}
	return out
}
