package holiday

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	text := "国民の祝日・休日月日,国民の祝日・休日名称\r\n" +
		"2024/1/1,元日\r\n" +
		"2024/2/23,天皇誕生日\r\n" +
		"not a date,whatever\r\n" +
		"\r\n" +
		"2024/11/3,文化の日"

	set := Parse(text)
	if len(set) != 3 {
		t.Fatalf("parsed %d holidays, want 3", len(set))
	}
	if !set.Contains(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2024/1/1 to be a holiday at any time of day")
	}
	if !set.Contains(time.Date(2024, 2, 23, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2024/2/23")
	}
	if set.Contains(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("2024/1/2 is not a holiday")
	}
}

func TestParseZeroPaddedAndUnpadded(t *testing.T) {
	set := Parse("2024/01/08,成人の日\n2024/7/15,海の日\n")
	if !set.Contains(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("zero-padded record not parsed")
	}
	if !set.Contains(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unpadded record not parsed")
	}
}

func TestParseEmptyAndGarbage(t *testing.T) {
	if set := Parse(""); len(set) != 0 {
		t.Fatalf("empty text produced %d entries", len(set))
	}
	if set := Parse("header\njunk,junk\n12/34,nope"); len(set) != 0 {
		t.Fatalf("garbage text produced %d entries", len(set))
	}
}

func TestLoaderFallsBackToEmptySet(t *testing.T) {
	// No URL, no cache: the picker still gets a set, never an error.
	set := Loader{}.Load(t.Context())
	if set == nil {
		t.Fatalf("expected empty set, got nil")
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %d entries", len(set))
	}
}
