package core

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 15, 10, 42, 0, 0, time.UTC)

func datePicker(cfg Config) *Picker     { return NewPicker("p-date", ModeDate, cfg) }
func timePicker(cfg Config) *Picker     { return NewPicker("p-time", ModeTime, cfg) }
func dateTimePicker(cfg Config) *Picker { return NewPicker("p-dt", ModeDateTime, cfg) }

func TestOpenFocusPriority(t *testing.T) {
	// No selection: today's cell takes focus.
	p := datePicker(Config{})
	p.Open("", testNow)
	cell, ok := p.FocusedCell(testNow)
	if !ok || !cell.Today {
		t.Fatalf("expected focus on today, got %+v", cell)
	}

	// A selection beats today.
	sel := day(2024, 3, 20)
	p2 := datePicker(Config{})
	p2.Open("", testNow)
	p2.CommitDay(sel, testNow)
	p2.Open("", testNow)
	cell, _ = p2.FocusedCell(testNow)
	if !SameDay(cell.Date, sel) {
		t.Fatalf("expected focus on selected day, got %v", cell.Date)
	}

	// Today disabled: first enabled current-month cell.
	p3 := datePicker(Config{Bounds: Bounds{Min: ptr(day(2024, 3, 20))}})
	p3.Open("", testNow)
	cell, _ = p3.FocusedCell(testNow)
	if !SameDay(cell.Date, day(2024, 3, 20)) {
		t.Fatalf("expected focus on first enabled cell, got %v", cell.Date)
	}
}

func TestDateModeClosesOnCommit(t *testing.T) {
	p := datePicker(Config{})
	p.Open("", testNow)

	res := p.CommitDay(day(2024, 3, 10), testNow)
	if res.Action != ActionCommitted || !res.Closed {
		t.Fatalf("expected closing commit, got %+v", res)
	}
	if p.IsOpen() {
		t.Fatalf("date mode should close after day commit")
	}
	if res.Value != "2024/03/10" {
		t.Fatalf("value = %q", res.Value)
	}
}

func TestDateTimeModeStaysOpenAfterDayCommit(t *testing.T) {
	p := dateTimePicker(Config{MinuteStep: 30})
	p.Open("", testNow)

	res := p.CommitDay(day(2024, 3, 10), testNow)
	if res.Closed || !p.IsOpen() {
		t.Fatalf("datetime mode must stay open so a time can follow")
	}

	if res := p.SelectHour(9); !res.ValueChanged {
		t.Fatalf("hour selection should update the value")
	}
	res = p.SelectMinute(30)
	if res.Value != "2024/03/10 09:30" {
		t.Fatalf("value = %q, want 2024/03/10 09:30", res.Value)
	}
	if !p.IsOpen() {
		t.Fatalf("time selection must not close the popup")
	}
}

func TestCommitRejectedOutsideBounds(t *testing.T) {
	p := datePicker(Config{Bounds: Bounds{Min: ptr(day(2024, 1, 10))}})
	p.Open("", testNow)

	res := p.CommitDay(day(2024, 1, 5), testNow)
	if res.Action != ActionRejected {
		t.Fatalf("expected rejection, got %+v", res)
	}
	if p.Selection().Date != nil {
		t.Fatalf("selection must stay unchanged on rejection")
	}
}

func TestTodayRejectedWhenOutOfBounds(t *testing.T) {
	p := datePicker(Config{Bounds: Bounds{Max: ptr(day(2024, 3, 1))}})
	p.Open("", testNow)

	res := p.Today(testNow)
	if res.Action != ActionRejected {
		t.Fatalf("expected rejection, got %+v", res)
	}
	if p.Selection().Date != nil {
		t.Fatalf("selection must stay unchanged")
	}
}

func TestTodayJumpsViewAndSelects(t *testing.T) {
	p := datePicker(Config{})
	p.Open("", testNow)
	p.NextMonth()
	p.NextMonth()

	res := p.Today(testNow)
	if res.Action != ActionCommitted {
		t.Fatalf("expected commit, got %+v", res)
	}
	if p.View() != ViewMonthOf(testNow) {
		t.Fatalf("view = %v, want current month", p.View())
	}
	if sel := p.Selection().Date; sel == nil || !SameDay(*sel, testNow) {
		t.Fatalf("selection = %v", sel)
	}
}

func TestMonthNavigationReanchorsView(t *testing.T) {
	p := datePicker(Config{})
	p.Open("", testNow)

	p.PrevMonth()
	if p.View() != (ViewMonth{2024, time.February}) {
		t.Fatalf("view after prev = %v", p.View())
	}
	p.NextMonth()
	p.NextMonth()
	if p.View() != (ViewMonth{2024, time.April}) {
		t.Fatalf("view after next = %v", p.View())
	}
}

func TestClear(t *testing.T) {
	p := dateTimePicker(Config{})
	if res := p.Clear(); res.Action != ActionRejected {
		t.Fatalf("clear with no selection should be rejected")
	}

	p.Open("", testNow)
	p.CommitDay(day(2024, 3, 10), testNow)
	res := p.Clear()
	if res.Action != ActionCleared || !res.Closed || res.Value != "" {
		t.Fatalf("clear result = %+v", res)
	}
	if p.HasSelection() || p.IsOpen() {
		t.Fatalf("clear must drop selection and close")
	}
}

func TestTimeSeedFromInputValue(t *testing.T) {
	p := timePicker(Config{MinuteStep: 30})
	p.Open("09:30", testNow)

	sel := p.Selection()
	if sel.Hour != 9 || sel.Minute != 30 {
		t.Fatalf("seeded selection = %d:%d", sel.Hour, sel.Minute)
	}
}

func TestTimeSeedFallsBackToRoundedNow(t *testing.T) {
	// 10:42 with step 30 rounds to 10:30.
	p := timePicker(Config{MinuteStep: 30})
	p.Open("not a time", testNow)

	sel := p.Selection()
	if sel.Hour != 10 || sel.Minute != 30 {
		t.Fatalf("fallback selection = %d:%d, want 10:30", sel.Hour, sel.Minute)
	}
}

func TestSelectMinuteRequiresQuantizedValue(t *testing.T) {
	p := timePicker(Config{MinuteStep: 30})
	p.Open("", testNow)

	if res := p.SelectMinute(17); res.Action != ActionNone {
		t.Fatalf("unquantized minute accepted: %+v", res)
	}
}

func TestSetMinuteStepRegeneratesList(t *testing.T) {
	p := timePicker(Config{MinuteStep: 30})
	if len(p.MinuteValues()) != 2 {
		t.Fatalf("minute list = %v", p.MinuteValues())
	}
	p.SetMinuteStep(15)
	if len(p.MinuteValues()) != 4 {
		t.Fatalf("minute list after step change = %v", p.MinuteValues())
	}
}

func TestFormattedValueUsesConfiguredTemplate(t *testing.T) {
	p := datePicker(Config{Format: "YYYY-MM-DD"})
	p.Open("", testNow)
	res := p.CommitDay(day(2024, 3, 10), testNow)
	if res.Value != "2024-03-10" {
		t.Fatalf("value = %q", res.Value)
	}
}

func TestTimeValueIncompleteSelectionWritesNothing(t *testing.T) {
	p := timePicker(Config{})
	if got := p.FormattedValue(); got != "" {
		t.Fatalf("empty selection formatted to %q", got)
	}
}
