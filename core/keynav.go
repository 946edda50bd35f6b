package core

import "time"

// EnabledCells filters a rendered grid down to the keyboard-traversable
// sequence: disabled cells are skipped entirely, so row arithmetic runs
// over indexes in this slice, not raw grid positions.
func EnabledCells(cells []DayCell) []DayCell {
	out := make([]DayCell, 0, len(cells))
	for _, c := range cells {
		if !c.Disabled {
			out = append(out, c)
		}
	}
	return out
}

// FocusedCell returns the cell the grid cursor rests on.
func (p *Picker) FocusedCell(now time.Time) (DayCell, bool) {
	if p == nil || !p.open || !p.mode.hasCalendar() {
		return DayCell{}, false
	}
	enabled := EnabledCells(p.Cells(now))
	if len(enabled) == 0 {
		return DayCell{}, false
	}
	i := clampIndex(p.gridCursor, len(enabled))
	return enabled[i], true
}

// HandleKey advances the open popup's state for one key press. Keys are
// the normalized bubbletea names ("up", "pgdown", "shift+tab", ...), with
// "space" for the space bar and h/j/k/l accepted as arrow aliases.
func (p *Picker) HandleKey(key string, now time.Time) Result {
	if p == nil || !p.open {
		return Result{Action: ActionNone}
	}
	switch key {
	case "esc":
		p.open = false
		return Result{Action: ActionClosed, Closed: true}
	case "tab":
		p.cycleFocus(1)
		return Result{Action: ActionMoved}
	case "shift+tab":
		p.cycleFocus(-1)
		return Result{Action: ActionMoved}
	}

	switch p.zone {
	case FocusGrid:
		return p.handleGridKey(key, now)
	case FocusHours:
		return p.handleColumnKey(key, p.hours, &p.hourCursor, p.SelectHour)
	case FocusMinutes:
		return p.handleColumnKey(key, p.minutes, &p.minuteCursor, p.SelectMinute)
	case FocusClear, FocusPrev, FocusNext, FocusToday:
		return p.handleButtonKey(key, now)
	}
	return Result{Action: ActionNone}
}

func (p *Picker) handleGridKey(key string, now time.Time) Result {
	enabled := EnabledCells(p.Cells(now))
	if len(enabled) == 0 {
		return Result{Action: ActionNone}
	}
	cur := clampIndex(p.gridCursor, len(enabled))

	switch key {
	case "right", "l":
		return p.moveGridCursor(cur+1, now)
	case "left", "h":
		return p.moveGridCursor(cur-1, now)
	case "down", "j":
		return p.moveGridCursor(cur+7, now)
	case "up", "k":
		return p.moveGridCursor(cur-7, now)
	case "home":
		p.gridCursor = 0
		return Result{Action: ActionMoved}
	case "end":
		p.gridCursor = len(enabled) - 1
		return Result{Action: ActionMoved}
	case "pgup":
		p.view = p.view.Prev()
		p.refocusRelative(cur, now)
		return Result{Action: ActionMonthChanged}
	case "pgdown":
		p.view = p.view.Next()
		p.refocusRelative(cur, now)
		return Result{Action: ActionMonthChanged}
	case "enter", "space":
		return p.CommitDay(enabled[cur].Date, now)
	}
	return Result{Action: ActionNone}
}

// moveGridCursor applies a computed target index, rolling the view month
// over when the target falls outside the enabled sequence: forward rolls
// focus index 0 of the next month, backward the last enabled cell of the
// previous one.
func (p *Picker) moveGridCursor(target int, now time.Time) Result {
	count := len(EnabledCells(p.Cells(now)))
	switch {
	case target >= count:
		p.view = p.view.Next()
		p.gridCursor = 0
		return Result{Action: ActionMonthChanged}
	case target < 0:
		p.view = p.view.Prev()
		p.gridCursor = max(0, len(EnabledCells(p.Cells(now)))-1)
		return Result{Action: ActionMonthChanged}
	default:
		p.gridCursor = target
		return Result{Action: ActionMoved}
	}
}

// refocusRelative keeps the same relative index across a page step,
// clamped to the new month's enabled-cell count.
func (p *Picker) refocusRelative(idx int, now time.Time) {
	count := len(EnabledCells(p.Cells(now)))
	p.gridCursor = clampIndex(idx, count)
}

func (p *Picker) handleColumnKey(key string, values []int, cursor *int, commit func(int) Result) Result {
	switch key {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
			return Result{Action: ActionMoved}
		}
		return Result{Action: ActionNone}
	case "down", "j":
		if *cursor < len(values)-1 {
			*cursor++
			return Result{Action: ActionMoved}
		}
		return Result{Action: ActionNone}
	case "home":
		*cursor = 0
		return Result{Action: ActionMoved}
	case "end":
		*cursor = max(0, len(values)-1)
		return Result{Action: ActionMoved}
	case "enter", "space":
		if *cursor < 0 || *cursor >= len(values) {
			return Result{Action: ActionNone}
		}
		return commit(values[*cursor])
	}
	return Result{Action: ActionNone}
}

func (p *Picker) handleButtonKey(key string, now time.Time) Result {
	if key != "enter" && key != "space" {
		return Result{Action: ActionNone}
	}
	switch p.zone {
	case FocusClear:
		return p.Clear()
	case FocusPrev:
		return p.PrevMonth()
	case FocusNext:
		return p.NextMonth()
	case FocusToday:
		return p.Today(now)
	}
	return Result{Action: ActionNone}
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
