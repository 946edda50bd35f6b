package core

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Mode selects which value a picker produces.
type Mode int

const (
	ModeDate Mode = iota
	ModeTime
	ModeDateTime
)

var modeNames = map[Mode]string{
	ModeDate:     "date",
	ModeTime:     "time",
	ModeDateTime: "datetime",
}

func (m Mode) String() string { return modeNames[m] }

// ModeNames lists the accepted configuration spellings.
func ModeNames() []string { return []string{"date", "time", "datetime"} }

// ParseMode maps a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date", "":
		return ModeDate, nil
	case "time":
		return ModeTime, nil
	case "datetime":
		return ModeDateTime, nil
	}
	return ModeDate, fmt.Errorf("unknown picker mode %q", s)
}

func (m Mode) hasCalendar() bool { return m == ModeDate || m == ModeDateTime }
func (m Mode) hasClock() bool    { return m == ModeTime || m == ModeDateTime }

// Config is a picker's per-field configuration.
type Config struct {
	Format     string
	MinuteStep int
	Bounds     Bounds
	Holiday    HolidayFunc
	WeekStart  time.Weekday
}

func (c Config) withDefaults() Config {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.MinuteStep <= 0 {
		c.MinuteStep = DefaultMinuteStep
	}
	return c
}

// Selection is the committed value of a picker. Hour and Minute are -1
// while unset; Date is nil while unset.
type Selection struct {
	Date   *time.Time
	Hour   int
	Minute int
}

func (s Selection) hasClock() bool { return s.Hour >= 0 && s.Minute >= 0 }

// FocusZone is one stop of the popup focus ring cycled by Tab.
type FocusZone int

const (
	FocusClear FocusZone = iota
	FocusPrev
	FocusNext
	FocusToday
	FocusGrid
	FocusHours
	FocusMinutes
)

// Action classifies the outcome of a picker interaction, mirroring the
// result enums used by the app's other interactive widgets.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionMonthChanged
	ActionCommitted
	ActionCleared
	ActionClosed
	ActionRejected
)

// Result reports what an interaction did. Value carries the formatted
// input text when ValueChanged is set; Closed means the popup should no
// longer render.
type Result struct {
	Action       Action
	Value        string
	ValueChanged bool
	Closed       bool
}

// Picker is the state of one bound input's popup: mode, configuration,
// current selection and view anchor. All mutation is synchronous; the
// coordinator owns cross-instance concerns.
type Picker struct {
	id   string
	mode Mode
	cfg  Config

	sel  Selection
	view ViewMonth
	open bool

	// openedTurn suppresses the outside-press close handler for the same
	// interaction turn that opened the popup.
	openedTurn uint64

	hours   []int
	minutes []int

	zone         FocusZone
	gridCursor   int // index into the enabled-cell sequence
	hourCursor   int
	minuteCursor int
}

// NewPicker builds a closed picker for one bound input.
func NewPicker(id string, mode Mode, cfg Config) *Picker {
	cfg = cfg.withDefaults()
	return &Picker{
		id:      id,
		mode:    mode,
		cfg:     cfg,
		sel:     Selection{Hour: -1, Minute: -1},
		view:    ViewMonthOf(time.Now()),
		hours:   Hours(),
		minutes: Minutes(cfg.MinuteStep),
	}
}

func (p *Picker) ID() string           { return p.id }
func (p *Picker) Mode() Mode           { return p.mode }
func (p *Picker) Config() Config       { return p.cfg }
func (p *Picker) Selection() Selection { return p.sel }
func (p *Picker) View() ViewMonth      { return p.view }
func (p *Picker) IsOpen() bool         { return p != nil && p.open }
func (p *Picker) Zone() FocusZone      { return p.zone }
func (p *Picker) HourValues() []int    { return p.hours }
func (p *Picker) MinuteValues() []int  { return p.minutes }
func (p *Picker) HourCursor() int      { return p.hourCursor }
func (p *Picker) MinuteCursor() int    { return p.minuteCursor }

// HasSelection reports whether anything has been committed; the clear
// control is inert otherwise.
func (p *Picker) HasSelection() bool {
	return p != nil && (p.sel.Date != nil || p.sel.Hour >= 0)
}

// SetMinuteStep replaces the minute list. The list is regenerated only
// here, never per render.
func (p *Picker) SetMinuteStep(step int) {
	if p == nil || step == p.cfg.MinuteStep {
		return
	}
	p.cfg.MinuteStep = step
	p.minutes = Minutes(step)
	p.minuteCursor = 0
}

func (p *Picker) constraints() Constraints {
	return Constraints{Bounds: p.cfg.Bounds, Holiday: p.cfg.Holiday}
}

// Cells derives the 42 annotated day cells for the current view month.
func (p *Picker) Cells(now time.Time) []DayCell {
	dates := MonthGrid(p.view, p.cfg.WeekStart)
	eval := p.constraints()
	cells := make([]DayCell, 0, len(dates))
	for _, d := range dates {
		cell := eval.Evaluate(d)
		cell.OtherMonth = !p.view.Contains(d)
		cell.Today = SameDay(d, now)
		cell.Selected = p.sel.Date != nil && SameDay(d, *p.sel.Date)
		cells = append(cells, cell)
	}
	return cells
}

// Open transitions Closed → Open. seed is the bound input's current text,
// used to restore an existing clock selection; an unparseable seed falls
// back to now rounded to the minute step. The caller (coordinator) has
// already closed every other instance.
func (p *Picker) Open(seed string, now time.Time) {
	if p == nil || p.open {
		return
	}
	p.open = true

	if p.mode.hasCalendar() {
		if p.sel.Date != nil {
			p.view = ViewMonthOf(*p.sel.Date)
		} else {
			p.view = ViewMonthOf(now)
		}
		p.zone = FocusGrid
		p.focusInitialCell(now)
	} else {
		p.zone = FocusHours
	}

	if p.mode.hasClock() {
		p.seedClock(seed, now)
	}
}

// focusInitialCell picks the opening focus target: the selected cell,
// else today, else the first enabled current-month cell.
func (p *Picker) focusInitialCell(now time.Time) {
	enabled := EnabledCells(p.Cells(now))
	p.gridCursor = 0
	for i, c := range enabled {
		if c.Selected {
			p.gridCursor = i
			return
		}
	}
	for i, c := range enabled {
		if c.Today {
			p.gridCursor = i
			return
		}
	}
	for i, c := range enabled {
		if !c.OtherMonth {
			p.gridCursor = i
			return
		}
	}
}

func (p *Picker) seedClock(seed string, now time.Time) {
	h, m, ok := ParseClock(seed)
	if !ok {
		h = now.Hour()
		m = RoundToStep(now.Minute(), p.cfg.MinuteStep)
	}
	p.sel.Hour = h
	p.sel.Minute = m
	p.hourCursor = slices.Index(p.hours, h)
	if p.hourCursor < 0 {
		p.hourCursor = 0
	}
	p.minuteCursor = slices.Index(p.minutes, m)
	if p.minuteCursor < 0 {
		p.minuteCursor = 0
	}
}

// Close transitions Open → Closed. Selection survives; only view state
// resets on the next open.
func (p *Picker) Close() {
	if p != nil {
		p.open = false
	}
}

// Clear drops the whole selection, empties the bound input and closes.
func (p *Picker) Clear() Result {
	if p == nil || !p.HasSelection() {
		return Result{Action: ActionRejected}
	}
	p.sel = Selection{Hour: -1, Minute: -1}
	p.open = false
	return Result{Action: ActionCleared, Value: "", ValueChanged: true, Closed: true}
}

// Today re-anchors the view to the current month and selects today. The
// action is rejected when today is outside the bounds.
func (p *Picker) Today(now time.Time) Result {
	if p == nil || !p.mode.hasCalendar() {
		return Result{Action: ActionNone}
	}
	if p.cfg.Bounds.Disabled(now) {
		return Result{Action: ActionRejected}
	}
	p.view = ViewMonthOf(now)
	return p.CommitDay(Midnight(now), now)
}

// PrevMonth steps the view anchor back one month.
func (p *Picker) PrevMonth() Result {
	if p == nil || !p.mode.hasCalendar() {
		return Result{Action: ActionNone}
	}
	p.view = p.view.Prev()
	return Result{Action: ActionMonthChanged}
}

// NextMonth steps the view anchor forward one month.
func (p *Picker) NextMonth() Result {
	if p == nil || !p.mode.hasCalendar() {
		return Result{Action: ActionNone}
	}
	p.view = p.view.Next()
	return Result{Action: ActionMonthChanged}
}

// CommitDay selects a day. Disabled days are rejected. In date mode the
// popup closes; in datetime mode it stays open so a time can follow.
func (p *Picker) CommitDay(date time.Time, now time.Time) Result {
	if p == nil || !p.mode.hasCalendar() {
		return Result{Action: ActionNone}
	}
	if p.cfg.Bounds.Disabled(date) {
		return Result{Action: ActionRejected}
	}
	d := Midnight(date)
	p.sel.Date = &d
	p.view = ViewMonthOf(d)
	p.focusInitialCell(now)

	res := Result{Action: ActionCommitted, Value: p.FormattedValue(), ValueChanged: true}
	if p.mode == ModeDate {
		p.open = false
		res.Closed = true
	}
	return res
}

// SelectHour updates the clock's hour without closing the popup.
func (p *Picker) SelectHour(hour int) Result {
	if p == nil || !p.mode.hasClock() || hour < 0 || hour > 23 {
		return Result{Action: ActionNone}
	}
	p.sel.Hour = hour
	if p.sel.Minute < 0 {
		p.sel.Minute = p.minutes[0]
	}
	if i := slices.Index(p.hours, hour); i >= 0 {
		p.hourCursor = i
	}
	return Result{Action: ActionCommitted, Value: p.FormattedValue(), ValueChanged: true}
}

// SelectMinute updates the clock's minute without closing the popup. The
// value must be one of the step-quantized entries.
func (p *Picker) SelectMinute(minute int) Result {
	i := slices.Index(p.minutes, minute)
	if p == nil || !p.mode.hasClock() || i < 0 {
		return Result{Action: ActionNone}
	}
	p.sel.Minute = minute
	if p.sel.Hour < 0 {
		p.sel.Hour = 0
	}
	p.minuteCursor = i
	return Result{Action: ActionCommitted, Value: p.FormattedValue(), ValueChanged: true}
}

// FormattedValue renders the current selection as input text for the
// configured mode. An incomplete selection yields "" and the caller leaves
// the input untouched.
func (p *Picker) FormattedValue() string {
	if p == nil {
		return ""
	}
	switch p.mode {
	case ModeTime:
		if !p.sel.hasClock() {
			return ""
		}
		return FormatClock(p.sel.Hour, p.sel.Minute)
	case ModeDateTime:
		if p.sel.Date == nil {
			return ""
		}
		out := FormatDate(DefaultFormat, *p.sel.Date)
		if p.sel.hasClock() {
			out += " " + FormatClock(p.sel.Hour, p.sel.Minute)
		}
		return out
	default:
		if p.sel.Date == nil {
			return ""
		}
		return FormatDate(p.cfg.Format, *p.sel.Date)
	}
}

// FocusRing is the Tab order of the popup's interactive zones for the
// picker's mode. Tab from the last wraps to the first and Shift+Tab from
// the first wraps to the last.
func (p *Picker) FocusRing() []FocusZone {
	if p == nil {
		return nil
	}
	var ring []FocusZone
	if p.mode.hasCalendar() {
		ring = append(ring, FocusClear, FocusPrev, FocusNext, FocusToday, FocusGrid)
	}
	if p.mode.hasClock() {
		ring = append(ring, FocusHours, FocusMinutes)
	}
	return ring
}

func (p *Picker) cycleFocus(delta int) {
	ring := p.FocusRing()
	if len(ring) == 0 {
		return
	}
	i := slices.Index(ring, p.zone)
	if i < 0 {
		i = 0
	}
	p.zone = ring[(i+delta+len(ring))%len(ring)]
}
