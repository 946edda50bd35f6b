package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/koyomi-ui/koyomi/core"
)

// Weekday labels for the fixed locale, indexed by time.Weekday.
var weekdayLabels = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// Calendar renders one view month as a 7×6 grid with its control row,
// purely from derived cell flags.
type Calendar struct {
	View         core.ViewMonth
	Cells        []core.DayCell
	Zone         core.FocusZone
	FocusedDate  time.Time
	HasFocus     bool
	ClearEnabled bool
	WeekStart    time.Weekday
}

func (c Calendar) Render() string {
	var b strings.Builder
	b.WriteString(c.renderControls())
	b.WriteString("\n")
	b.WriteString(c.renderHeader())
	b.WriteString("\n")
	b.WriteString(c.renderGrid())
	return b.String()
}

func (c Calendar) renderControls() string {
	clear := core.StyleControlOff.Render("クリア")
	if c.ClearEnabled {
		clear = zoneStyle(c.Zone == core.FocusClear).Render("クリア")
	}
	prev := zoneStyle(c.Zone == core.FocusPrev).Render("‹")
	next := zoneStyle(c.Zone == core.FocusNext).Render("›")
	today := zoneStyle(c.Zone == core.FocusToday).Render("今日")
	title := core.StyleMonthTitle.Render(fmt.Sprintf("%d年%d月", c.View.Year, int(c.View.Month)))
	return lipgloss.JoinHorizontal(lipgloss.Top, clear, "  ", prev, " ", title, " ", next, "  ", today)
}

func (c Calendar) renderHeader() string {
	parts := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := (c.WeekStart + time.Weekday(i)) % 7
		style := core.StyleDay
		switch wd {
		case time.Sunday:
			style = core.StyleSunday
		case time.Saturday:
			style = core.StyleSaturday
		}
		parts = append(parts, style.Render(" "+weekdayLabels[wd]+" "))
	}
	return strings.Join(parts, "")
}

func (c Calendar) renderGrid() string {
	rows := make([]string, 0, 6)
	for row := 0; row < 6; row++ {
		cols := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			i := row*7 + col
			if i >= len(c.Cells) {
				break
			}
			cols = append(cols, c.renderCell(c.Cells[i]))
		}
		rows = append(rows, strings.Join(cols, ""))
	}
	return strings.Join(rows, "\n")
}

func (c Calendar) renderCell(cell core.DayCell) string {
	text := fmt.Sprintf(" %2d ", cell.Date.Day())

	style := core.StyleDay
	switch {
	case cell.Disabled:
		style = core.StyleDisabled
	case cell.Sunday:
		style = core.StyleSunday
	case cell.Saturday:
		style = core.StyleSaturday
	}
	if cell.Holiday && !cell.Disabled {
		style = core.StyleHoliday
	}
	if cell.OtherMonth && !cell.Disabled {
		style = core.StyleOtherMonth
	}
	if cell.Today {
		style = core.StyleToday.Inherit(style)
	}
	if cell.Selected {
		style = core.StyleSelected
	}
	if c.HasFocus && c.Zone == core.FocusGrid && !cell.Disabled && core.SameDay(cell.Date, c.FocusedDate) {
		style = core.StyleCursor.Inherit(style)
	}
	return style.Render(text)
}

func zoneStyle(hot bool) lipgloss.Style {
	if hot {
		return core.StyleControlHot
	}
	return core.StyleControl
}
