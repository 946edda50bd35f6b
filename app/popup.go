package app

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/koyomi-ui/koyomi/core"
	"github.com/koyomi-ui/koyomi/core/widgets"
)

// renderPopupBody builds the popup's interior for the picker's mode: the
// calendar grid, the clock columns, or both side by side.
func renderPopupBody(p *core.Picker, now time.Time) string {
	var parts []string

	if p.Mode() == core.ModeDate || p.Mode() == core.ModeDateTime {
		focused, ok := p.FocusedCell(now)
		cal := widgets.Calendar{
			View:         p.View(),
			Cells:        p.Cells(now),
			Zone:         p.Zone(),
			FocusedDate:  focused.Date,
			HasFocus:     ok,
			ClearEnabled: p.HasSelection(),
			WeekStart:    p.Config().WeekStart,
		}
		parts = append(parts, cal.Render())
	}

	if p.Mode() == core.ModeTime || p.Mode() == core.ModeDateTime {
		sel := p.Selection()
		hours := widgets.TimeColumn{
			Title:    "時",
			Values:   p.HourValues(),
			Cursor:   p.HourCursor(),
			Selected: sel.Hour,
			Focused:  p.Zone() == core.FocusHours,
		}
		minutes := widgets.TimeColumn{
			Title:    "分",
			Values:   p.MinuteValues(),
			Cursor:   p.MinuteCursor(),
			Selected: sel.Minute,
			Focused:  p.Zone() == core.FocusMinutes,
		}
		clock := lipgloss.JoinHorizontal(lipgloss.Top, hours.Render(), " ", minutes.Render())
		parts = append(parts, clock)
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "  ", parts[1])
}
