package core

import "github.com/charmbracelet/lipgloss"

// Cell and control styles exported for the widgets package, which renders
// day cells purely from their derived flags.
var (
	StyleDay        = lipgloss.NewStyle().Foreground(colorText)
	StyleOtherMonth = lipgloss.NewStyle().Foreground(colorMuted)
	StyleDisabled   = lipgloss.NewStyle().Foreground(colorBorder).Faint(true)
	StyleToday      = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	StyleSelected   = lipgloss.NewStyle().Background(colorAccent).Foreground(colorMantle).Bold(true)
	StyleCursor     = lipgloss.NewStyle().Background(colorSurface).Bold(true)
	StyleSunday     = lipgloss.NewStyle().Foreground(colorSunday)
	StyleSaturday   = lipgloss.NewStyle().Foreground(colorSaturday)
	StyleHoliday    = lipgloss.NewStyle().Foreground(colorHoliday)

	StyleMonthTitle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	StyleControl    = lipgloss.NewStyle().Foreground(colorText)
	StyleControlHot = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)
	StyleControlOff = lipgloss.NewStyle().Foreground(colorBorder).Faint(true)

	StyleStatus    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface)
	StyleStatusErr = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface)
	StyleFooter    = lipgloss.NewStyle().Background(colorMantle)
	StyleFooterKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	StyleFooterTxt = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
)
