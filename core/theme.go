package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#6c7086"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorSunday   lipgloss.Color = "#f38ba8"
	colorSaturday lipgloss.Color = "#74c7ec"
	colorHoliday  lipgloss.Color = "#fab387"
	colorSurface  lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)
