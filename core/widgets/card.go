package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is the popup frame: a rounded border with an optional title woven
// into the top edge.
type Card struct {
	Title   string
	Content string
}

func (c Card) Render() string {
	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585b70")).
		Padding(0, 1).
		Render(c.Content)
	if strings.TrimSpace(c.Title) == "" {
		return body
	}

	lines := strings.Split(body, "\n")
	if len(lines) == 0 {
		return body
	}
	title := " " + strings.TrimSpace(c.Title) + " "
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	top := lines[0]
	if ansi.StringWidth(title)+2 < ansi.StringWidth(top) {
		lead := ansi.Truncate(top, 2, "")
		rest := dropColumns(top, 2+ansi.StringWidth(title))
		lines[0] = lead + titleStyle.Render(title) + rest
	}
	return strings.Join(lines, "\n")
}
