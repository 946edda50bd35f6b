package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/koyomi-ui/koyomi/core"
)

func TestCalendarRendersSixWeekRows(t *testing.T) {
	view := core.ViewMonth{Year: 2024, Month: time.January}
	cells := make([]core.DayCell, 0, core.GridCells)
	for _, d := range core.MonthGrid(view, time.Sunday) {
		cells = append(cells, core.DayCell{Date: d})
	}

	out := Calendar{View: view, Cells: cells, WeekStart: time.Sunday}.Render()
	lines := strings.Split(out, "\n")
	// controls + weekday header + 6 grid rows
	if len(lines) != 8 {
		t.Fatalf("rendered %d lines, want 8", len(lines))
	}
	if !strings.Contains(lines[0], "2024年1月") {
		t.Fatalf("controls line missing month title: %q", lines[0])
	}
	if !strings.Contains(lines[1], "日") || !strings.Contains(lines[1], "土") {
		t.Fatalf("weekday header wrong: %q", lines[1])
	}
}

func TestTimeColumnWindowsAroundCursor(t *testing.T) {
	col := TimeColumn{
		Title:    "時",
		Values:   core.Hours(),
		Cursor:   12,
		Selected: -1,
		Height:   5,
	}
	out := col.Render()
	if !strings.Contains(out, "12") {
		t.Fatalf("cursor value not visible: %q", out)
	}
	if strings.Contains(out, "00") || strings.Contains(out, "23") {
		t.Fatalf("window should exclude distant values: %q", out)
	}
}

func TestRenderPopupCentersCard(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)
	out := RenderPopup(base, "hello", 40, 10, false)
	if !strings.Contains(out, "hello") {
		t.Fatalf("popup content missing")
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("canvas height = %d, want 10", len(lines))
	}
}

func TestRenderPopupZeroSize(t *testing.T) {
	if out := RenderPopup("base", "popup", 0, 0, true); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}
