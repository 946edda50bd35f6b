package widgets

import (
	"fmt"
	"strings"

	"github.com/koyomi-ui/koyomi/core"
)

// TimeColumn renders one scrollable list of hour or minute values, keeping
// the cursor centered in a fixed window the way the popup's clock section
// scrolls its selection into view.
type TimeColumn struct {
	Title    string
	Values   []int
	Cursor   int
	Selected int // -1 when nothing committed
	Focused  bool
	Height   int
}

func (t TimeColumn) Render() string {
	height := t.Height
	if height <= 0 {
		height = 7
	}
	var b strings.Builder
	title := core.StyleControl.Render(t.Title)
	if t.Focused {
		title = core.StyleControlHot.Render(t.Title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	start := t.Cursor - height/2
	if start > len(t.Values)-height {
		start = len(t.Values) - height
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < start+height && i < len(t.Values); i++ {
		text := fmt.Sprintf(" %02d ", t.Values[i])
		style := core.StyleDay
		if t.Values[i] == t.Selected {
			style = core.StyleSelected
		}
		if t.Focused && i == t.Cursor {
			style = core.StyleCursor.Inherit(style)
		}
		b.WriteString(style.Render(text))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
