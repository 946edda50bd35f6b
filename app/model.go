package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/koyomi-ui/koyomi/core"
	"github.com/koyomi-ui/koyomi/core/widgets"
)

// Model is the form application: a list of picker-bound fields, the
// coordinator that owns popup exclusivity, and the shared chrome.
type Model struct {
	width  int
	height int

	fields []Field
	active int
	coord  *core.Coordinator
	keys   *core.KeyRegistry

	status    string
	statusErr bool
	quitting  bool

	now func() time.Time
}

func NewModel(fields []Field, coord *core.Coordinator, keys *core.KeyRegistry) Model {
	m := Model{
		fields: fields,
		coord:  coord,
		keys:   keys,
		status: "Ready",
		width:  100,
		height: 32,
		now:    time.Now,
	}
	for _, f := range fields {
		if f.Err != nil {
			m.status = f.Err.Error()
			m.statusErr = true
		}
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// ActiveScope is "popup" while any picker is open, "form" otherwise.
func (m Model) ActiveScope() string {
	if m.coord.OverlayVisible() {
		return "popup"
	}
	return "form"
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case core.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case core.ValueChangedMsg:
		// Already written by the commit path; observers hook here.
		return m, nil

	case tea.KeyMsg:
		m.coord.BeginTurn()
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.coord.BeginTurn()
		if msg.Action == tea.MouseActionPress {
			// Popup interaction is keyboard-driven; any press counts as an
			// outside interaction, subject to the opened-this-turn guard.
			m.coord.CloseOutside()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := core.NormalizeKey(msg.String())
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if p := m.coord.OpenPicker(); p != nil {
		res := p.HandleKey(key, m.now())
		return m.applyResult(p, res)
	}

	action, ok := m.keys.Lookup(msg, "form")
	if !ok {
		return m, nil
	}
	switch action {
	case "quit":
		m.quitting = true
		return m, tea.Quit
	case "field-next":
		m.active = (m.active + 1) % max(1, len(m.fields))
		return m, nil
	case "field-prev":
		m.active = (m.active - 1 + len(m.fields)) % max(1, len(m.fields))
		return m, nil
	case "open-picker":
		return m.openActive()
	}
	return m, nil
}

func (m Model) openActive() (tea.Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	f := m.fields[m.active]
	if f.Inert() {
		return m, core.ErrorCmd(f.Err)
	}
	m.coord.Open(f.Picker, f.Input.Value(), m.now())
	return m, nil
}

// applyResult folds a picker interaction result back into the bound input
// and emits the change notification on every successful write.
func (m Model) applyResult(p *core.Picker, res core.Result) (tea.Model, tea.Cmd) {
	if !res.ValueChanged {
		return m, nil
	}
	for i := range m.fields {
		if m.fields[i].Picker == p {
			m.fields[i].Input.SetValue(res.Value)
			return m, core.ValueChangedCmd(m.fields[i].Name, res.Value)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	base := m.renderForm()

	if p := m.coord.OpenPicker(); p != nil {
		popup := renderPopupBody(p, m.now())
		return widgets.RenderPopup(base, popup, m.width, m.height, m.coord.OverlayVisible())
	}
	return base
}

func (m Model) renderForm() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Width(12)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).Width(12)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#585b70")).
		Padding(0, 1).
		Width(24)

	var b strings.Builder
	b.WriteString(core.StyleMonthTitle.Render("koyomi"))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		label := labelStyle.Render(f.Label)
		if i == m.active {
			label = activeStyle.Render("▶ " + f.Label)
		}
		value := f.Input.View()
		if f.Inert() {
			value = core.StyleStatusErr.Render("unavailable")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, boxStyle.Render(value)))
		b.WriteString("\n")
	}

	body := b.String()
	chrome := lipgloss.JoinVertical(lipgloss.Left,
		RenderStatusBar(m),
		RenderFooter(m),
	)
	contentHeight := m.height - lipgloss.Height(chrome)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(max(0, contentHeight)).Render(body),
		chrome,
	)
}
