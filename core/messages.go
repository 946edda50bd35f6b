package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// ValueChangedMsg is emitted after every successful write to a bound
// input, so external form logic observes the update.
type ValueChangedMsg struct {
	FieldID string
	Value   string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func ValueChangedCmd(fieldID, value string) tea.Cmd {
	return func() tea.Msg { return ValueChangedMsg{FieldID: fieldID, Value: value} }
}
