package core

// DefaultBindings is the stock key map: form-scope bindings drive the
// field list, popup-scope bindings are handled inside Picker.HandleKey and
// listed here so the footer can describe them.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"up", "k"}, Action: "field-prev", Description: "prev field", Scopes: []string{"form"}},
		{Keys: []string{"down", "j"}, Action: "field-next", Description: "next field", Scopes: []string{"form"}},
		{Keys: []string{"enter", "space"}, Action: "open-picker", Description: "open picker", Scopes: []string{"form"}},
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{"form"}},

		{Keys: []string{"arrows"}, Action: "navigate", Description: "move", Scopes: []string{"popup"}},
		{Keys: []string{"enter"}, Action: "commit", Description: "select", Scopes: []string{"popup"}},
		{Keys: []string{"tab"}, Action: "focus-next", Description: "next control", Scopes: []string{"popup"}},
		{Keys: []string{"pgup", "pgdown"}, Action: "page-month", Description: "change month", Scopes: []string{"popup"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"popup"}},
	}
}
