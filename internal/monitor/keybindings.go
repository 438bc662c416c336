package monitor

import "github.com/charmbracelet/bubbles/key"

// keyMap feeds the footer help. Any key closes the chart; the binding only
// names the common ones.
type keyMap struct {
	Close key.Binding
}

var defaultKeys = keyMap{
	Close: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("any key", "close chart"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
