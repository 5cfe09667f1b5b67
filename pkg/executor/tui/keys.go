package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the start page's bindings. It doubles as the help.KeyMap
// behind the tips line.
type keyMap struct {
	OpenSearch  key.Binding
	CloseSearch key.Binding
	Submit      key.Binding
	ToggleHours key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		OpenSearch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "search"),
		),
		CloseSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open results"),
		),
		ToggleHours: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "12/24h"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp is shown while the search overlay is hidden
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenSearch, k.ToggleHours, k.Quit}
}

// FullHelp is shown while the search overlay is visible
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.CloseSearch}}
}
