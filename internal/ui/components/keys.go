package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
)

// Binding wraps a bubbles key binding with a KeyPressMsg matcher.
type Binding struct {
	key.Binding
}

// Matches reports whether msg triggers b.
func (b Binding) Matches(msg tea.KeyPressMsg) bool {
	return key.Matches(msg, b.Binding)
}

func newBinding(help, desc string, keys ...string) Binding {
	return Binding{key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))}
}

// KeyMap lists every binding the screens share.
type KeyMap struct {
	Up       Binding
	Down     Binding
	Select   Binding
	Previous Binding
	Next     Binding
	Submit   Binding
	Confirm  Binding
	Cancel   Binding
	Back     Binding
	Quit     Binding
}

// Keys is the application key map.
var Keys = KeyMap{
	Up:       newBinding("↑", "Up", "up", "k"),
	Down:     newBinding("↓", "Down", "down", "j"),
	Select:   newBinding("Enter", "Select", "enter"),
	Previous: newBinding("←/p", "Previous", "left", "p"),
	Next:     newBinding("→/n", "Next", "right", "n"),
	Submit:   newBinding("s", "Submit", "s"),
	Confirm:  newBinding("y", "Yes", "y", "Y"),
	Cancel:   newBinding("n", "No", "n", "N", "esc"),
	Back:     newBinding("Esc", "Back", "esc"),
	Quit:     newBinding("Ctrl+C", "Quit", "ctrl+c"),
}

// OptionKey maps 1-4 and a-d (either case) to an option index.
func OptionKey(msg tea.KeyPressMsg) (int, bool) {
	switch s := msg.String(); s {
	case "1", "2", "3", "4":
		return int(s[0] - '1'), true
	case "a", "b", "c", "d":
		return int(s[0] - 'a'), true
	case "A", "B", "C", "D":
		return int(s[0] - 'A'), true
	}
	return 0, false
}
