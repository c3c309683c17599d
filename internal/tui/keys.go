package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reset    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Copy     key.Binding
	Theme    key.Binding
	Hints    key.Binding
	Lines    key.Binding
	Zen      key.Binding
	FontUp   key.Binding
	FontDown key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reset:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Next:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next")),
		Prev:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Theme:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Hints:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "hints")),
		Lines:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "lines")),
		Zen:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "zen")),
		FontUp:   key.NewBinding(key.WithKeys("alt+="), key.WithHelp("alt+=", "font+")),
		FontDown: key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "font-")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Next, k.Prev, k.Copy, k.Theme, k.Hints, k.Lines, k.Zen, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Next, k.Prev, k.Copy},
		{k.Theme, k.Hints, k.Lines, k.Zen},
		{k.FontUp, k.FontDown, k.Quit},
	}
}
