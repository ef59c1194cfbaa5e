package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the deck key bindings
type keyMap struct {
	Forward   key.Binding
	Back      key.Binding
	First     key.Binding
	Last      key.Binding
	StopAuto  key.Binding
	StartAuto key.Binding
	Open      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Forward: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next page"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
		StopAuto: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop auto-advance"),
		),
		StartAuto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "start auto-advance"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.First, k.Last},
		{k.StopAuto, k.StartAuto, k.Open},
		{k.Help, k.Quit},
	}
}
