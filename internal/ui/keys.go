package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application's keyboard shortcuts.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevDate key.Binding
	NextDate key.Binding
	Open     key.Binding
	Toggle   key.Binding
	Agenda   key.Binding
	Now      key.Binding
	Speakers key.Binding
	Sponsors key.Binding
	Schedule key.Binding
	Connect  key.Binding
	Refresh  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		PrevDate: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		NextDate: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle schedule"),
		),
		Agenda: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "agenda"),
		),
		Now: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "happening now"),
		),
		Speakers: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "speakers"),
		),
		Sponsors: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sponsors"),
		),
		Schedule: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "my schedule"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload program"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
