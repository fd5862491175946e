package app

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Copy      key.Binding
	CopyIndex key.Binding
	Focus     key.Binding
	Commit    key.Binding
	Now       key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "c", "y"),
			key.WithHelp("enter/c", "copy"),
		),
		CopyIndex: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "copy row"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "picker/table"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply date"),
		),
		Now: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.CopyIndex, k.Focus, k.Now, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Copy, k.CopyIndex},
		{k.Focus, k.Commit, k.Now},
		{k.Help, k.Quit},
	}
}
