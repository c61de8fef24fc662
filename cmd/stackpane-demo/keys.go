package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo's key bindings.
type keyMap struct {
	Toast   key.Binding
	Modal   key.Binding
	Spinner key.Binding
	Dump    key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toast: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toast"),
		),
		Modal: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "modal"),
		),
		Spinner: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spinner"),
		),
		Dump: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "dump registry"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear toasts"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toast, k.Modal, k.Spinner, k.Dump, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toast, k.Modal, k.Spinner, k.Dump},
		{k.Clear, k.Help, k.Quit},
	}
}
