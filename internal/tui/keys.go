package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	resync key.Binding
	info   key.Binding
	esc    key.Binding
	quit   key.Binding
}

var keys = keyMap{
	resync: key.NewBinding(key.WithKeys("r")),
	info:   key.NewBinding(key.WithKeys("i", "v")),
	esc:    key.NewBinding(key.WithKeys("esc", "enter")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
