// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	login     key.Binding
	logout    key.Binding
	edit      key.Binding
	refresh   key.Binding
	progress  key.Binding
	buildInfo key.Binding
	master    key.Binding
	grand     key.Binding
}

var keys = keyMap{
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	login:     key.NewBinding(key.WithKeys("l")),
	logout:    key.NewBinding(key.WithKeys("o")),
	edit:      key.NewBinding(key.WithKeys("e")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	progress:  key.NewBinding(key.WithKeys("p")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	master:    key.NewBinding(key.WithKeys("ctrl+t")),
	grand:     key.NewBinding(key.WithKeys("ctrl+g")),
}
