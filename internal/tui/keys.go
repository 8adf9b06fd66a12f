// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit    key.Binding
	sync    key.Binding
	refresh key.Binding
	copy    key.Binding
	info    key.Binding
	esc     key.Binding
}

var keys = keyMap{
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:    key.NewBinding(key.WithKeys("s")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	info:    key.NewBinding(key.WithKeys("v")),
	esc:     key.NewBinding(key.WithKeys("esc")),
}
