// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings handled by the root model while a user is
// logged in. Page-specific keys are handled by the pages themselves.
type keyMap struct {
	Dashboard key.Binding
	Projects  key.Binding
	Reports   key.Binding
	Settings  key.Binding
	Next      key.Binding
	Prev      key.Binding
	Profile   key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", i18n.T("keys.navigate"))),
		Projects:  key.NewBinding(key.WithKeys("2")),
		Reports:   key.NewBinding(key.WithKeys("3")),
		Settings:  key.NewBinding(key.WithKeys("4")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", i18n.T("keys.next"))),
		Prev:      key.NewBinding(key.WithKeys("shift+tab")),
		Profile:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", i18n.T("keys.profile"))),
		Logout:    key.NewBinding(key.WithKeys("ctrl+l", logoutShortcut), key.WithHelp(logoutShortcut, i18n.T("keys.logout"))),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", i18n.T("keys.help"))),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", i18n.T("keys.quit"))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.Profile, k.Logout, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Next, k.Profile},
		{k.Logout, k.Help, k.Quit},
	}
}

// keyMap implements help.KeyMap
var _ help.KeyMap = keyMap{}
