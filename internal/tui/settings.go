// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"sort"

	"github.com/aerocode/aerocode/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsModel shows the system options placeholder and a language picker.
type settingsModel struct {
	choices     map[string]string // lang code -> display name
	orderedKeys []string
	cursor      int
}

func newSettingsModel() settingsModel {
	choices := i18n.GetAvailableLocales()
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := settingsModel{choices: choices, orderedKeys: keys}
	for i, k := range keys {
		if k == i18n.GetLang() {
			m.cursor = i
		}
	}
	return m
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.orderedKeys)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.orderedKeys) == 0 {
			return m, nil
		}
		lang := m.orderedKeys[m.cursor]
		return m, func() tea.Msg { return languageChangedMsg{lang: lang} }
	}
	return m, nil
}

func (m settingsModel) View(width int) string {
	var items []string
	items = append(items, sectionTitleStyle.Render(i18n.T("settings.language")), "")
	for i, code := range m.orderedKeys {
		mark := "  "
		if code == i18n.GetLang() {
			mark = "✔ "
		}
		label := mark + m.choices[code]
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+label))
		} else {
			items = append(items, itemStyle.Render("  "+label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(i18n.T("settings.title")),
		cardStyle.Width(width-2).Render(helpStyle.Render(i18n.T("settings.body"))),
		"",
		cardStyle.Width(width-2).Render(lipgloss.JoinVertical(lipgloss.Left, items...)),
	)
}
