// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reportsModel is the report form. Its checkboxes and project choice are
// page-local; the generate button does nothing.
type reportsModel struct {
	types    []string
	projects []string // last entry is "all projects"
	checked  map[string]bool
	selected int
	cursor   int
}

func newReportsModel(opts model.ReportOptions) reportsModel {
	projects := append(append([]string{}, opts.Projects...), i18n.T("reports.all_projects"))
	return reportsModel{
		types:    opts.Types,
		projects: projects,
		checked:  map[string]bool{},
	}
}

// items: one per report type, then the project selector, then the button.
func (m reportsModel) itemCount() int     { return len(m.types) + 2 }
func (m reportsModel) selectorIndex() int { return len(m.types) }
func (m reportsModel) buttonIndex() int   { return len(m.types) + 1 }

func (m reportsModel) Update(msg tea.Msg) (reportsModel, tea.Cmd) {
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
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
	case " ", "space", "enter", "x":
		if m.cursor < len(m.types) {
			m.toggle(m.types[m.cursor])
		}
	case "left", "h":
		if m.cursor == m.selectorIndex() {
			m.selected = (m.selected + len(m.projects) - 1) % len(m.projects)
		}
	case "right", "l":
		if m.cursor == m.selectorIndex() {
			m.selected = (m.selected + 1) % len(m.projects)
		}
	}
	return m, nil
}

// toggle copies the map so earlier model values keep their own state.
func (m *reportsModel) toggle(kind string) {
	next := make(map[string]bool, len(m.checked)+1)
	for k, v := range m.checked {
		next[k] = v
	}
	next[kind] = !next[kind]
	m.checked = next
}

func (m reportsModel) View(width int) string {
	formWidth := width - 2
	if formWidth > 70 {
		formWidth = 70
	}

	line := func(i int, s string) string {
		if m.cursor == i {
			return selectedItemStyle.Render("▸ " + s)
		}
		return itemStyle.Render("  " + s)
	}

	items := []string{sectionTitleStyle.Render(i18n.T("reports.type"))}
	for i, kind := range m.types {
		box := "[ ]"
		if m.checked[kind] {
			box = "[x]"
		}
		items = append(items, line(i, box+" "+i18n.T("reports.type."+kind)))
	}

	items = append(items, "", sectionTitleStyle.Render(i18n.T("reports.project")))
	items = append(items, line(m.selectorIndex(), "◀ "+m.projects[m.selected]+" ▶"))

	items = append(items, "", sectionTitleStyle.Render(i18n.T("reports.period")))
	items = append(items, placeholderStyle.Width(formWidth-6).Render("▦  "+i18n.T("reports.period.placeholder")))

	button := reportButtonStyle
	if m.cursor != m.buttonIndex() {
		button = buttonStyle
	}
	items = append(items, "", button.Width(formWidth-4).Align(lipgloss.Center).Render(i18n.T("reports.generate")))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(i18n.T("reports.title")),
		cardStyle.Width(formWidth).Render(lipgloss.JoinVertical(lipgloss.Left, items...)),
	)
}
