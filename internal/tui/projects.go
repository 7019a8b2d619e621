// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/aerocode/aerocode/util/slicest"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// projectsModel lists the mock projects. The search text filters rows and
// lives only as long as the page is shown.
type projectsModel struct {
	projects  []model.Project
	displayed []model.Project
	search    textinput.Model
	searching bool
	table     table.Model
}

func newProjectsModel(projects []model.Project) projectsModel {
	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = i18n.T("projects.search")
	search.CharLimit = 64

	columns := []table.Column{
		{Title: i18n.T("projects.col.name"), Width: 12},
		{Title: i18n.T("projects.col.client"), Width: 22},
		{Title: i18n.T("projects.col.status"), Width: 20},
		{Title: i18n.T("projects.col.deadline"), Width: 12},
		{Title: i18n.T("projects.col.actions"), Width: 14},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(projects)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	m := projectsModel{projects: projects, search: search, table: t}
	m.rebuildTableRows()
	return m
}

// capturesInput reports whether typed characters belong to the page.
func (m projectsModel) capturesInput() bool { return m.searching }

// rebuildTableRows filters the projects by the search text (id or client,
// case-insensitive) and refreshes the table.
func (m *projectsModel) rebuildTableRows() {
	filter := strings.ToLower(strings.TrimSpace(m.search.Value()))
	m.displayed = slicest.Filter(m.projects, func(p model.Project) bool {
		return filter == "" ||
			strings.Contains(strings.ToLower(p.ID), filter) ||
			strings.Contains(strings.ToLower(p.Client), filter)
	})
	rows := slicest.Map(m.displayed, func(p model.Project) table.Row {
		return table.Row{
			p.ID,
			p.Client,
			"● " + statusLabel(p.Status),
			p.Deadline.Format(i18n.T("format.date")),
			i18n.T("projects.details"),
		}
	})
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m projectsModel) Update(msg tea.Msg) (projectsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.table.Focus()
			m.rebuildTableRows()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			m.table.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.rebuildTableRows()
		return m, cmd
	}

	switch keyMsg.String() {
	case "/":
		m.searching = true
		m.table.Blur()
		return m, m.search.Focus()
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.rebuildTableRows()
		}
		return m, nil
	case "enter":
		if len(m.displayed) == 0 {
			return m, nil
		}
		// "Ver Detalhes"
		return m, navigateCmd(model.PageProjectDetail)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m projectsModel) View(width int) string {
	// The "new project" button is inert, like the rest of the mock data.
	newButton := activeButtonStyle.Padding(0, 1).Render(i18n.T("projects.new"))
	title := titleStyle.MarginBottom(0).Render(i18n.T("projects.title"))
	header := AlignFooter(title, newButton, width-2)

	searchBox := cardStyle.Width(width - 4)
	if m.searching {
		searchBox = searchBox.BorderForeground(colorHighlight)
	}

	var body string
	if len(m.displayed) == 0 {
		body = helpStyle.Render(i18n.T("projects.empty"))
	} else {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		searchBox.Render(m.search.View()),
		"",
		cardStyle.Render(body),
	)
}

// statusLabel returns the translated name of a production status.
func statusLabel(s model.ProductionStatus) string {
	return i18n.T("status." + s.String())
}
