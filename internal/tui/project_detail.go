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

// projectDetailModel shows the assembly progress of the featured project.
type projectDetailModel struct {
	project model.Project
	steps   []model.AssemblyStep
}

func newProjectDetailModel(project model.Project, steps []model.AssemblyStep) projectDetailModel {
	return projectDetailModel{project: project, steps: steps}
}

func (m projectDetailModel) Update(msg tea.Msg) (projectDetailModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "b", "backspace", "left":
			return m, navigateCmd(model.PageProjectList)
		}
	}
	return m, nil
}

func (m projectDetailModel) View(width int) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		helpStyle.Render("← "),
		titleStyle.MarginBottom(0).Render(i18n.T("detail.title", m.project.ID)),
	)
	meta := lipgloss.JoinHorizontal(lipgloss.Center,
		helpStyle.Render(m.project.Client+"  "),
		statusStyle(m.project.Status).Render(statusLabel(m.project.Status)),
		helpStyle.Render("  "+m.project.Deadline.Format(i18n.T("format.date"))),
	)

	section := func(title, body string) string {
		return cardStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			sectionTitleStyle.Render(title),
			helpStyle.Render("────────────────────"),
			body,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		meta,
		"",
		section(i18n.T("detail.assembly"), m.stepsView(width-6)),
		section(i18n.T("detail.components"), i18n.T("detail.components.body", m.project.ID)),
		section(i18n.T("detail.team"), i18n.T("detail.team.body")),
		section(i18n.T("detail.schedule"), i18n.T("detail.schedule.body")),
	)
}

// stepsView lays the assembly steps out left to right joined by arrows,
// or top to bottom when they do not fit in width.
func (m projectDetailModel) stepsView(width int) string {
	boxes := make([]string, 0, len(m.steps))
	for _, s := range m.steps {
		boxes = append(boxes, stepStyle(s.State).Render(stepMarker(s.State)+" "+statusLabelFromSlug(s.Label)))
	}

	var parts []string
	total := 0
	for i, b := range boxes {
		if i > 0 {
			parts = append(parts, helpStyle.Render(" → "))
			total += 3
		}
		parts = append(parts, b)
		total += lipgloss.Width(b)
	}
	if total <= width {
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func stepMarker(s model.StepState) string {
	switch s {
	case model.StepDone:
		return "✔"
	case model.StepInProgress:
		return "◐"
	default:
		return "○"
	}
}

// statusLabelFromSlug translates an assembly step label.
func statusLabelFromSlug(slug string) string {
	if st, err := model.ParseProductionStatus(slug); err == nil {
		return statusLabel(st)
	}
	return slug
}
