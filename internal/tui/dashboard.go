// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// dashboardModel shows the urgent alert, the summary figures and the
// weekly chart placeholder. It has no interactive state.
type dashboardModel struct {
	data model.Dashboard
}

func newDashboardModel(data model.Dashboard) dashboardModel {
	return dashboardModel{data: data}
}

func (m dashboardModel) View(width int) string {
	title := titleStyle.Render(i18n.T("dashboard.title"))

	alert := alertStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("⚠ "+i18n.T("dashboard.alert.title")),
		i18n.T("dashboard.alert.message", map[string]any{
			"Component": m.data.Alert.Component,
			"Line":      m.data.Alert.Line,
		}),
	))

	cards := make([]string, 0, len(m.data.Stats))
	if n := len(m.data.Stats); n > 0 {
		cardWidth := (width-2*(n-1))/n - 2
		for i, s := range m.data.Stats {
			card := statCardView(s, cardWidth)
			if i > 0 {
				card = lipgloss.NewStyle().MarginLeft(2).Render(card)
			}
			cards = append(cards, card)
		}
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	chart := cardStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render(i18n.T("dashboard.chart.title")),
		"",
		placeholderStyle.Width(width-6).Render("▂▄▆█▆▄▂  "+i18n.T("dashboard.chart.placeholder")),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, alert, "", stats, "", chart)
}

// statCardView renders one summary figure: label above a large value.
func statCardView(s model.StatCard, width int) string {
	if width < 10 {
		width = 10
	}
	label := helpStyle.Render(i18n.T("dashboard.stat." + s.Key))
	value := lipgloss.NewStyle().Bold(true).Foreground(colorHighlight).Render(s.Value)
	return cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, label, value))
}
