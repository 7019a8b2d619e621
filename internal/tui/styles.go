// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the shared lipgloss styles used across the pages.
package tui

import (
	"github.com/aerocode/aerocode/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("33")  // Blue, the mockup's primary color
	colorSpecial   = lipgloss.Color("208") // Orange, the report button
	colorError     = lipgloss.Color("196") // Red for alerts and logout
	colorSuccess   = lipgloss.Color("40")  // Green
	colorWarning   = lipgloss.Color("178") // Yellow
	colorWhite     = lipgloss.Color("231")
	colorDark      = lipgloss.Color("236")
)

var (
	// General
	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Page headings
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	// White cards on the content area
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(0, 1)

	// Sidebar
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 1)
	logoStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorDark).
			Bold(true).
			Padding(0, 1)
	navItemStyle   = lipgloss.NewStyle().PaddingLeft(1)
	navActiveStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(colorHighlight).
			Bold(true)
	avatarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorHighlight).
			Bold(true).
			Padding(0, 1)
	logoutStyle = lipgloss.NewStyle().Foreground(colorError)

	// Buttons and form elements
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 3)
	activeButtonStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorHighlight).
				Bold(true).
				Padding(0, 3)
	reportButtonStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorSpecial).
				Bold(true).
				Padding(0, 3)
	linkStyle         = lipgloss.NewStyle().Foreground(colorHighlight).Underline(true)
	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Placeholders for charts and calendars
	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorSubtle).
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorSubtle).
				Align(lipgloss.Center).
				Padding(1, 2)

	// Footer
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(colorDark).
			Padding(0, 1).
			Italic(true)
)

// statusStyle colors a production status badge.
func statusStyle(s model.ProductionStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch s {
	case model.StatusFuselage:
		return base.Foreground(colorWarning)
	case model.StatusElectrical:
		return base.Foreground(colorHighlight)
	default:
		return base.Foreground(colorSuccess)
	}
}

// stepStyle colors an assembly step box.
func stepStyle(s model.StepState) lipgloss.Style {
	base := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Bold(true)
	switch s {
	case model.StepDone:
		return base.Foreground(colorSuccess).BorderForeground(colorSuccess)
	case model.StepInProgress:
		return base.Foreground(colorWarning).BorderForeground(colorWarning)
	default:
		return base.Foreground(colorSubtle).BorderForeground(colorSubtle)
	}
}
