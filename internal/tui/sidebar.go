// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 28

// logoutShortcut is the key shown next to the logout entry; keys.go binds it.
const logoutShortcut = "L"

// sidebarSection is one navigation entry of the sidebar.
type sidebarSection struct {
	page     model.Page
	shortcut string
	labelID  string
}

// sidebarSections lists the sidebar entries in display order. The index
// matches the numeric shortcut minus one.
var sidebarSections = []sidebarSection{
	{model.PageDashboard, "1", "nav.dashboard"},
	{model.PageProjectList, "2", "nav.projects"},
	{model.PageReports, "3", "nav.reports"},
	{model.PageSettings, "4", "nav.settings"},
}

// sectionIndex returns the sidebar entry that owns page, or -1 for pages
// that are not in the sidebar (profile). The project detail page belongs
// to the projects entry.
func sectionIndex(page model.Page) int {
	if page == model.PageProjectDetail {
		page = model.PageProjectList
	}
	for i, s := range sidebarSections {
		if s.page == page {
			return i
		}
	}
	return -1
}

// nextSection returns the page reached by tab (delta 1) or shift+tab
// (delta -1) from page.
func nextSection(page model.Page, delta int) model.Page {
	n := len(sidebarSections)
	i := sectionIndex(page)
	if i < 0 {
		if delta > 0 {
			return sidebarSections[0].page
		}
		return sidebarSections[n-1].page
	}
	return sidebarSections[((i+delta)%n+n)%n].page
}

// renderSidebar draws the logo, navigation entries and the user card.
func renderSidebar(page model.Page, user model.User, height int) string {
	logo := lipgloss.JoinHorizontal(lipgloss.Center, logoStyle.Render("▲"), " ", sectionTitleStyle.Render(i18n.T("app.name")))

	active := sectionIndex(page)
	items := []string{logo, ""}
	for i, s := range sidebarSections {
		label := fmt.Sprintf("%s  %s", s.shortcut, i18n.T(s.labelID))
		if i == active {
			items = append(items, navActiveStyle.Render("▸ "+label))
		} else {
			items = append(items, navItemStyle.Render("  "+label))
		}
	}
	nav := lipgloss.JoinVertical(lipgloss.Left, items...)

	name := sectionTitleStyle.Render(user.Name)
	if page == model.PageProfile {
		name = navActiveStyle.UnsetPaddingLeft().Render(user.Name)
	}
	card := lipgloss.JoinHorizontal(lipgloss.Top,
		avatarStyle.Render(user.Initial()), " ",
		lipgloss.JoinVertical(lipgloss.Left, name, helpStyle.Render(i18n.T("nav.role"))),
	)
	userBlock := lipgloss.JoinVertical(lipgloss.Left,
		helpStyle.Render("────────────────────────"),
		card,
		"",
		logoutStyle.Render(fmt.Sprintf("%s  %s", logoutShortcut, i18n.T("nav.logout"))),
	)

	inner := sidebarWidth - 4
	style := sidebarStyle.Width(inner + 2)
	gap := height - lipgloss.Height(nav) - lipgloss.Height(userBlock) - 4
	if gap < 1 {
		gap = 1
	}
	filler := lipgloss.NewStyle().Height(gap).Render("")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, nav, filler, userBlock))
}
