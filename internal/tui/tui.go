// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the terminal user interface for Aerocode.
// This file, tui.go, contains the top-level model. It owns the navigation
// controller and routes updates and rendering to the sub-model of the
// current page.
package tui // import "github.com/aerocode/aerocode/internal/tui"

import (
	"fmt"

	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/logging"
	"github.com/aerocode/aerocode/internal/mock"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/aerocode/aerocode/internal/nav"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
)

// Options configures the TUI.
type Options struct {
	// Catalog supplies the mock data. Nil means mock.Default().
	Catalog *mock.Catalog
	// User overrides the catalog user when its fields are set.
	User model.User
	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool
	// SaveLanguage is called after the language is changed on the
	// settings page. Nil disables persisting the choice.
	SaveLanguage func(lang string) error
}

// mainModel is the top-level model. The controller decides which page is
// current; the page sub-models hold only page-local state and are rebuilt
// every time their page is entered.
type mainModel struct {
	nav     *nav.Controller
	catalog *mock.Catalog
	save    func(lang string) error

	login     loginModel
	dashboard dashboardModel
	projects  projectsModel
	detail    projectDetailModel
	reports   reportsModel
	settings  settingsModel
	profile   profileModel

	keys   keyMap
	help   help.Model
	status string
	width  int
	height int
}

// newMainModel creates the starting state of the TUI, at the login page.
func newMainModel(opts Options) mainModel {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = mock.Default()
	}
	user := catalog.User
	if opts.User.Name != "" {
		user.Name = opts.User.Name
	}
	if opts.User.Email != "" {
		user.Email = opts.User.Email
	}

	ctrl := nav.New(user)
	ctrl.OnTransition(func(t nav.Transition) {
		logging.Debugf("%s: %s -> %s", t.Action, t.From, t.To)
	})

	m := mainModel{
		nav:     ctrl,
		catalog: catalog,
		save:    opts.SaveLanguage,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.enter()
	return m
}

// Init focuses the login form.
func (m mainModel) Init() tea.Cmd {
	return m.login.Init()
}

// enter rebuilds the sub-model of the current page, discarding whatever
// local state the previous visit left behind.
func (m *mainModel) enter() tea.Cmd {
	m.status = ""
	session := m.nav.Session()
	switch page := m.nav.Page(); page {
	case model.PageLogin:
		m.login = newLoginModel(session.User)
		return m.login.Init()
	case model.PageDashboard:
		m.dashboard = newDashboardModel(m.catalog.Dashboard)
	case model.PageProjectList:
		m.projects = newProjectsModel(m.catalog.Projects)
	case model.PageProjectDetail:
		project, _ := m.catalog.Project(m.catalog.Detail.ProjectID)
		m.detail = newProjectDetailModel(project, m.catalog.Detail.Steps)
	case model.PageReports:
		m.reports = newReportsModel(m.catalog.Reports)
	case model.PageSettings:
		m.settings = newSettingsModel()
	case model.PageProfile:
		m.profile = newProfileModel(session.User, m.catalog.Profile)
	default:
		panic(fmt.Sprintf("tui: unhandled page %v", page))
	}
	return nil
}

// navigate asks the controller for a page change. A refused change keeps
// the current page and shows the error in the footer.
func (m *mainModel) navigate(target model.Page) tea.Cmd {
	from := m.nav.Page()
	if err := m.nav.Navigate(target); err != nil {
		logging.Errorf("navigation refused: %v", err)
		m.status = err.Error()
		return nil
	}
	if m.nav.Page() == from {
		return nil
	}
	return m.enter()
}

// capturesInput reports whether the current page is consuming typed text,
// in which case single-key shortcuts are passed to the page.
func (m mainModel) capturesInput() bool {
	switch m.nav.Page() {
	case model.PageLogin:
		return true
	case model.PageProjectList:
		return m.projects.capturesInput()
	}
	return false
}

// Update is the main message loop. Global keys are handled here; all
// other messages go to the current page.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loginMsg:
		m.nav.Login()
		return m, m.enter()

	case logoutMsg:
		m.nav.Logout()
		return m, m.enter()

	case navigateMsg:
		return m, m.navigate(msg.page)

	case languageChangedMsg:
		i18n.SetLang(msg.lang)
		m.keys = newKeyMap()
		if m.save != nil {
			if err := m.save(msg.lang); err != nil {
				logging.Errorf("failed to save language: %v", err)
				m.status = errorStyle.Render(err.Error())
				return m, nil
			}
		}
		m.status = i18n.T("settings.saved", msg.lang)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.nav.Authenticated() {
			if cmd, handled := m.handleGlobalKey(msg); handled {
				return m, cmd
			}
		}
	}

	return m, m.updatePage(msg)
}

// handleGlobalKey processes the sidebar shortcuts.
func (m *mainModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Logout) && (msg.Type != tea.KeyRunes || !m.capturesInput()) {
		return logoutCmd, true
	}
	if m.capturesInput() {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Dashboard):
		return m.navigate(model.PageDashboard), true
	case key.Matches(msg, m.keys.Projects):
		return m.navigate(model.PageProjectList), true
	case key.Matches(msg, m.keys.Reports):
		return m.navigate(model.PageReports), true
	case key.Matches(msg, m.keys.Settings):
		return m.navigate(model.PageSettings), true
	case key.Matches(msg, m.keys.Next):
		return m.navigate(nextSection(m.nav.Page(), 1)), true
	case key.Matches(msg, m.keys.Prev):
		return m.navigate(nextSection(m.nav.Page(), -1)), true
	case key.Matches(msg, m.keys.Profile):
		return m.navigate(model.PageProfile), true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true
	}
	return nil, false
}

// updatePage delegates msg to the sub-model of the current page.
func (m *mainModel) updatePage(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch page := m.nav.Page(); page {
	case model.PageLogin:
		m.login, cmd = m.login.Update(msg)
	case model.PageDashboard:
		// static page
	case model.PageProjectList:
		m.projects, cmd = m.projects.Update(msg)
	case model.PageProjectDetail:
		m.detail, cmd = m.detail.Update(msg)
	case model.PageReports:
		m.reports, cmd = m.reports.Update(msg)
	case model.PageSettings:
		m.settings, cmd = m.settings.Update(msg)
	case model.PageProfile:
		m.profile, cmd = m.profile.Update(msg)
	default:
		panic(fmt.Sprintf("tui: unhandled page %v", page))
	}
	return cmd
}

// View renders the current page inside the main layout. The login page
// is drawn full screen.
func (m mainModel) View() string {
	width, height := m.size()
	page := m.nav.Page()
	if page == model.PageLogin {
		return m.login.View(width, height)
	}

	contentWidth := width - sidebarWidth - 4
	content, hint := m.pageView(page, contentWidth)

	footer := renderFooter(hint, m.status, m.help.View(m.keys), width)
	mainHeight := height - lipgloss.Height(footer)
	sidebar := renderSidebar(page, m.nav.Session().User, mainHeight)
	main := lipgloss.NewStyle().PaddingLeft(2).Width(contentWidth + 2).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main),
		footer,
	)
}

// pageView returns the content pane and footer hint of an authenticated
// page. Every page has exactly one case; an unknown page is a programming
// error.
func (m mainModel) pageView(page model.Page, width int) (content, hint string) {
	switch page {
	case model.PageDashboard:
		return m.dashboard.View(width), ""
	case model.PageProjectList:
		return m.projects.View(width), i18n.T("projects.help")
	case model.PageProjectDetail:
		return m.detail.View(width), i18n.T("detail.help")
	case model.PageReports:
		return m.reports.View(width), i18n.T("reports.help")
	case model.PageSettings:
		return m.settings.View(width), i18n.T("settings.help")
	case model.PageProfile:
		return m.profile.View(width), i18n.T("profile.copy")
	case model.PageLogin:
		panic("tui: login page has no content pane")
	default:
		panic(fmt.Sprintf("tui: unhandled page %v", page))
	}
}

func (m mainModel) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// Run starts the interactive program and blocks until the user quits.
func Run(opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(newMainModel(opts), programOpts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
