// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/mock"
	"github.com/aerocode/aerocode/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// send feeds msg to the model and returns the new model and command. The
// command is not run; tests run it explicitly when it must be one of the
// router messages.
func send(t *testing.T, m mainModel, msg tea.Msg) (mainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(mainModel)
	if !ok {
		t.Fatalf("Update returned %T, want mainModel", next)
	}
	return nm, cmd
}

// follow runs cmd, which must produce a router message, and feeds the
// result back into the model.
func follow(t *testing.T, m mainModel, cmd tea.Cmd) mainModel {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command, got nil")
	}
	msg := cmd()
	switch msg.(type) {
	case loginMsg, logoutMsg, navigateMsg, languageChangedMsg:
	default:
		t.Fatalf("unexpected message %T", msg)
	}
	m, _ = send(t, m, msg)
	return m
}

func newTestModel(t *testing.T) mainModel {
	t.Helper()
	i18n.Init("pt-BR")
	m := newMainModel(Options{Catalog: mock.Default()})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func loggedIn(t *testing.T) mainModel {
	t.Helper()
	m := newTestModel(t)
	m, cmd := send(t, m, enterKey)
	return follow(t, m, cmd)
}

func TestStartsOnLogin(t *testing.T) {
	m := newTestModel(t)
	if m.nav.Page() != model.PageLogin || m.nav.Authenticated() {
		t.Fatalf("expected unauthenticated login page, got %v", m.nav.Page())
	}
	out := m.View()
	if !strings.Contains(out, "Entrar") {
		t.Fatalf("login view missing submit button: %q", out)
	}
	if !strings.Contains(out, "gerson.penha@aerocode.com") {
		t.Fatalf("login view missing prefilled email")
	}
}

func TestLoginByEnter(t *testing.T) {
	m := loggedIn(t)
	if m.nav.Page() != model.PageDashboard || !m.nav.Authenticated() {
		t.Fatalf("expected dashboard after login, got %v", m.nav.Page())
	}
}

func TestForgotLinkDoesNotLogin(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < loginFocusForgot; i++ {
		m, _ = send(t, m, tabKey)
	}
	if m.login.focus != loginFocusForgot {
		t.Fatalf("expected focus on forgot link, got %d", m.login.focus)
	}
	m, cmd := send(t, m, enterKey)
	if cmd != nil {
		t.Fatalf("forgot link should not emit a command")
	}
	if m.nav.Authenticated() {
		t.Fatalf("forgot link must not log in")
	}
}

func TestGlobalKeysIgnoredBeforeLogin(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runes("2"))
	if m.nav.Page() != model.PageLogin {
		t.Fatalf("number key must not navigate while logged out, got %v", m.nav.Page())
	}
}

func TestSidebarShortcuts(t *testing.T) {
	cases := []struct {
		key  string
		want model.Page
	}{
		{"2", model.PageProjectList},
		{"3", model.PageReports},
		{"4", model.PageSettings},
		{"p", model.PageProfile},
		{"1", model.PageDashboard},
	}
	m := loggedIn(t)
	for _, c := range cases {
		m, _ = send(t, m, runes(c.key))
		if m.nav.Page() != c.want {
			t.Fatalf("key %q: expected %v, got %v", c.key, c.want, m.nav.Page())
		}
	}
}

func TestTabCyclesSections(t *testing.T) {
	m := loggedIn(t)
	want := []model.Page{model.PageProjectList, model.PageReports, model.PageSettings, model.PageDashboard}
	for _, w := range want {
		m, _ = send(t, m, tabKey)
		if m.nav.Page() != w {
			t.Fatalf("expected %v, got %v", w, m.nav.Page())
		}
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.nav.Page() != model.PageSettings {
		t.Fatalf("shift+tab from dashboard: expected settings, got %v", m.nav.Page())
	}
}

func TestProjectDetailRoundTrip(t *testing.T) {
	m := loggedIn(t)
	m, _ = send(t, m, runes("2"))
	m, cmd := send(t, m, enterKey)
	m = follow(t, m, cmd)
	if m.nav.Page() != model.PageProjectDetail {
		t.Fatalf("expected project detail, got %v", m.nav.Page())
	}
	if !strings.Contains(m.View(), "Aero-X1") {
		t.Fatalf("detail view missing project id")
	}
	m, cmd = send(t, m, escKey)
	m = follow(t, m, cmd)
	if m.nav.Page() != model.PageProjectList || !m.nav.Authenticated() {
		t.Fatalf("expected project list after back, got %v", m.nav.Page())
	}
}

func TestLogoutFromEveryPage(t *testing.T) {
	for _, p := range model.Pages() {
		if !p.RequiresAuth() {
			continue
		}
		m := loggedIn(t)
		if err := m.nav.Navigate(p); err != nil {
			t.Fatalf("navigate %v: %v", p, err)
		}
		m.enter()
		m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
		m = follow(t, m, cmd)
		if m.nav.Page() != model.PageLogin || m.nav.Authenticated() {
			t.Fatalf("logout from %v: got %v authenticated=%v", p, m.nav.Page(), m.nav.Authenticated())
		}
	}
}

func TestRefusedNavigationKeepsPage(t *testing.T) {
	m := loggedIn(t)
	m, _ = send(t, m, navigateMsg{page: model.PageLogin})
	if m.nav.Page() != model.PageDashboard {
		t.Fatalf("expected to stay on dashboard, got %v", m.nav.Page())
	}
	if m.status == "" {
		t.Fatalf("expected refused navigation to set a status")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestEveryPageHasView(t *testing.T) {
	for _, p := range model.Pages() {
		m := newTestModel(t)
		if p.RequiresAuth() {
			m.nav.Login()
			if err := m.nav.Navigate(p); err != nil {
				t.Fatalf("navigate %v: %v", p, err)
			}
			m.enter()
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("View panicked for %v: %v", p, r)
				}
			}()
			if strings.TrimSpace(m.View()) == "" {
				t.Fatalf("empty view for %v", p)
			}
		}()
	}
}

func TestUnknownPagePanics(t *testing.T) {
	m := loggedIn(t)
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "unhandled page") {
			t.Fatalf("expected unhandled page panic, got %v", r)
		}
	}()
	m.pageView(model.Page(99), 80)
}

func TestDashboardFigures(t *testing.T) {
	m := loggedIn(t)
	want := map[string]string{"active_projects": "8", "pending_tasks": "3", "production_lines": "5"}
	stats := m.dashboard.data.Stats
	if len(stats) != len(want) {
		t.Fatalf("expected %d stat cards, got %d", len(want), len(stats))
	}
	for _, s := range stats {
		if want[s.Key] != s.Value {
			t.Fatalf("stat %s: expected %q, got %q", s.Key, want[s.Key], s.Value)
		}
		card := statCardView(s, 20)
		if !strings.Contains(card, i18n.T("dashboard.stat."+s.Key)) || !strings.Contains(card, s.Value) {
			t.Fatalf("card %s does not pair its label with %s: %q", s.Key, s.Value, card)
		}
	}

	// The line under the labels holds the values, card by card.
	lines := strings.Split(m.dashboard.View(88), "\n")
	label := i18n.T("dashboard.stat.active_projects")
	values := ""
	for i, l := range lines {
		if strings.Contains(l, label) && i+1 < len(lines) {
			values = lines[i+1]
			break
		}
	}
	got := strings.Fields(strings.ReplaceAll(values, "│", " "))
	if strings.Join(got, " ") != "8 3 5" {
		t.Fatalf("expected card values 8 3 5 under the labels, got %q", values)
	}

	out := m.View()
	if n := strings.Count(out, i18n.T("dashboard.alert.title")); n != 1 {
		t.Fatalf("expected exactly one alert banner, got %d", n)
	}
	if !strings.Contains(out, "Rotor de Turbina X-15") {
		t.Fatalf("alert banner missing component name")
	}
}

func TestDashboardWithoutStats(t *testing.T) {
	m := loggedIn(t)
	m.dashboard.data.Stats = nil
	out := m.dashboard.View(88)
	for _, key := range []string{"active_projects", "pending_tasks", "production_lines"} {
		if strings.Contains(out, i18n.T("dashboard.stat."+key)) {
			t.Fatalf("stat %s rendered without data", key)
		}
	}
}

func TestProjectListRows(t *testing.T) {
	m := loggedIn(t)
	m, _ = send(t, m, runes("2"))
	rows := m.projects.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, id := range []string{"Aero-X1", "Aero-X2", "Sky-R3"} {
		if rows[i][0] != id {
			t.Fatalf("row %d: expected %s, got %s", i, id, rows[i][0])
		}
	}
	out := m.View()
	if !strings.Contains(out, "Sky-R3") || !strings.Contains(out, i18n.T("projects.details")) {
		t.Fatalf("project list view missing rows or action")
	}
}

func TestSidebarHighlightsProjectsOnDetail(t *testing.T) {
	i18n.Init("pt-BR")
	out := renderSidebar(model.PageProjectDetail, model.User{Name: "Eng. Gerson"}, 30)
	if !strings.Contains(out, "▸ 2  "+i18n.T("nav.projects")) {
		t.Fatalf("projects entry not highlighted on detail page: %q", out)
	}
	if strings.Count(out, "▸") != 1 {
		t.Fatalf("expected exactly one highlighted entry")
	}
	if !strings.Contains(out, logoutShortcut+"  "+i18n.T("nav.logout")) {
		t.Fatalf("logout entry does not show its shortcut: %q", out)
	}
	out = renderSidebar(model.PageProfile, model.User{Name: "Eng. Gerson"}, 30)
	if strings.Contains(out, "▸") {
		t.Fatalf("no sidebar entry should be highlighted on profile")
	}
}

func TestPageStateResetsOnNavigation(t *testing.T) {
	m := loggedIn(t)
	m, _ = send(t, m, runes("3"))
	m, _ = send(t, m, runes(" "))
	if !m.reports.checked["progress"] {
		t.Fatalf("expected progress checkbox to be toggled")
	}
	m, _ = send(t, m, runes("1"))
	m, _ = send(t, m, runes("3"))
	if m.reports.checked["progress"] {
		t.Fatalf("reports state should reset after leaving the page")
	}
}

func TestSearchCapturesShortcuts(t *testing.T) {
	m := loggedIn(t)
	m, _ = send(t, m, runes("2"))
	m, _ = send(t, m, runes("/"))
	if !m.projects.capturesInput() {
		t.Fatalf("expected search to capture input")
	}
	for _, r := range "sky3L" {
		m, _ = send(t, m, runes(string(r)))
	}
	if m.nav.Page() != model.PageProjectList || !m.nav.Authenticated() {
		t.Fatalf("typing in search must not navigate or log out, got %v", m.nav.Page())
	}
	if got := m.projects.search.Value(); got != "sky3L" {
		t.Fatalf("expected search text sky3L, got %q", got)
	}
}

func TestLanguageChange(t *testing.T) {
	m := loggedIn(t)
	var saved string
	m.save = func(lang string) error { saved = lang; return nil }
	m, _ = send(t, m, languageChangedMsg{lang: "en"})
	defer i18n.Init("pt-BR")
	if i18n.GetLang() != "en" || saved != "en" {
		t.Fatalf("expected language en saved, got lang=%s saved=%s", i18n.GetLang(), saved)
	}
	if !strings.Contains(m.View(), "Projects") {
		t.Fatalf("expected English sidebar after language change")
	}

	m.save = func(string) error { return errors.New("disk full") }
	m, _ = send(t, m, languageChangedMsg{lang: "pt-BR"})
	if !strings.Contains(m.status, "disk full") {
		t.Fatalf("expected save error in status, got %q", m.status)
	}
}

func TestRenderPage(t *testing.T) {
	i18n.Init("pt-BR")
	out, err := RenderPage(model.PageProjectList, Options{}, 120, 40)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(out, "Aero-X2") {
		t.Fatalf("rendered project list missing Aero-X2")
	}
	if _, err := RenderPage(model.Page(99), Options{}, 80, 24); err == nil {
		t.Fatalf("expected error for invalid page")
	}
	out, err = RenderPage(model.PageLogin, Options{User: model.User{Email: "ops@example.com"}}, 80, 24)
	if err != nil {
		t.Fatalf("RenderPage login: %v", err)
	}
	if !strings.Contains(out, "ops@example.com") {
		t.Fatalf("login render should use the overridden email")
	}
}
