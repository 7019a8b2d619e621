// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus positions on the login form.
const (
	loginFocusEmail = iota
	loginFocusPassword
	loginFocusSubmit
	loginFocusForgot
	loginFocusGoogle
	loginFocusCount
)

const loginBoxWidth = 48

// loginModel is the sign-in form. Credentials are never checked: any
// submit logs the user in.
type loginModel struct {
	focus  int
	inputs []textinput.Model // 0: email, 1: password
}

func newLoginModel(user model.User) loginModel {
	m := loginModel{inputs: make([]textinput.Model, 2)}
	for i := range m.inputs {
		t := textinput.New()
		t.Prompt = ""
		t.CharLimit = 128
		t.Width = loginBoxWidth - 8
		m.inputs[i] = t
	}
	m.inputs[0].SetValue(user.Email)
	m.inputs[1].SetValue("123456")
	m.inputs[1].EchoMode = textinput.EchoPassword
	m.inputs[1].EchoCharacter = '•'
	m.inputs[0].Focus()
	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % loginFocusCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + loginFocusCount - 1) % loginFocusCount)
	case "enter":
		if m.focus == loginFocusForgot {
			// The password reset link is decorative.
			return m, nil
		}
		return m, loginCmd
	}
	return m.updateInputs(msg)
}

func (m loginModel) setFocus(focus int) (loginModel, tea.Cmd) {
	m.focus = focus
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

func (m loginModel) updateInputs(msg tea.Msg) (loginModel, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the login card centered in width x height.
func (m loginModel) View(width, height int) string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Padding(0, 2).Render("▲"),
		"",
		titleStyle.MarginBottom(0).Render(i18n.T("app.name")),
		helpStyle.Render(i18n.T("app.subtitle")),
	)

	field := func(label string, i int) string {
		border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Width(loginBoxWidth - 6)
		if m.focus == i {
			border = border.BorderForeground(colorHighlight)
		}
		return lipgloss.JoinVertical(lipgloss.Left, sectionTitleStyle.Render(label), border.Render(m.inputs[i].View()))
	}

	button := func(label string, i int) string {
		style := buttonStyle
		if m.focus == i {
			style = activeButtonStyle
		}
		return style.Width(loginBoxWidth - 4).Align(lipgloss.Center).Render(label)
	}

	forgot := helpStyle.Render(i18n.T("login.forgot"))
	if m.focus == loginFocusForgot {
		forgot = linkStyle.Render(i18n.T("login.forgot"))
	}
	divider := helpStyle.Render("──────────── " + i18n.T("login.or") + " ────────────")

	body := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		field(i18n.T("login.email"), loginFocusEmail),
		field(i18n.T("login.password"), loginFocusPassword),
		"",
		button(i18n.T("login.submit"), loginFocusSubmit),
		"",
		forgot,
		"",
		divider,
		"",
		button("G  "+i18n.T("login.google"), loginFocusGoogle),
	)
	card := cardStyle.Padding(1, 2).Width(loginBoxWidth).Render(body)
	page := lipgloss.JoinVertical(lipgloss.Center, card, "", helpStyle.Render(i18n.T("login.help")))

	if width <= 0 || height <= 0 {
		return page
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, page)
}
