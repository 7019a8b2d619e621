// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// profileModel shows the logged-in user. "c" copies the email address.
type profileModel struct {
	user    model.User
	profile model.Profile
	note    string
	noteErr bool
}

func newProfileModel(user model.User, profile model.Profile) profileModel {
	return profileModel{user: user, profile: profile}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "c" {
		if err := writeClipboard(m.user.Email); err != nil {
			m.note, m.noteErr = i18n.T("profile.copy_failed", err), true
		} else {
			m.note, m.noteErr = i18n.T("profile.copied"), false
		}
	}
	return m, nil
}

func (m profileModel) View(width int) string {
	cardWidth := width - 2
	if cardWidth > 60 {
		cardWidth = 60
	}

	avatar := avatarStyle.Padding(1, 3).Render(m.user.Initial())
	identity := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render(m.user.Name),
		helpStyle.Render(m.user.Email),
	)
	head := lipgloss.JoinHorizontal(lipgloss.Center, avatar, "  ", identity)

	field := func(labelID, value string) string {
		return sectionTitleStyle.Render(i18n.T(labelID)) + " " + value
	}
	details := lipgloss.JoinVertical(lipgloss.Left,
		field("profile.role", m.profile.Role),
		field("profile.department", m.profile.Department),
		field("profile.member_since", fmt.Sprint(m.profile.MemberSince)),
	)

	note := helpStyle.Render(i18n.T("profile.copy"))
	if m.note != "" {
		note = successStyle.Render(m.note)
		if m.noteErr {
			note = errorStyle.Render(m.note)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(i18n.T("profile.title")),
		cardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, head, "", details)),
		"",
		note,
	)
}
