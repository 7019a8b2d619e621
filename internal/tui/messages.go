// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/aerocode/aerocode/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages sent from page models to the root model. Only the root model
// talks to the navigation controller.
type (
	loginMsg    struct{}
	logoutMsg   struct{}
	navigateMsg struct{ page model.Page }

	// languageChangedMsg asks the root model to switch the UI language.
	languageChangedMsg struct{ lang string }
)

func loginCmd() tea.Msg  { return loginMsg{} }
func logoutCmd() tea.Msg { return logoutMsg{} }

func navigateCmd(p model.Page) tea.Cmd {
	return func() tea.Msg { return navigateMsg{page: p} }
}
