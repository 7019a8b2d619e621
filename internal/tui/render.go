// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	"github.com/aerocode/aerocode/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderPage draws a single frame of page without starting a program.
// Pages that require a session are reached through a normal login first,
// so the frame is exactly what the interactive program would show.
func RenderPage(page model.Page, opts Options, width, height int) (string, error) {
	if !page.Valid() {
		return "", fmt.Errorf("render: invalid page %v", page)
	}
	m := newMainModel(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = next.(mainModel)

	if page.RequiresAuth() {
		m.nav.Login()
		if err := m.nav.Navigate(page); err != nil {
			return "", fmt.Errorf("render %s: %w", page, err)
		}
		m.enter()
	}
	return m.View(), nil
}
