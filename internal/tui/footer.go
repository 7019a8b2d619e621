// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignFooter returns a single-line string where `right` is right-aligned
// within `width` columns and `left` is at the start. If width is too small
// a single space separates the tokens.
func AlignFooter(left, right string, width int) string {
	spaces := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

// renderFooter draws the bottom bar: page hint and status on the first
// line, key help below.
func renderFooter(hint, status, keyHelp string, width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	lines := []string{footerStyle.Width(width).Render(AlignFooter(hint, status, inner))}
	if keyHelp != "" {
		lines = append(lines, helpStyle.Render(keyHelp))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
