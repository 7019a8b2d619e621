// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/aerocode/aerocode/internal/mock"
	"github.com/aerocode/aerocode/internal/model"
	"github.com/aerocode/aerocode/internal/tui"
	"github.com/aerocode/aerocode/util/slicest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultRenderWidth  = 100
	defaultRenderHeight = 32
)

func pageSlugs() []string {
	return slicest.Map(model.Pages(), model.Page.String)
}

// newRenderCmd prints a single frame of a page without taking over the
// terminal. Useful for screenshots and documentation.
func newRenderCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:       "render <page>",
		Short:     "Print one frame of a page",
		Long:      "Print one frame of a page. Valid pages: " + strings.Join(pageSlugs(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: pageSlugs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := model.ParsePage(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = terminalWidth(defaultRenderWidth)
			}
			out, err := tui.RenderPage(page, tui.Options{User: configUser()}, width, height)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", defaultRenderWidth, "Frame width in columns (default: terminal width)")
	cmd.Flags().IntVar(&height, "height", defaultRenderHeight, "Frame height in rows")
	return cmd
}

// terminalWidth returns the width of stdout when it is a terminal.
func terminalWidth(def int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return def
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return def
	}
	return w
}

// newProjectsCmd prints the project list as a table.
func newProjectsCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the sample projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := mock.Default().Projects
			if status != "" {
				s, err := model.ParseProductionStatus(status)
				if err != nil {
					return err
				}
				projects = slicest.Filter(projects, func(p model.Project) bool { return p.Status == s })
			}
			fmt.Fprintln(cmd.OutOrStdout(), projectTable(projects))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only show projects in this stage (fuselage, wings, electrical, testing)")
	return cmd
}

func projectTable(projects []model.Project) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(
			i18n.T("projects.col.name"),
			i18n.T("projects.col.client"),
			i18n.T("projects.col.status"),
			i18n.T("projects.col.deadline"),
		)
	for _, p := range projects {
		t.Row(p.ID, p.Client, i18n.T("status."+p.Status.String()), p.Deadline.Format(i18n.T("format.date")))
	}
	return t.String()
}
