// SPDX-License-Identifier: MIT
// Package: lvlalg/cmd/lvlalg/cmd
//
// pretty.go — lipgloss styling for --format pretty.

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlalg/exercise"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorAccent  = lipgloss.Color("#06B6D4")
	colorWarning = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Width(10)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Italic(true)

	idStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

func renderPretty(n int, r exercise.Record) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Exercise %d", n)) + "  " + idStyle.Render(r.Mode.String()+" · "+r.ID),
		labelStyle.Render("problem") + r.Problem,
		labelStyle.Render("solution") + r.Solution,
	}
	for _, nt := range r.Notices {
		lines = append(lines, noticeStyle.Render(fmt.Sprintf("%s at step %d: %s", nt.Kind, nt.Step, nt.Detail)))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
