// SPDX-License-Identifier: MPL-2.0

package repro

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Transcript styles, matching the CLI palette.
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	stepStyle = lipgloss.NewStyle().
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func (p *Procedure) banner(text string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(p.Out, bannerStyle.Render(rule))
	fmt.Fprintln(p.Out, bannerStyle.Render(text))
	fmt.Fprintln(p.Out, bannerStyle.Render(rule))
}

func (p *Procedure) stepf(step int, format string, args ...any) {
	fmt.Fprintf(p.Out, "\n%s %s\n", stepStyle.Render(fmt.Sprintf("%d.", step)), fmt.Sprintf(format, args...))
}

func (p *Procedure) okf(format string, args ...any) {
	fmt.Fprintf(p.Out, "   %s\n", okStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Procedure) failf(format string, args ...any) {
	fmt.Fprintf(p.Out, "   %s\n", failStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Procedure) notef(format string, args ...any) {
	fmt.Fprintf(p.Out, "   %s\n", noteStyle.Render(fmt.Sprintf(format, args...)))
}
