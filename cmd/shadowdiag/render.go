// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"shadowdiag/internal/issue"
	"shadowdiag/internal/pyprobe"
	"shadowdiag/internal/scan"
)

// renderReport writes the diagnosis findings card.
func renderReport(w io.Writer, report *scan.Report) {
	var sb strings.Builder

	if report.IssueCount() == 0 {
		sb.WriteString(SuccessStyle.Render("✓ No module shadowing detected for '" + report.Package + "'"))
		sb.WriteString("\n")
		if report.Classification.Outcome == pyprobe.OutcomeLoadedInstalled {
			sb.WriteString(VerboseStyle.Render("  Loaded from: " + report.Classification.Location))
			sb.WriteString("\n")
		}
		writeNotes(&sb, report.Notes)
		fmt.Fprint(w, sb.String())
		renderProbeCard(w, report)
		return
	}

	sb.WriteString(renderHeaderStyle.Render(fmt.Sprintf("✗ %d issue(s) found for '%s'", report.IssueCount(), report.Package)))
	sb.WriteString("\n\n")

	sb.WriteString(renderLabelStyle.Render("Findings:"))
	sb.WriteString("\n")
	for _, f := range report.Findings {
		marker := "•"
		if f.Severity == scan.SeverityError {
			marker = "✗"
		}
		line := fmt.Sprintf("  %s [%s] %s", marker, f.Code, f.Message)
		if f.Path != "" {
			line += " (" + f.Path + ")"
		}
		sb.WriteString(renderValueStyle.Render(line))
		sb.WriteString("\n")
	}

	if rems := report.Remediations(); len(rems) > 0 {
		sb.WriteString("\n")
		sb.WriteString(renderLabelStyle.Render("Remediation:"))
		sb.WriteString("\n")
		for _, rem := range rems {
			sb.WriteString(renderValueStyle.Render("  • " + rem))
			sb.WriteString("\n")
		}
	}

	writeNotes(&sb, report.Notes)

	sb.WriteString("\n")
	sb.WriteString(renderHintStyle.Render("The exit status equals the number of issues found."))
	sb.WriteString("\n")

	fmt.Fprint(w, sb.String())

	if hasShadowFinding(report) {
		renderIssueCard(w, issue.ShadowDetectedId)
	}
	renderProbeCard(w, report)
}

// hasShadowFinding reports whether any finding points at a shadow artifact
// (as opposed to e.g. a missing package).
func hasShadowFinding(report *scan.Report) bool {
	for _, f := range report.Findings {
		switch f.Code {
		case scan.CodeShadowFile, scan.CodeShadowPackage, scan.CodeImportShadowed:
			return true
		}
	}
	return false
}

// renderProbeCard writes the guidance card matching a degraded probe: no
// reachable interpreter gets the install-Python card, any other probe
// failure the generic probe card.
func renderProbeCard(w io.Writer, report *scan.Report) {
	if report.Classification.Outcome != pyprobe.OutcomeProbeError {
		return
	}
	if len(report.Notes) > 0 {
		renderIssueCard(w, issue.PythonNotFoundId)
		return
	}
	renderIssueCard(w, issue.ProbeFailedId)
}

// renderIssueCard writes a catalog entry card, falling back to the raw
// markdown body rather than hiding the guidance when rendering fails.
func renderIssueCard(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	card, err := entry.Render(string(cfg.UI.ColorScheme))
	if err != nil {
		card = string(entry.MarkdownMsg())
	}
	fmt.Fprintln(w, card)
}

// writeNotes appends informational notes (e.g. interpreter fallback).
func writeNotes(sb *strings.Builder, notes []string) {
	for _, note := range notes {
		sb.WriteString(WarningStyle.Render("  Note: " + note))
		sb.WriteString("\n")
	}
}

// renderSetupError writes a reproduction setup failure with the matching
// issue card from the catalog.
func renderSetupError(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	renderIssueCard(w, setupIssueId(err))
}
