// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"shadowdiag/internal/execrun"
	"shadowdiag/internal/pyprobe"
)

type (
	// ProbeService is the slice of pyprobe.Prober that the diagnosis needs.
	// Tests substitute a scripted fake.
	ProbeService interface {
		SearchPath(ctx context.Context, dir string) ([]string, error)
		Import(ctx context.Context, dir, pkg string) *execrun.Result
	}

	// Report is the outcome of one diagnosis run.
	Report struct {
		// Package is the import name that was diagnosed.
		Package string
		// Findings are the detected issues; their count is the exit status.
		Findings []Finding
		// Classification is the interpreted import probe outcome.
		Classification pyprobe.Classification
		// Notes carries informational messages (e.g. interpreter fallback).
		Notes []string
	}
)

// IssueCount returns the number of findings.
func (r *Report) IssueCount() int { return len(r.Findings) }

// Remediations returns the deduplicated remediation suggestions for all findings.
func (r *Report) Remediations() []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range r.Findings {
		rem := f.Remediation()
		if rem == "" || seen[rem] {
			continue
		}
		seen[rem] = true
		out = append(out, rem)
	}
	return out
}

// Run performs the diagnosis for pkg from workDir: scan the search path for
// shadow artifacts, attempt the import in a child interpreter, and classify
// the outcome. When no interpreter is reachable the scan falls back to pure
// filesystem inspection of the working directory.
func Run(ctx context.Context, prober ProbeService, pkg, workDir string) *Report {
	report := &Report{Package: pkg}

	searchPath, err := prober.SearchPath(ctx, workDir)
	if err != nil {
		log.Debug("search path probe failed, falling back to filesystem-only scan", "error", err)
		report.Notes = append(report.Notes,
			"no Python interpreter reachable; inspected the working directory only")
	}

	scanner := NewScanner(pkg, workDir, searchPath)
	report.Findings = scanner.Scan()

	if err != nil {
		// Without an interpreter the import probe cannot run either.
		report.Classification = pyprobe.Classification{Outcome: pyprobe.OutcomeProbeError, Detail: err.Error()}
		return report
	}

	report.Classification = pyprobe.Classify(prober.Import(ctx, workDir, pkg))
	reconcile(report)

	return report
}

// reconcile folds the import classification into the findings without double
// counting: a probe that resolved to (or tripped over) an already-flagged
// artifact confirms it rather than adding a second issue.
func reconcile(report *Report) {
	c := report.Classification

	switch c.Outcome {
	case pyprobe.OutcomeLoadedShadowed:
		for _, f := range report.Findings {
			if samePath(f.Path, c.Location) || samePath(f.Path, filepath.Dir(c.Location)) {
				return
			}
		}
		report.Findings = append(report.Findings, Finding{
			Severity: SeverityError,
			Code:     CodeImportShadowed,
			Message:  "import resolved outside the installed-packages location",
			Path:     c.Location,
		})
	case pyprobe.OutcomeImportFailed:
		if len(report.Findings) > 0 {
			// Expected failure mode when a shadow is present; already counted.
			return
		}
		report.Findings = append(report.Findings, Finding{
			Severity: SeverityError,
			Code:     CodeImportFailed,
			Message:  c.Detail,
		})
	}
}

// samePath compares two paths after cleaning.
func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
