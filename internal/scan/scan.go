// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"shadowdiag/internal/pyprobe"
)

// Scanner inspects directories for artifacts shadowing a named package.
type Scanner struct {
	// Package is the import name being diagnosed (e.g. "cffi").
	Package string
	// WorkDir is the directory diagnosis runs from. An empty sys.path entry
	// resolves to this directory.
	WorkDir string
	// SearchPath is the interpreter's module search path. May be nil when
	// no interpreter is available, in which case only WorkDir is inspected.
	SearchPath []string
}

// NewScanner creates a Scanner for pkg rooted at workDir.
func NewScanner(pkg, workDir string, searchPath []string) *Scanner {
	return &Scanner{Package: pkg, WorkDir: workDir, SearchPath: searchPath}
}

// Scan checks the working directory and every searchable directory outside
// the installed-packages location for shadow artifacts. Directories are
// deduplicated, so the working directory appearing on sys.path (as "" or
// explicitly) yields a single set of findings.
func (s *Scanner) Scan() []Finding {
	dirs := make([]string, 0, len(s.SearchPath)+1)
	seen := make(map[string]bool)

	add := func(dir string) {
		if dir == "" {
			dir = s.WorkDir
		}
		if pyprobe.IsInstalledLocation(dir) {
			return
		}
		clean := filepath.Clean(dir)
		if seen[clean] {
			return
		}
		seen[clean] = true
		dirs = append(dirs, clean)
	}

	add(s.WorkDir)
	for _, entry := range s.SearchPath {
		add(entry)
	}

	var findings []Finding
	for _, dir := range dirs {
		findings = append(findings, s.checkDir(dir)...)
	}
	return findings
}

// checkDir reports shadow artifacts for the package inside a single directory.
func (s *Scanner) checkDir(dir string) []Finding {
	var findings []Finding

	shadowFile := filepath.Join(dir, s.Package+".py")
	if info, err := os.Stat(shadowFile); err == nil && info.Mode().IsRegular() {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Code:     CodeShadowFile,
			Message:  fmt.Sprintf("file %q shadows the installed %q package", s.Package+".py", s.Package),
			Path:     shadowFile,
		})
	}

	shadowDir := filepath.Join(dir, s.Package)
	if info, err := os.Stat(shadowDir); err == nil && info.IsDir() {
		initFile := filepath.Join(shadowDir, "__init__.py")
		if initInfo, err := os.Stat(initFile); err == nil && initInfo.Mode().IsRegular() {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Code:     CodeShadowPackage,
				Message:  fmt.Sprintf("directory %q shadows the installed %q package", s.Package+string(os.PathSeparator), s.Package),
				Path:     shadowDir,
			})
		}
	}

	return findings
}
