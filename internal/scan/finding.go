// SPDX-License-Identifier: MPL-2.0

package scan

import "fmt"

const (
	// SeverityWarning indicates a condition worth surfacing that does not
	// by itself break imports.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a detected shadowing issue.
	SeverityError Severity = "error"
)

const (
	// CodeShadowFile flags a same-named .py file on the search path.
	CodeShadowFile = "shadow_file"
	// CodeShadowPackage flags a same-named directory with an __init__.py.
	CodeShadowPackage = "shadow_package"
	// CodeImportShadowed flags an import that resolved outside the
	// installed-packages location not already explained by another finding.
	CodeImportShadowed = "import_shadowed"
	// CodeImportFailed flags an import failure with no visible shadow
	// artifact, which usually means the package is not installed at all.
	CodeImportFailed = "import_failed"
)

type (
	// Severity represents diagnosis finding severity.
	Severity string

	// Finding represents a structured diagnosis result that is returned to
	// callers (rather than written to stderr) for consistent rendering policy.
	Finding struct {
		// Severity is the finding level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "shadow_file").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the filesystem path associated with this finding (optional).
		Path string
	}
)

// Remediation returns the suggested fix for the finding, or "" when there is
// no mechanical remedy.
func (f Finding) Remediation() string {
	switch f.Code {
	case CodeShadowFile, CodeShadowPackage, CodeImportShadowed:
		return fmt.Sprintf("Rename or remove %s so the installed package is found first", f.Path)
	case CodeImportFailed:
		return "Install the package (e.g. 'uv add' or 'pip install') and retry the import"
	default:
		return ""
	}
}
