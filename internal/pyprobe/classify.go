// SPDX-License-Identifier: MPL-2.0

package pyprobe

import (
	"path/filepath"
	"strings"

	"shadowdiag/internal/execrun"
)

const (
	// OutcomeLoadedInstalled means the import resolved to the
	// installed-packages location (site-packages or dist-packages).
	OutcomeLoadedInstalled Outcome = "loaded-installed"
	// OutcomeLoadedShadowed means the import succeeded but resolved outside
	// the installed-packages location, which indicates a probable shadow.
	OutcomeLoadedShadowed Outcome = "loaded-shadowed"
	// OutcomeImportFailed means the import raised AttributeError,
	// ImportError, or ModuleNotFoundError. During reproduction this is the
	// expected confirmation signal, not a tool failure.
	OutcomeImportFailed Outcome = "import-failed"
	// OutcomeProbeError means the probe itself could not run or failed in
	// a way that says nothing about shadowing.
	OutcomeProbeError Outcome = "probe-error"
)

// installedMarkers are the directory names that identify the
// installed-packages location on a module search path.
var installedMarkers = []string{"site-packages", "dist-packages"}

type (
	// Outcome classifies an import probe result.
	Outcome string

	// Classification is the interpreted result of an import probe.
	Classification struct {
		// Outcome is the probe outcome class.
		Outcome Outcome
		// Location is the resolved module source path (successful imports only).
		Location string
		// Version is the reported package version (full import probe only).
		Version string
		// Detail is the failure summary line (failed probes only).
		Detail string
	}
)

// Classify interprets an import probe Result.
func Classify(res *execrun.Result) Classification {
	if res.Err != nil {
		return Classification{Outcome: OutcomeProbeError, Detail: res.Err.Error()}
	}

	if res.ExitCode.IsSuccess() {
		lines := res.StdoutLines()
		c := Classification{Outcome: OutcomeLoadedShadowed}
		if len(lines) > 0 {
			c.Location = lines[0]
		}
		if len(lines) > 1 {
			c.Version = lines[1]
		}
		switch {
		case c.Location == "" || c.Location == "None":
			// Namespace packages report __file__ as None; there is no
			// path to act on, so this says nothing about shadowing.
			return Classification{
				Outcome: OutcomeProbeError,
				Detail:  "import succeeded but reported no source location",
			}
		case IsInstalledLocation(c.Location):
			c.Outcome = OutcomeLoadedInstalled
		}
		return c
	}

	detail := res.LastStderrLine()
	for _, marker := range []string{"AttributeError", "ImportError", "ModuleNotFoundError"} {
		if strings.Contains(res.Stderr, marker) {
			return Classification{Outcome: OutcomeImportFailed, Detail: detail}
		}
	}
	return Classification{Outcome: OutcomeProbeError, Detail: detail}
}

// IsInstalledLocation reports whether path lies under an installed-packages
// location. The check matches whole path segments, so a project directory
// that merely contains the substring is not misclassified.
func IsInstalledLocation(path string) bool {
	if path == "" {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		for _, marker := range installedMarkers {
			if seg == marker {
				return true
			}
		}
	}
	return false
}
