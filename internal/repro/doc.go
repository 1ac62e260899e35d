// SPDX-License-Identifier: MPL-2.0

// Package repro implements the shadowing reproduction procedure.
//
// The procedure builds a throwaway uv project in a temporary directory,
// installs the target dependency, and probes the import before and after
// introducing a shadow artifact (first a same-named .py file, then a
// same-named package directory). A failing probe while the shadow is present
// and a clean probe after its removal together demonstrate that the failure
// is module-resolution shadowing, not a package manager bug.
//
// Probe failures are the expected signal and never abort the run; only a
// failing setup command (uv init / uv add) does.
package repro
