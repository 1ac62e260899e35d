// SPDX-License-Identifier: MPL-2.0

// Package execrun runs external commands and captures their outcome.
//
// Every invocation returns a Result holding the typed exit code and the
// captured standard output and standard error. A non-zero exit is normal
// data, not a Go error: Result.Err is only set when the process could not
// be started at all (binary missing, permission denied, context canceled).
// Callers inspect the Result and decide what a failure means.
package execrun
