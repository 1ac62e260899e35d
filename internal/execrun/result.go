// SPDX-License-Identifier: MPL-2.0

package execrun

import "strings"

// Result captures the outcome of a single external command invocation.
type Result struct {
	// ExitCode is the process exit status (0 on success).
	ExitCode ExitCode
	// Stdout is the captured standard output as text.
	Stdout string
	// Stderr is the captured standard error as text.
	Stderr string
	// Err is set only when the process could not be run at all.
	// A non-zero exit status does not populate Err.
	Err error
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Err: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than invocation failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// Succeeded returns true when the process ran and exited zero.
func (r *Result) Succeeded() bool {
	return r.Err == nil && r.ExitCode.IsSuccess()
}

// StdoutLines returns the trimmed standard output split into lines.
// Returns nil when there was no output.
func (r *Result) StdoutLines() []string {
	out := strings.TrimSpace(r.Stdout)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// LastStderrLine returns the final non-empty line of standard error,
// which for Python tracebacks is the exception summary.
func (r *Result) LastStderrLine() string {
	lines := strings.Split(strings.TrimSpace(r.Stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
