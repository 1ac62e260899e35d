// SPDX-License-Identifier: MPL-2.0

package execrun

import (
	"errors"
	"testing"
)

func TestResult_Succeeded(t *testing.T) {
	if !NewSuccessResult().Succeeded() {
		t.Error("NewSuccessResult().Succeeded() = false, want true")
	}
	if NewExitCodeResult(2).Succeeded() {
		t.Error("NewExitCodeResult(2).Succeeded() = true, want false")
	}
	if NewErrorResult(1, errors.New("boom")).Succeeded() {
		t.Error("NewErrorResult().Succeeded() = true, want false")
	}
}

func TestResult_StdoutLines(t *testing.T) {
	r := &Result{Stdout: "/path/to/module.py\n2.0.0\n"}
	lines := r.StdoutLines()
	if len(lines) != 2 {
		t.Fatalf("StdoutLines() = %v, want 2 lines", lines)
	}
	if lines[0] != "/path/to/module.py" || lines[1] != "2.0.0" {
		t.Errorf("StdoutLines() = %v", lines)
	}

	empty := &Result{Stdout: "  \n"}
	if got := empty.StdoutLines(); got != nil {
		t.Errorf("StdoutLines() on blank output = %v, want nil", got)
	}
}

func TestResult_LastStderrLine(t *testing.T) {
	r := &Result{Stderr: "Traceback (most recent call last):\n  File \"<string>\", line 1\nAttributeError: module 'cffi' has no attribute '__version__'\n"}
	want := "AttributeError: module 'cffi' has no attribute '__version__'"
	if got := r.LastStderrLine(); got != want {
		t.Errorf("LastStderrLine() = %q, want %q", got, want)
	}

	if got := (&Result{}).LastStderrLine(); got != "" {
		t.Errorf("LastStderrLine() on empty stderr = %q, want empty", got)
	}
}
