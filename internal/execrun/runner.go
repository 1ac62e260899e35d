// SPDX-License-Identifier: MPL-2.0

package execrun

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/shell"
)

type (
	// Spec describes a single command invocation.
	Spec struct {
		// Argv is the command and its arguments. Must not be empty.
		Argv []string
		// Dir is the working directory ("" means inherit).
		Dir string
		// Env holds extra environment variables layered over os.Environ().
		Env map[string]string
	}

	// Runner executes a command described by a Spec. Implementations must
	// report non-zero exits through the Result, never as an error.
	Runner interface {
		Run(ctx context.Context, spec Spec) *Result
	}

	// ExecRunner is the production Runner backed by os/exec.
	ExecRunner struct{}
)

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures its output.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) *Result {
	if len(spec.Argv) == 0 {
		return NewErrorResult(1, fmt.Errorf("empty command"))
	}

	log.Debug("executing command", "argv", strings.Join(spec.Argv, " "), "dir", spec.Dir)

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), envToSlice(spec.Env)...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = ExitCode(exitErr.ExitCode())
		} else {
			result.ExitCode = 1
			result.Err = fmt.Errorf("failed to execute command: %w", err)
		}
	}

	log.Debug("command finished", "argv0", spec.Argv[0], "exit", result.ExitCode)

	return result
}

// SplitLine splits a command line into argv using shell field splitting,
// so configured tool overrides may carry arguments (e.g. "uv --offline").
// Environment expansion is disabled: the line is taken literally.
func SplitLine(line string) ([]string, error) {
	fields, err := shell.Fields(line, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("invalid command line %q: %w", line, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return fields, nil
}

// envToSlice converts an env map to KEY=VALUE form for os/exec.
func envToSlice(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	return out
}
