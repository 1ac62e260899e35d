// SPDX-License-Identifier: MPL-2.0

package pyprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"shadowdiag/internal/execrun"
)

// SearchPathSnippet prints the interpreter's module search path as JSON.
const SearchPathSnippet = "import sys, json; print(json.dumps(sys.path))"

// ImportSnippet returns Python code that imports pkg and prints its source
// location and version. The version attribute is accessed directly, not via
// getattr: an empty shadow file has no __version__, so the direct access
// raises the AttributeError we want to observe.
func ImportSnippet(pkg string) string {
	return fmt.Sprintf("import %s; print(%s.__file__); print(%s.__version__)", pkg, pkg, pkg)
}

// LocationSnippet returns Python code that imports pkg and prints only its
// resolved source file path.
func LocationSnippet(pkg string) string {
	return fmt.Sprintf("import %s; print(%s.__file__)", pkg, pkg)
}

// UvRunArgv builds the argv for running a Python snippet through `uv run`,
// so the probe sees the project's virtual environment.
func UvRunArgv(uv []string, code string) []string {
	return append(slices.Clone(uv), "run", "python", "-c", code)
}

// PythonArgv builds the argv for running a Python snippet with a bare
// interpreter (used by diagnosis, which probes the ambient environment).
func PythonArgv(python []string, code string) []string {
	return append(slices.Clone(python), "-c", code)
}

// Prober runs probes against a Python interpreter in a given directory.
type Prober struct {
	runner execrun.Runner
	python []string
}

// NewProber creates a Prober that invokes the given interpreter argv.
func NewProber(runner execrun.Runner, python []string) *Prober {
	return &Prober{runner: runner, python: python}
}

// Import runs the import probe for pkg in dir.
func (p *Prober) Import(ctx context.Context, dir, pkg string) *execrun.Result {
	return p.runner.Run(ctx, execrun.Spec{Argv: PythonArgv(p.python, ImportSnippet(pkg)), Dir: dir})
}

// Location runs the location probe for pkg in dir.
func (p *Prober) Location(ctx context.Context, dir, pkg string) *execrun.Result {
	return p.runner.Run(ctx, execrun.Spec{Argv: PythonArgv(p.python, LocationSnippet(pkg)), Dir: dir})
}

// SearchPath returns the interpreter's sys.path as seen from dir.
// An empty string entry means the interpreter's working directory.
func (p *Prober) SearchPath(ctx context.Context, dir string) ([]string, error) {
	res := p.runner.Run(ctx, execrun.Spec{Argv: PythonArgv(p.python, SearchPathSnippet), Dir: dir})
	if res.Err != nil {
		return nil, fmt.Errorf("failed to run interpreter: %w", res.Err)
	}
	if !res.ExitCode.IsSuccess() {
		return nil, fmt.Errorf("interpreter exited %s: %s", res.ExitCode, res.LastStderrLine())
	}

	var paths []string
	if err := json.Unmarshal([]byte(res.Stdout), &paths); err != nil {
		return nil, fmt.Errorf("failed to decode sys.path output: %w", err)
	}
	return paths, nil
}
