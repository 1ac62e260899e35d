// SPDX-License-Identifier: MPL-2.0

package repro

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"shadowdiag/internal/execrun"
	"shadowdiag/internal/issue"
	"shadowdiag/internal/pyprobe"
)

type (
	// Procedure runs the shadowing reproduction end to end.
	Procedure struct {
		// Runner executes external commands. Tests inject a scripted fake.
		Runner execrun.Runner
		// Uv is the uv command argv (binary plus any configured flags).
		Uv []string
		// Package is the import name of the target dependency.
		Package string
		// Keep leaves the temporary project on disk after the run.
		Keep bool
		// Out receives the human-readable transcript.
		Out io.Writer
	}

	// Summary records what the reproduction observed.
	Summary struct {
		// BaselineInstalled is true when the clean project resolved the
		// import from the installed-packages location.
		BaselineInstalled bool
		// FileShadowReproduced is true when the shadow file broke the import.
		FileShadowReproduced bool
		// FileShadowRecovered is true when removing the shadow file restored it.
		FileShadowRecovered bool
		// DirShadowReproduced is true when the shadow directory broke the import.
		DirShadowReproduced bool
		// DirShadowRecovered is true when removing the shadow directory restored it.
		DirShadowRecovered bool
		// KeptProjectDir is the retained project path ("" unless Keep was set).
		KeptProjectDir string
	}
)

// Run executes the reproduction. It returns an error only for setup failures
// (temporary directory, uv init, uv add); probe failures are the expected
// signal and are reported through the transcript and Summary instead.
func (p *Procedure) Run(ctx context.Context) (*Summary, error) {
	proj, err := NewTempProject(p.Package)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("create temporary project").
			WithSuggestion("Check that the system temporary directory is writable").
			Wrap(err).
			BuildError()
	}
	defer func() {
		if p.Keep {
			return
		}
		if err := proj.Cleanup(); err != nil {
			log.Warn("failed to clean up temporary project", "dir", proj.Dir, "error", err)
		}
	}()

	summary := &Summary{}

	p.banner("Reproducing module shadowing (package: " + p.Package + ")")

	p.stepf(1, "Initializing uv project...")
	if res := p.uv(ctx, proj, "init"); !res.Succeeded() {
		return nil, p.setupError("initialize project", proj, res)
	}
	p.okf("Done.")

	p.stepf(2, "Installing %s...", p.Package)
	if res := p.uv(ctx, proj, "add", p.Package); !res.Succeeded() {
		return nil, p.setupError("install dependency", proj, res)
	}
	p.okf("Done.")
	p.verifyPyproject(proj)

	p.stepf(3, "Testing normal %s import (should work)...", p.Package)
	baseline := p.probe(ctx, proj)
	switch baseline.Outcome {
	case pyprobe.OutcomeLoadedInstalled:
		summary.BaselineInstalled = true
		p.okf("Success: %s loaded from %s", p.Package, baseline.Location)
		p.okf("Version: %s", baseline.Version)
	case pyprobe.OutcomeLoadedShadowed:
		p.failf("Unexpected: loaded from %s, outside the installed-packages location", baseline.Location)
	default:
		p.failf("Unexpected probe failure: %s", baseline.Detail)
	}

	summary.FileShadowReproduced, summary.FileShadowRecovered = p.shadowFilePhase(ctx, proj, 4)
	summary.DirShadowReproduced, summary.DirShadowRecovered = p.shadowPackagePhase(ctx, proj, 8)

	p.conclusion(summary)

	if p.Keep {
		summary.KeptProjectDir = proj.Dir
		p.notef("Project kept at %s", proj.Dir)
	}

	return summary, nil
}

// shadowFilePhase introduces a same-named .py file, verifies the breakage,
// removes it, and verifies the recovery. Steps are numbered from base.
func (p *Procedure) shadowFilePhase(ctx context.Context, proj *Project, base int) (reproduced, recovered bool) {
	p.stepf(base, "Creating local %s.py shadow file...", p.Package)
	path, err := proj.WriteShadowFile(p.Package)
	if err != nil {
		p.failf("Error: %v", err)
		return false, false
	}
	p.okf("Created %s", path)

	p.stepf(base+1, "Testing %s import WITH shadow file...", p.Package)
	reproduced = p.expectBroken(ctx, proj)

	p.stepf(base+2, "Checking which %s module is being loaded...", p.Package)
	p.reportLocation(ctx, proj)

	p.stepf(base+3, "Removing shadow file and testing again...")
	if err := proj.RemoveShadowFile(p.Package); err != nil {
		p.failf("Error: %v", err)
		return reproduced, false
	}
	recovered = p.expectRecovered(ctx, proj)

	return reproduced, recovered
}

// shadowPackagePhase runs the same cycle with a same-named directory
// carrying an __init__.py, the other common shadowing shape.
func (p *Procedure) shadowPackagePhase(ctx context.Context, proj *Project, base int) (reproduced, recovered bool) {
	p.stepf(base, "Creating local %s/ shadow package directory...", p.Package)
	path, err := proj.WriteShadowPackage(p.Package)
	if err != nil {
		p.failf("Error: %v", err)
		return false, false
	}
	p.okf("Created %s", filepath.Join(path, "__init__.py"))

	p.stepf(base+1, "Testing %s import WITH shadow directory...", p.Package)
	reproduced = p.expectBroken(ctx, proj)

	p.stepf(base+2, "Removing shadow directory and testing again...")
	if err := proj.RemoveShadowPackage(p.Package); err != nil {
		p.failf("Error: %v", err)
		return reproduced, false
	}
	recovered = p.expectRecovered(ctx, proj)

	return reproduced, recovered
}

// expectBroken probes and reports; returns true when the shadow broke the
// import (failure or resolution away from the installed location).
func (p *Procedure) expectBroken(ctx context.Context, proj *Project) bool {
	c := p.probe(ctx, proj)
	switch c.Outcome {
	case pyprobe.OutcomeImportFailed:
		p.failf("REPRODUCED: import fails while the shadow is present")
		p.notef("Error: %s", c.Detail)
		return true
	case pyprobe.OutcomeLoadedShadowed:
		p.failf("REPRODUCED: import resolves to %s instead of the installed package", c.Location)
		return true
	case pyprobe.OutcomeLoadedInstalled:
		p.okf("Unexpected success: still loaded from %s", c.Location)
		return false
	default:
		p.failf("Probe error: %s", c.Detail)
		return false
	}
}

// expectRecovered probes and reports; returns true when the import is back
// to the installed package.
func (p *Procedure) expectRecovered(ctx context.Context, proj *Project) bool {
	c := p.probe(ctx, proj)
	if c.Outcome == pyprobe.OutcomeLoadedInstalled {
		p.okf("Success: %s loaded from %s", p.Package, c.Location)
		p.okf("Version: %s", c.Version)
		return true
	}
	detail := c.Detail
	if detail == "" {
		detail = "resolved to " + c.Location
	}
	p.failf("Still broken after removing the shadow: %s", detail)
	return false
}

// reportLocation runs the location probe and prints the resolved path.
func (p *Procedure) reportLocation(ctx context.Context, proj *Project) {
	res := p.Runner.Run(ctx, execrun.Spec{
		Argv: pyprobe.UvRunArgv(p.Uv, pyprobe.LocationSnippet(p.Package)),
		Dir:  proj.Dir,
	})
	lines := res.StdoutLines()
	if res.Succeeded() && len(lines) > 0 {
		p.notef("Loaded: %s", lines[0])
		p.notef("^ This is the LOCAL shadow, not the installed package!")
		return
	}
	p.notef("Location probe failed: %s", res.LastStderrLine())
}

// verifyPyproject cross-checks that uv add actually recorded the dependency.
func (p *Procedure) verifyPyproject(proj *Project) {
	recorded, err := DependencyRecorded(proj.PyprojectPath(), p.Package)
	switch {
	case err != nil:
		p.notef("Could not verify pyproject.toml: %v", err)
	case !recorded:
		p.notef("Warning: %s is not listed in pyproject.toml dependencies", p.Package)
	}
}

func (p *Procedure) conclusion(s *Summary) {
	fmt.Fprintln(p.Out)
	p.banner("CONCLUSION")

	if (s.FileShadowReproduced || s.DirShadowReproduced) && s.FileShadowRecovered && s.DirShadowRecovered {
		fmt.Fprintf(p.Out, `
The failure is NOT a package manager bug. A local file or directory named
after the %q package shadows the installed one: the interpreter resolves
the import to the local artifact first. Removing the shadow restores the
import exactly.

SOLUTION: rename or remove any local %s.py file or %s/ directory.
`, p.Package, p.Package, p.Package)
		return
	}

	fmt.Fprintln(p.Out)
	p.notef("The run did not behave as expected; see the transcript above.")
}

// probe runs the import probe through `uv run` inside the project.
func (p *Procedure) probe(ctx context.Context, proj *Project) pyprobe.Classification {
	res := p.Runner.Run(ctx, execrun.Spec{
		Argv: pyprobe.UvRunArgv(p.Uv, pyprobe.ImportSnippet(p.Package)),
		Dir:  proj.Dir,
	})
	return pyprobe.Classify(res)
}

// uv runs a uv subcommand inside the project directory.
func (p *Procedure) uv(ctx context.Context, proj *Project, args ...string) *execrun.Result {
	res := p.Runner.Run(ctx, execrun.Spec{
		Argv: append(slices.Clone(p.Uv), args...),
		Dir:  proj.Dir,
	})
	return res
}

// setupError wraps a failed setup command into an actionable error.
func (p *Procedure) setupError(operation string, proj *Project, res *execrun.Result) error {
	cause := res.Err
	if cause == nil {
		cause = fmt.Errorf("exit status %s: %s", res.ExitCode, res.LastStderrLine())
	}
	p.failf("Error: %v", cause)
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(proj.Dir).
		WithSuggestion("Check that uv is installed and on PATH (or set UV_BINARY)").
		WithSuggestion("Run the failing uv command manually inside the project directory").
		Wrap(cause).
		BuildError()
}
