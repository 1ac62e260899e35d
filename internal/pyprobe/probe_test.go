// SPDX-License-Identifier: MPL-2.0

package pyprobe

import (
	"context"
	"strings"
	"testing"

	"shadowdiag/internal/execrun"
)

// recordingRunner records the specs it receives and replays canned results.
type recordingRunner struct {
	specs   []execrun.Spec
	results []*execrun.Result
}

func (r *recordingRunner) Run(_ context.Context, spec execrun.Spec) *execrun.Result {
	r.specs = append(r.specs, spec)
	if len(r.results) == 0 {
		return execrun.NewSuccessResult()
	}
	res := r.results[0]
	r.results = r.results[1:]
	return res
}

func TestImportSnippet_AccessesVersionDirectly(t *testing.T) {
	code := ImportSnippet("cffi")
	if !strings.Contains(code, "import cffi") {
		t.Errorf("ImportSnippet() = %q, missing import", code)
	}
	if !strings.Contains(code, "cffi.__version__") {
		t.Errorf("ImportSnippet() = %q, must access __version__ directly", code)
	}
	if strings.Contains(code, "getattr") {
		t.Errorf("ImportSnippet() = %q, getattr would hide the AttributeError", code)
	}
}

func TestUvRunArgv(t *testing.T) {
	argv := UvRunArgv([]string{"uv", "--offline"}, "import cffi")
	want := []string{"uv", "--offline", "run", "python", "-c", "import cffi"}
	if len(argv) != len(want) {
		t.Fatalf("UvRunArgv() = %v, want %v", argv, want)
	}
	for i := range argv {
		if argv[i] != want[i] {
			t.Errorf("UvRunArgv()[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestUvRunArgv_DoesNotMutateBase(t *testing.T) {
	uv := make([]string, 1, 8)
	uv[0] = "uv"
	_ = UvRunArgv(uv, "probe-a")
	argv := UvRunArgv(uv, "probe-b")
	if argv[4] != "-c" || argv[5] != "probe-b" {
		t.Errorf("UvRunArgv() reused backing array: %v", argv)
	}
}

func TestProber_SearchPath(t *testing.T) {
	runner := &recordingRunner{results: []*execrun.Result{
		{Stdout: `["", "/usr/lib/python3.12", "/venv/lib/python3.12/site-packages"]` + "\n"},
	}}
	p := NewProber(runner, []string{"python3"})

	paths, err := p.SearchPath(context.Background(), "/work")
	if err != nil {
		t.Fatalf("SearchPath() error = %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("SearchPath() = %v, want 3 entries", paths)
	}
	if paths[0] != "" {
		t.Errorf("SearchPath()[0] = %q, want empty entry for cwd", paths[0])
	}

	spec := runner.specs[0]
	if spec.Dir != "/work" {
		t.Errorf("probe dir = %q, want /work", spec.Dir)
	}
	if spec.Argv[0] != "python3" || spec.Argv[1] != "-c" {
		t.Errorf("probe argv = %v", spec.Argv)
	}
}

func TestProber_SearchPath_InterpreterMissing(t *testing.T) {
	runner := &recordingRunner{results: []*execrun.Result{
		execrun.NewErrorResult(1, context.DeadlineExceeded),
	}}
	p := NewProber(runner, []string{"python3"})

	if _, err := p.SearchPath(context.Background(), ""); err == nil {
		t.Fatal("SearchPath() error = nil, want invocation error")
	}
}

func TestProber_SearchPath_BadOutput(t *testing.T) {
	runner := &recordingRunner{results: []*execrun.Result{
		{Stdout: "not json\n"},
	}}
	p := NewProber(runner, []string{"python3"})

	if _, err := p.SearchPath(context.Background(), ""); err == nil {
		t.Fatal("SearchPath() error = nil, want decode error")
	}
}

func TestProber_ImportUsesImportSnippet(t *testing.T) {
	runner := &recordingRunner{}
	p := NewProber(runner, []string{"python3"})

	p.Import(context.Background(), "/proj", "cffi")

	spec := runner.specs[0]
	if got := spec.Argv[len(spec.Argv)-1]; got != ImportSnippet("cffi") {
		t.Errorf("Import() probe code = %q, want %q", got, ImportSnippet("cffi"))
	}
}
