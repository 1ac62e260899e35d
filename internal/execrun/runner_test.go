// SPDX-License-Identifier: MPL-2.0

package execrun

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestExecRunner_CapturesStdout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX tools")
	}

	r := NewExecRunner()
	res := r.Run(context.Background(), Spec{Argv: []string{"echo", "hello"}})

	if !res.Succeeded() {
		t.Fatalf("Run() exit = %d, err = %v, want success", res.ExitCode, res.Err)
	}
	if got := strings.TrimSpace(res.Stdout); got != "hello" {
		t.Errorf("Stdout = %q, want %q", got, "hello")
	}
}

func TestExecRunner_NonZeroExitIsNotError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX tools")
	}

	r := NewExecRunner()
	res := r.Run(context.Background(), Spec{Argv: []string{"sh", "-c", "exit 3"}})

	if res.Err != nil {
		t.Fatalf("Run() err = %v, want nil for non-zero exit", res.Err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	r := NewExecRunner()
	res := r.Run(context.Background(), Spec{Argv: []string{"definitely-not-a-real-binary-12345"}})

	if res.Err == nil {
		t.Fatal("Run() err = nil, want invocation error for missing binary")
	}
	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
}

func TestExecRunner_EmptyArgv(t *testing.T) {
	r := NewExecRunner()
	res := r.Run(context.Background(), Spec{})
	if res.Err == nil {
		t.Fatal("Run() err = nil, want error for empty argv")
	}
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX tools")
	}

	dir := t.TempDir()
	r := NewExecRunner()
	res := r.Run(context.Background(), Spec{Argv: []string{"pwd"}, Dir: dir})

	if !res.Succeeded() {
		t.Fatalf("Run() exit = %d, err = %v", res.ExitCode, res.Err)
	}
	if got := strings.TrimSpace(res.Stdout); !strings.HasSuffix(got, dir) && got != dir {
		// Some systems resolve symlinks in TempDir; suffix match keeps this stable.
		t.Errorf("pwd output = %q, want directory %q", got, dir)
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{"single word", "uv", []string{"uv"}, false},
		{"with flags", "uv --offline", []string{"uv", "--offline"}, false},
		{"quoted argument", `uv --cache-dir "/tmp/my cache"`, []string{"uv", "--cache-dir", "/tmp/my cache"}, false},
		{"empty", "", nil, true},
		{"blank", "   ", nil, true},
		{"unterminated quote", `uv "oops`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitLine(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitLine(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}
