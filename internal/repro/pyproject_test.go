// SPDX-License-Identifier: MPL-2.0

package repro

import (
	"path/filepath"
	"testing"

	"shadowdiag/internal/testutil"
)

func writePyproject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	testutil.MustWriteFile(t, path, content)
	return path
}

func TestDependencyRecorded(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pkg     string
		want    bool
	}{
		{
			name: "bare name",
			content: `[project]
name = "test-cffi"
dependencies = ["cffi"]
`,
			pkg:  "cffi",
			want: true,
		},
		{
			name: "version specifier",
			content: `[project]
name = "test-cffi"
dependencies = ["cffi>=2.0"]
`,
			pkg:  "cffi",
			want: true,
		},
		{
			name: "normalized name",
			content: `[project]
name = "demo"
dependencies = ["Typing-Extensions==4.12.2"]
`,
			pkg:  "typing_extensions",
			want: true,
		},
		{
			name: "extras and markers",
			content: `[project]
name = "demo"
dependencies = ["requests[socks]>=2.31; python_version >= '3.9'"]
`,
			pkg:  "requests",
			want: true,
		},
		{
			name: "absent",
			content: `[project]
name = "demo"
dependencies = ["numpy"]
`,
			pkg:  "cffi",
			want: false,
		},
		{
			name: "no dependencies table",
			content: `[project]
name = "demo"
`,
			pkg:  "cffi",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePyproject(t, tt.content)
			got, err := DependencyRecorded(path, tt.pkg)
			if err != nil {
				t.Fatalf("DependencyRecorded() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DependencyRecorded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDependencyRecordedMissingFile(t *testing.T) {
	if _, err := DependencyRecorded(filepath.Join(t.TempDir(), "pyproject.toml"), "cffi"); err == nil {
		t.Error("expected an error for a missing pyproject.toml")
	}
}

func TestDependencyRecordedMalformedTOML(t *testing.T) {
	path := writePyproject(t, "[project\nbroken")
	if _, err := DependencyRecorded(path, "cffi"); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
