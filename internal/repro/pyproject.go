// SPDX-License-Identifier: MPL-2.0

package repro

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// pyprojectFile is the subset of pyproject.toml the reproduction cares about.
type pyprojectFile struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// DependencyRecorded reports whether pyproject.toml at path lists pkg among
// the project dependencies. Requirement specifiers ("cffi>=2.0") are matched
// on their name part, normalized the way package indexes do (case-insensitive,
// '-' and '_' equivalent).
func DependencyRecorded(path, pkg string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read pyproject.toml: %w", err)
	}

	var file pyprojectFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return false, fmt.Errorf("failed to parse pyproject.toml: %w", err)
	}

	want := normalizeName(pkg)
	for _, dep := range file.Project.Dependencies {
		if normalizeName(requirementName(dep)) == want {
			return true, nil
		}
	}
	return false, nil
}

// requirementName extracts the distribution name from a requirement
// specifier, cutting at the first version/extras/marker character.
func requirementName(req string) string {
	req = strings.TrimSpace(req)
	for i, r := range req {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
		default:
			return req[:i]
		}
	}
	return req
}

// normalizeName lowercases and folds '-'/'.' into '_'.
func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return name
}
