// SPDX-License-Identifier: MPL-2.0

package repro

import (
	"fmt"
	"os"
	"path/filepath"
)

// Project is a throwaway uv project inside a temporary directory.
type Project struct {
	// Dir is the project directory commands run in.
	Dir string

	// root is the temporary directory holding the project; Cleanup removes it.
	root string
}

// NewTempProject creates the temporary directory tree for a reproduction run.
func NewTempProject(pkg string) (*Project, error) {
	root, err := os.MkdirTemp("", "shadowdiag-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}

	dir := filepath.Join(root, "test-"+pkg)
	if err := os.Mkdir(dir, 0o755); err != nil {
		_ = os.RemoveAll(root)
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	return &Project{Dir: dir, root: root}, nil
}

// Cleanup removes the temporary directory tree.
func (p *Project) Cleanup() error {
	return os.RemoveAll(p.root)
}

// ShadowFilePath returns the path of the shadow .py file for pkg.
func (p *Project) ShadowFilePath(pkg string) string {
	return filepath.Join(p.Dir, pkg+".py")
}

// WriteShadowFile creates a same-named .py file in the project directory.
func (p *Project) WriteShadowFile(pkg string) (string, error) {
	path := p.ShadowFilePath(pkg)
	if err := os.WriteFile(path, []byte("# This file shadows the installed package\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write shadow file: %w", err)
	}
	return path, nil
}

// RemoveShadowFile deletes the shadow .py file.
func (p *Project) RemoveShadowFile(pkg string) error {
	if err := os.Remove(p.ShadowFilePath(pkg)); err != nil {
		return fmt.Errorf("failed to remove shadow file: %w", err)
	}
	return nil
}

// ShadowPackagePath returns the path of the shadow package directory for pkg.
func (p *Project) ShadowPackagePath(pkg string) string {
	return filepath.Join(p.Dir, pkg)
}

// WriteShadowPackage creates a same-named directory with an __init__.py.
func (p *Project) WriteShadowPackage(pkg string) (string, error) {
	dir := p.ShadowPackagePath(pkg)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create shadow package directory: %w", err)
	}
	initFile := filepath.Join(dir, "__init__.py")
	if err := os.WriteFile(initFile, []byte("# This package shadows the installed package\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write shadow package __init__.py: %w", err)
	}
	return dir, nil
}

// RemoveShadowPackage deletes the shadow package directory.
func (p *Project) RemoveShadowPackage(pkg string) error {
	if err := os.RemoveAll(p.ShadowPackagePath(pkg)); err != nil {
		return fmt.Errorf("failed to remove shadow package directory: %w", err)
	}
	return nil
}

// PyprojectPath returns the path of the project's pyproject.toml.
func (p *Project) PyprojectPath() string {
	return filepath.Join(p.Dir, "pyproject.toml")
}
