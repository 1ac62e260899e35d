// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"shadowdiag/internal/execrun"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// EnvUvBinary is the environment variable overriding the uv command line.
	EnvUvBinary = "UV_BINARY"

	// DefaultUvBinary is the uv command used when nothing overrides it.
	DefaultUvBinary = "uv"
	// DefaultPythonBinary is the interpreter used for diagnosis probes.
	DefaultPythonBinary = "python3"
	// DefaultPackage is the target dependency; cffi is the package from the
	// original shadowing report.
	DefaultPackage = "cffi"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidPackageName is the sentinel error wrapped by InvalidPackageNameError.
	ErrInvalidPackageName = errors.New("invalid package name")

	// packageNamePattern matches a valid Python import name. Distribution
	// names with dashes (e.g. "typing-extensions") are not importable and
	// would make every probe fail for the wrong reason.
	packageNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

type (
	// ColorScheme selects the terminal color scheme for rendered output.
	ColorScheme string

	// InvalidPackageNameError is returned when the target package is not a
	// valid Python import name.
	InvalidPackageNameError struct {
		Value string
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the application configuration.
	Config struct {
		// UvBinary is the command line invoking uv (may carry flags).
		UvBinary string `mapstructure:"uv_binary"`
		// PythonBinary is the command line invoking the Python interpreter.
		PythonBinary string `mapstructure:"python_binary"`
		// Package is the import name of the target dependency.
		Package string `mapstructure:"target_package"`
		// KeepTemp keeps the throwaway reproduction project on disk.
		KeepTemp bool `mapstructure:"keep_temp"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidPackageNameError) Error() string {
	return fmt.Sprintf("invalid package name %q (must be a valid Python import name)", e.Value)
}

// Unwrap returns ErrInvalidPackageName so callers can use errors.Is for programmatic detection.
func (e *InvalidPackageNameError) Unwrap() error { return ErrInvalidPackageName }

// IsValid returns whether the ColorScheme is one of the recognized values,
// and a list of validation errors if it is not.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidColorScheme, string(s))}
	}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UvBinary:     DefaultUvBinary,
		PythonBinary: DefaultPythonBinary,
		Package:      DefaultPackage,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// IsValid returns whether the Config is internally consistent,
// and the list of validation errors if it is not.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	if ok, schemeErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, schemeErrs...)
	}
	if !packageNamePattern.MatchString(c.Package) {
		errs = append(errs, &InvalidPackageNameError{Value: c.Package})
	}

	return len(errs) == 0, errs
}

// ResolveUvArgv resolves the uv command line with precedence
// flag > UV_BINARY env > config file > default, split into argv.
func (c *Config) ResolveUvArgv(flagOverride string) ([]string, error) {
	line := c.UvBinary
	if env := os.Getenv(EnvUvBinary); env != "" {
		line = env
	}
	if flagOverride != "" {
		line = flagOverride
	}
	if line == "" {
		line = DefaultUvBinary
	}
	return execrun.SplitLine(line)
}

// ResolvePythonArgv resolves the interpreter command line (flag > config >
// default), split into argv.
func (c *Config) ResolvePythonArgv(flagOverride string) ([]string, error) {
	line := c.PythonBinary
	if flagOverride != "" {
		line = flagOverride
	}
	if line == "" {
		line = DefaultPythonBinary
	}
	return execrun.SplitLine(line)
}
