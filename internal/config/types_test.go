// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"shadowdiag/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UvBinary != DefaultUvBinary {
		t.Errorf("UvBinary = %q, want %q", cfg.UvBinary, DefaultUvBinary)
	}
	if cfg.PythonBinary != DefaultPythonBinary {
		t.Errorf("PythonBinary = %q, want %q", cfg.PythonBinary, DefaultPythonBinary)
	}
	if cfg.Package != DefaultPackage {
		t.Errorf("Package = %q, want %q", cfg.Package, DefaultPackage)
	}
	if cfg.KeepTemp {
		t.Error("KeepTemp = true, want false by default")
	}
	if ok, errs := cfg.IsValid(); !ok {
		t.Errorf("DefaultConfig().IsValid() = false: %v", errs)
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	for _, scheme := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if ok, _ := scheme.IsValid(); !ok {
			t.Errorf("ColorScheme(%q).IsValid() = false, want true", scheme)
		}
	}

	ok, errs := ColorScheme("neon").IsValid()
	if ok {
		t.Error("ColorScheme(\"neon\").IsValid() = true, want false")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("validation errors = %v, want ErrInvalidColorScheme", errs)
	}
}

func TestConfig_IsValid_PackageName(t *testing.T) {
	tests := []struct {
		name  string
		pkg   string
		valid bool
	}{
		{"simple", "cffi", true},
		{"underscore", "my_pkg", true},
		{"leading underscore", "_private", true},
		{"empty", "", false},
		{"dashes are not importable", "typing-extensions", false},
		{"dots", "os.path", false},
		{"leading digit", "1pkg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Package = tt.pkg
			ok, errs := cfg.IsValid()
			if ok != tt.valid {
				t.Errorf("IsValid() = %v, want %v (errs: %v)", ok, tt.valid, errs)
			}
			if !tt.valid && !errors.Is(errors.Join(errs...), ErrInvalidPackageName) {
				t.Errorf("validation errors = %v, want ErrInvalidPackageName", errs)
			}
		})
	}
}

func TestConfig_ResolveUvArgv_Precedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UvBinary = "/opt/uv/bin/uv"

	t.Run("config value", func(t *testing.T) {
		defer testutil.MustUnsetenv(t, EnvUvBinary)()
		argv, err := cfg.ResolveUvArgv("")
		if err != nil {
			t.Fatalf("ResolveUvArgv() error = %v", err)
		}
		if len(argv) != 1 || argv[0] != "/opt/uv/bin/uv" {
			t.Errorf("argv = %v, want config value", argv)
		}
	})

	t.Run("env overrides config", func(t *testing.T) {
		defer testutil.MustSetenv(t, EnvUvBinary, "uv --offline")()
		argv, err := cfg.ResolveUvArgv("")
		if err != nil {
			t.Fatalf("ResolveUvArgv() error = %v", err)
		}
		if len(argv) != 2 || argv[0] != "uv" || argv[1] != "--offline" {
			t.Errorf("argv = %v, want env value split into fields", argv)
		}
	})

	t.Run("flag overrides env", func(t *testing.T) {
		defer testutil.MustSetenv(t, EnvUvBinary, "env-uv")()
		argv, err := cfg.ResolveUvArgv("flag-uv")
		if err != nil {
			t.Fatalf("ResolveUvArgv() error = %v", err)
		}
		if len(argv) != 1 || argv[0] != "flag-uv" {
			t.Errorf("argv = %v, want flag value", argv)
		}
	})

	t.Run("default when everything is empty", func(t *testing.T) {
		defer testutil.MustUnsetenv(t, EnvUvBinary)()
		empty := &Config{}
		argv, err := empty.ResolveUvArgv("")
		if err != nil {
			t.Fatalf("ResolveUvArgv() error = %v", err)
		}
		if len(argv) != 1 || argv[0] != DefaultUvBinary {
			t.Errorf("argv = %v, want default", argv)
		}
	})
}

func TestConfig_ResolvePythonArgv(t *testing.T) {
	cfg := DefaultConfig()

	argv, err := cfg.ResolvePythonArgv("")
	if err != nil {
		t.Fatalf("ResolvePythonArgv() error = %v", err)
	}
	if len(argv) != 1 || argv[0] != DefaultPythonBinary {
		t.Errorf("argv = %v, want default interpreter", argv)
	}

	argv, err = cfg.ResolvePythonArgv("/usr/bin/python3.12")
	if err != nil {
		t.Fatalf("ResolvePythonArgv() error = %v", err)
	}
	if len(argv) != 1 || argv[0] != "/usr/bin/python3.12" {
		t.Errorf("argv = %v, want flag override", argv)
	}
}
