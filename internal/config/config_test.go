package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points the config search path at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadArgsDefaults(t *testing.T) {
	isolate(t)
	cfg, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.MaxRows != 10 || cfg.App.PreferUnicode {
		t.Fatalf("unexpected defaults: %#v", cfg.App)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	isolate(t)
	args := []string{"--width", "72", "--accent", "#ff66aa", "--unicode", "--max-rows", "4", "--trace", "--log-file", "x.log"}
	cfg, err := LoadArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 72 {
		t.Fatalf("expected width 72, got %d", cfg.App.Width)
	}
	if cfg.App.Accent != "#ff66aa" {
		t.Fatalf("expected accent #ff66aa, got %q", cfg.App.Accent)
	}
	if !cfg.App.PreferUnicode {
		t.Fatalf("expected unicode preference")
	}
	if cfg.App.MaxRows != 4 {
		t.Fatalf("expected max rows 4, got %d", cfg.App.MaxRows)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "x.log" {
		t.Fatalf("unexpected logging config: %#v", cfg.Logging)
	}
	if cfg.Flags["width"] != "72" {
		t.Fatalf("expected width flag 72, got %q", cfg.Flags["width"])
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("TABSTRIP_WIDTH", "50")
	t.Setenv("TABSTRIP_MAX_ROWS", "3")
	cfg, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 50 {
		t.Fatalf("expected width 50 from env, got %d", cfg.App.Width)
	}
	if cfg.App.MaxRows != 3 {
		t.Fatalf("expected max rows 3 from env, got %d", cfg.App.MaxRows)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TABSTRIP_WIDTH", "50")
	cfg, err := LoadArgs([]string{"--width", "90"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tabstrip.toml")
	content := "width = 64\naccent = \"#88b300\"\nunicode = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("expected file %q, got %q", path, cfg.File)
	}
	if cfg.App.Accent != "#88b300" || !cfg.App.PreferUnicode {
		t.Fatalf("expected file values, got %#v", cfg.App)
	}
}

func TestSearchPathConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "tabstrip"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tabstrip", "config.toml"), []byte("max-rows = 6\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.MaxRows != 6 {
		t.Fatalf("expected max rows 6 from config.toml, got %d", cfg.App.MaxRows)
	}
}

func TestMissingExplicitConfigFails(t *testing.T) {
	isolate(t)
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestHelpFlag(t *testing.T) {
	isolate(t)
	if _, err := LoadArgs([]string{"--help"}); !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected pflag.ErrHelp, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"negative width", func(c *Config) { c.App.Width = -1 }},
		{"negative height", func(c *Config) { c.App.Height = -1 }},
		{"zero rows", func(c *Config) { c.App.MaxRows = 0 }},
		{"bad accent", func(c *Config) { c.App.Accent = "blue" }},
	}
	for _, tc := range cases {
		cfg := Config{}
		cfg.App.MaxRows = 10
		tc.mut(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
