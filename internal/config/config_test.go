package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("Theme = %q, want mocha", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`theme: latte
ignore: '\.lock$'
log_level: debug
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme = %q, want latte", cfg.Theme)
	}
	if cfg.IgnorePattern != `\.lock$` {
		t.Errorf("IgnorePattern = %q", cfg.IgnorePattern)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Error("expected error for invalid yaml")
	}
	if cfg.Theme != "mocha" {
		t.Errorf("invalid yaml should fall back to defaults, Theme = %q", cfg.Theme)
	}
}

func TestLoadFrom_EmptyFieldsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`ignore: 'vendor/'`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("Theme = %q, want default mocha", cfg.Theme)
	}
	if cfg.IgnorePattern != "vendor/" {
		t.Errorf("IgnorePattern = %q, want vendor/", cfg.IgnorePattern)
	}
}

func TestStateDir_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	got := StateDir()
	want := filepath.Join("/tmp/xdg-state", "pickpack")
	if got != want {
		t.Errorf("StateDir() = %q, want %q", got, want)
	}
}
