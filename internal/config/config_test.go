package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Processing.Mods) == 0 {
		t.Fatal("default config enables no mods")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("default log format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("missing file should yield defaults, got level %q", cfg.Logging.Level)
	}
}

func TestLoadParsesAndResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subfix.toml")
	body := `
[processing]
language = "pt-BR"
mods = ["remove_tags", "common", "fix_uppercase"]

[logging]
level = "debug"
format = "json"

[history]
enabled = true
path = "state/history.db"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.ResolvedLanguage(); got != "por" {
		t.Fatalf("ResolvedLanguage() = %q, want por", got)
	}
	if len(cfg.Processing.Mods) != 3 {
		t.Fatalf("mods = %v", cfg.Processing.Mods)
	}
	want := filepath.Join(dir, "state", "history.db")
	if cfg.History.Path != want {
		t.Fatalf("history path = %q, want %q", cfg.History.Path, want)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subfix.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestValidateHistoryNeedsPath(t *testing.T) {
	cfg := Default()
	cfg.History.Enabled = true
	cfg.History.Path = "  "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty history path")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subfix.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error writing over existing config")
	}
}
