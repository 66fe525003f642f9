package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultDepth != 3 || cfg.MaxDepth != 16 || !cfg.PawnAdvancement {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFile != "" {
		t.Fatalf("unexpected log defaults: %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refute.yaml")
	body := "engine_name: Tester\ndefault_depth: 4\npawn_advancement: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REFUTE_MAX_DEPTH", "6")
	t.Setenv("REFUTE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EngineName != "Tester" || cfg.DefaultDepth != 4 || cfg.PawnAdvancement {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.MaxDepth != 6 || cfg.LogLevel != "debug" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadDepths(t *testing.T) {
	t.Setenv("REFUTE_DEFAULT_DEPTH", "20")
	t.Setenv("REFUTE_MAX_DEPTH", "8")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
