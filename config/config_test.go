package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intcode.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[debugger]
prompt = "ic> "
max-steps = 500

[run]
ascii = true

[sweep]
workers = 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Debugger.Prompt != "ic> " || cfg.Debugger.MaxSteps != 500 {
		t.Errorf("debugger = %+v", cfg.Debugger)
	}
	if cfg.Debugger.HistoryLimit != 1000 {
		t.Errorf("history limit default lost: %d", cfg.Debugger.HistoryLimit)
	}
	if !cfg.Run.ASCII || cfg.Sweep.Workers != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[sweep]\nworker = 2\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "sweep.worker") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestLoadClampsWorkers(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[sweep]\nworkers = 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sweep.Workers != 1 {
		t.Errorf("workers = %d, want 1", cfg.Sweep.Workers)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	if _, err := Load(writeConfig(t, "[debugger\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Sweep.Workers != Default().Sweep.Workers {
		t.Errorf("cfg = %+v", cfg)
	}
}
