package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timer.SessionMinutes != 25 {
		t.Errorf("SessionMinutes = %d, want 25", cfg.Timer.SessionMinutes)
	}
	if !cfg.Notifications.SessionComplete {
		t.Error("SessionComplete notifications should default on")
	}
	if cfg.Display.DefaultCategory != "work" {
		t.Errorf("DefaultCategory = %q, want work", cfg.Display.DefaultCategory)
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Timer.SessionMinutes != 25 {
		t.Errorf("SessionMinutes = %d, want default 25", cfg.Timer.SessionMinutes)
	}
}

func TestLoadConfig_PartialFileMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	body := `{"timer":{"sessionMinutes":50}}`
	if err := os.WriteFile(filepath.Join(dir, ".tasktide.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Timer.SessionMinutes != 50 {
		t.Errorf("SessionMinutes = %d, want 50", cfg.Timer.SessionMinutes)
	}
	if cfg.Display.DefaultCategory != "work" {
		t.Errorf("DefaultCategory = %q, want merged default", cfg.Display.DefaultCategory)
	}
}

func TestLoadConfig_MalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".tasktide.json"), []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() should reject malformed JSON")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".tasktide.json")

	cfg := DefaultConfig()
	cfg.Timer.SessionMinutes = 15
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Timer.SessionMinutes != 15 {
		t.Errorf("SessionMinutes = %d, want 15", loaded.Timer.SessionMinutes)
	}
}

func TestMergeWithDefaults_InvalidSessionMinutes(t *testing.T) {
	cfg := MergeWithDefaults(&Config{Timer: TimerConfig{SessionMinutes: -5}})
	if cfg.Timer.SessionMinutes != 25 {
		t.Errorf("SessionMinutes = %d, want 25", cfg.Timer.SessionMinutes)
	}
}
