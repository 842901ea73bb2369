package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HUDDLE_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", "/home/ada")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join("/home/ada", ".huddle.db") {
		t.Fatalf("expected expanded default path, got %q", cfg.BasePath())
	}
	if cfg.Backend() != BackendDiskv {
		t.Fatalf("expected diskv backend, got %q", cfg.Backend())
	}
	if cfg.MeetingURL() != DefaultMeetingURL {
		t.Fatalf("expected default meeting url, got %q", cfg.MeetingURL())
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := []byte("path: " + filepath.Join(dir, "data") + "\nbackend: sqlite\nlog_level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, ".huddle.yaml"), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HUDDLE_CONFIG_PATH", dir)
	t.Setenv("HUDDLE_MEETING_URL", "https://meet.example.test/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") {
		t.Fatalf("expected path from file, got %q", cfg.BasePath())
	}
	if cfg.Backend() != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", cfg.Backend())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.LogLevel())
	}
	if cfg.MeetingURL() != "https://meet.example.test/" {
		t.Fatalf("expected env meeting url, got %q", cfg.MeetingURL())
	}
}
