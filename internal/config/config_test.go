// ABOUTME: Tests for config loading, defaults, and path expansion.
// ABOUTME: Verifies the seed toggle and save/load round-trip.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/fittrack/internal/storage"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
	if !cfg.ShouldSeed() {
		t.Error("Expected seeding enabled by default")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittrack", "config.json")

	off := false
	cfg := &Config{DataDir: "/tmp/fittrack-data", SeedCatalog: &off}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.DataDir != "/tmp/fittrack-data" {
		t.Errorf("DataDir mismatch: got %q", loaded.DataDir)
	}
	if loaded.ShouldSeed() {
		t.Error("Expected seeding disabled after round-trip")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got != storage.DataDir() {
		t.Errorf("Expected XDG default %q, got %q", storage.DataDir(), got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOpenStorageCreatesDBUnderDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir}

	s, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, "fittrack.db")); err != nil {
		t.Errorf("Expected database file under data dir: %v", err)
	}
}

func TestPrefsDir(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.PrefsDir(); got != "/data/prefs" {
		t.Errorf("PrefsDir = %q, want /data/prefs", got)
	}
}
