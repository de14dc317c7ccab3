package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/courtsidehq/courtside/internal/models"
)

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".courtside")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}

		expected := &models.Config{
			ServerURL:   "https://admin.example.com",
			Theme:       "dark",
			LastSection: "tournaments",
		}

		data, err := json.MarshalIndent(expected, "", "  ")
		if err != nil {
			t.Fatalf("setup: marshal failed: %v", err)
		}

		if err := os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.ServerURL != expected.ServerURL {
			t.Errorf("ServerURL: got %q, want %q", cfg.ServerURL, expected.ServerURL)
		}
		if cfg.Theme != expected.Theme {
			t.Errorf("Theme: got %q, want %q", cfg.Theme, expected.Theme)
		}
		if cfg.LastSection != expected.LastSection {
			t.Errorf("LastSection: got %q, want %q", cfg.LastSection, expected.LastSection)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.ServerURL != "" || cfg.LastSection != "" {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".courtside")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{not json"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("expected error for corrupt config")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	if err := SetServerURL(dir, "http://localhost:8000"); err != nil {
		t.Fatalf("SetServerURL failed: %v", err)
	}
	if err := SetLastSection(dir, "users"); err != nil {
		t.Fatalf("SetLastSection failed: %v", err)
	}

	url, err := GetServerURL(dir)
	if err != nil {
		t.Fatalf("GetServerURL failed: %v", err)
	}
	if url != "http://localhost:8000" {
		t.Errorf("ServerURL: got %q", url)
	}

	section, err := GetLastSection(dir)
	if err != nil {
		t.Fatalf("GetLastSection failed: %v", err)
	}
	if section != "users" {
		t.Errorf("LastSection: got %q", section)
	}

	// Updating one field must not clobber the other.
	if err := SetLastSection(dir, "players"); err != nil {
		t.Fatalf("SetLastSection failed: %v", err)
	}
	url, _ = GetServerURL(dir)
	if url != "http://localhost:8000" {
		t.Errorf("ServerURL clobbered: got %q", url)
	}
}
