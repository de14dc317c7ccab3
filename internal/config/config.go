package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/courtsidehq/courtside/internal/models"
)

const configFile = ".courtside/config.json"

// Load reads the config from disk. A missing file yields a zero config.
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk.
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetServerURL sets the admin server base URL.
func SetServerURL(baseDir, url string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.ServerURL = url
	return Save(baseDir, cfg)
}

// GetServerURL returns the configured admin server base URL.
func GetServerURL(baseDir string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.ServerURL, nil
}

// SetLastSection remembers the sidebar section selected when the console
// exited, so the next launch restores it.
func SetLastSection(baseDir, section string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.LastSection = section
	return Save(baseDir, cfg)
}

// GetLastSection returns the last-selected sidebar section.
func GetLastSection(baseDir string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.LastSection, nil
}
