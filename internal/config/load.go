package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load resolves the effective configuration: defaults, overlaid with the
// config file when one is found, overlaid with whatever CLI flags were
// set. An explicit -config path skips discovery.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile checks the working directory first, then the per-user
// config directory. Returns "" when neither file exists.
func findConfigFile() string {
	if _, err := os.Stat("./discoforge.yaml"); err == nil {
		return "./discoforge.yaml"
	}
	global := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(global); err == nil {
		return global
	}
	return ""
}

// ConfigDir returns the per-user config directory for this platform.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "DiscoForge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DiscoForge")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "discoforge")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "discoforge")
}

// loadFromFile merges the YAML file at path over cfg's current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
