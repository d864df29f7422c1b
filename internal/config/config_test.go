package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Root != "assets" {
		t.Errorf("expected output root 'assets', got %s", cfg.Output.Root)
	}
	if cfg.Output.Scale != 1 {
		t.Errorf("expected scale 1, got %d", cfg.Output.Scale)
	}

	if cfg.Generator.SeedOffset != 0 {
		t.Errorf("expected seed offset 0, got %d", cfg.Generator.SeedOffset)
	}
	if cfg.Generator.SkinFile != "" {
		t.Errorf("expected empty skin file, got %s", cfg.Generator.SkinFile)
	}

	if cfg.Audio.Peak != 0.8 {
		t.Errorf("expected audio peak 0.8, got %f", cfg.Audio.Peak)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "discoforge.yaml")

	yamlContent := `
output:
  root: "build/assets"
  scale: 2

generator:
  seed_offset: 17
  skin_file: "skins.yaml"

audio:
  peak: 0.7

logging:
  level: "debug"
  log_file: "forge.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Root != "build/assets" {
		t.Errorf("expected root 'build/assets', got %s", cfg.Output.Root)
	}
	if cfg.Output.Scale != 2 {
		t.Errorf("expected scale 2, got %d", cfg.Output.Scale)
	}

	if cfg.Generator.SeedOffset != 17 {
		t.Errorf("expected seed offset 17, got %d", cfg.Generator.SeedOffset)
	}
	if cfg.Generator.SkinFile != "skins.yaml" {
		t.Errorf("expected skin file 'skins.yaml', got %s", cfg.Generator.SkinFile)
	}

	if cfg.Audio.Peak != 0.7 {
		t.Errorf("expected peak 0.7, got %f", cfg.Audio.Peak)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "forge.log" {
		t.Errorf("expected log file 'forge.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "discoforge.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  root: out\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Root != "out" {
		t.Errorf("expected root 'out', got %s", cfg.Output.Root)
	}
	// Untouched sections keep their defaults.
	if cfg.Audio.Peak != 0.8 {
		t.Errorf("expected default peak 0.8, got %f", cfg.Audio.Peak)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/discoforge.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "discoforge.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  root: assets\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find discoforge.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				flagDebug = false
			},
		},
		{
			name: "out flag",
			setup: func() {
				flagOut = "custom/assets"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Root != "custom/assets" {
					t.Errorf("expected root 'custom/assets', got %s", cfg.Output.Root)
				}
			},
			teardown: func() {
				flagOut = ""
			},
		},
		{
			name: "scale flag",
			setup: func() {
				flagScale = 3
			},
			verify: func(cfg *Config) {
				if cfg.Output.Scale != 3 {
					t.Errorf("expected scale 3, got %d", cfg.Output.Scale)
				}
			},
			teardown: func() {
				flagScale = 0
			},
		},
		{
			name: "zero scale flag is ignored",
			setup: func() {
				flagScale = 0
			},
			verify: func(cfg *Config) {
				if cfg.Output.Scale != 1 {
					t.Errorf("expected default scale 1, got %d", cfg.Output.Scale)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "discoforge.yaml")

	yamlContent := `
output:
  root: "from-file"
  scale: 2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	flagConfig = configPath
	flagOut = "from-flag"
	defer func() {
		flagConfig = ""
		flagOut = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Root comes from the flag, scale from the file.
	if cfg.Output.Root != "from-flag" {
		t.Errorf("expected root 'from-flag', got %s", cfg.Output.Root)
	}
	if cfg.Output.Scale != 2 {
		t.Errorf("expected scale 2 from file, got %d", cfg.Output.Scale)
	}
}
