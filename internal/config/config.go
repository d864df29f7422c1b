// Package config handles pipeline configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Generator GeneratorConfig `yaml:"generator"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// OutputConfig holds asset output settings.
type OutputConfig struct {
	// Root is the directory the asset tree is written under.
	Root string `yaml:"root"`
	// Scale > 1 additionally emits nearest-neighbour @Nx copies of
	// every sheet.
	Scale int `yaml:"scale"`
}

// GeneratorConfig holds deterministic generation settings.
type GeneratorConfig struct {
	// SeedOffset is added to every recipe's fixed seed. Leave at 0 to
	// reproduce the stock assets.
	SeedOffset int64 `yaml:"seed_offset"`
	// SkinFile points at an optional YAML skin table merged over the
	// built-in skins.
	SkinFile string `yaml:"skin_file"`
}

// AudioConfig holds audio rendering settings.
type AudioConfig struct {
	// Peak is the normalization target for WAV output, in (0, 1].
	Peak float64 `yaml:"peak"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Root:  "assets",
			Scale: 1,
		},
		Generator: GeneratorConfig{
			SeedOffset: 0,
			SkinFile:   "",
		},
		Audio: AudioConfig{
			Peak: 0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
