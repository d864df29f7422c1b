package config

import "flag"

var (
	flagConfig string
	flagDebug  bool
	flagOut    string
	flagScale  int
)

// RegisterFlags binds the shared pipeline flags onto a subcommand flag
// set. Every subcommand accepts the same overrides.
func RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to config file")
	fs.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	fs.StringVar(&flagOut, "out", "", "Asset output root directory")
	fs.IntVar(&flagScale, "scale", 0, "Extra nearest-neighbour @Nx export factor")
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagOut != "" {
		cfg.Output.Root = flagOut
	}
	if flagScale > 0 {
		cfg.Output.Scale = flagScale
	}
}
