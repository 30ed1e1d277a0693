package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagOut    = flag.String("out", "", "Output directory for atlas images")
	flagPrefix = flag.String("prefix", "", "Output image name prefix")
	flagTarget = flag.Int("target", 0, "Target material count (skip builds at or below it)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagPrefix != "" {
		cfg.Output.NamePrefix = *flagPrefix
	}
	if *flagTarget > 0 {
		cfg.Atlas.TargetCount = *flagTarget
	}
}
