// Package config handles engine configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/atlaskit/pkg/atlas"
)

// Config holds all engine settings.
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds packing and compositing settings.
type AtlasConfig struct {
	// Roles to composite, in order. Empty means all recognized roles.
	Roles []string `yaml:"roles"`
	// FallbackSize is the footprint assumed for untextured materials.
	FallbackSize int `yaml:"fallback_size"`
	// TargetCount is the material count at or below which atlas building
	// is skipped.
	TargetCount int `yaml:"target_count"`
	// Backgrounds overrides the default background color per role,
	// as RGBA components in [0,1].
	Backgrounds map[string][4]float32 `yaml:"backgrounds"`
}

// OutputConfig holds output naming and placement settings.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	NamePrefix string `yaml:"name_prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Atlas: AtlasConfig{
			FallbackSize: atlas.DefaultFootprint,
			TargetCount:  1,
		},
		Output: OutputConfig{
			Dir:        "Bake",
			NamePrefix: "Atlas",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks role names and size settings.
func (c *Config) Validate() error {
	for _, name := range c.Atlas.Roles {
		if !atlas.Role(name).Valid() {
			return fmt.Errorf("unknown channel role %q", name)
		}
	}
	for name := range c.Atlas.Backgrounds {
		if !atlas.Role(name).Valid() {
			return fmt.Errorf("background for unknown channel role %q", name)
		}
	}
	if c.Atlas.FallbackSize < 0 {
		return fmt.Errorf("fallback_size must not be negative, got %d", c.Atlas.FallbackSize)
	}
	if c.Atlas.TargetCount < 0 {
		return fmt.Errorf("target_count must not be negative, got %d", c.Atlas.TargetCount)
	}
	return nil
}

// AtlasOptions converts the config into engine build options.
func (c *Config) AtlasOptions() atlas.Options {
	opts := atlas.Options{
		FallbackSize: c.Atlas.FallbackSize,
		TargetCount:  c.Atlas.TargetCount,
		NamePrefix:   c.Output.NamePrefix,
	}
	for _, name := range c.Atlas.Roles {
		opts.Roles = append(opts.Roles, atlas.Role(name))
	}
	if len(c.Atlas.Backgrounds) > 0 {
		opts.Backgrounds = make(map[atlas.Role][4]float32, len(c.Atlas.Backgrounds))
		for name, rgba := range c.Atlas.Backgrounds {
			opts.Backgrounds[atlas.Role(name)] = rgba
		}
	}
	return opts
}
