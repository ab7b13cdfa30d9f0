// Package config holds the stressmark configuration and its viper-based
// loading from files, environment variables, and command-line flags.
package config

import (
	"fmt"
	"slices"
)

// Formats and log levels accepted by Validate.
var (
	validFormats   = []string{"text", "json"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config represents the complete configuration for the stressmark CLI.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Benchmark run settings
	Run RunConfig `mapstructure:"run" yaml:"run" json:"run"`

	// Output settings
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
}

// RunConfig contains benchmark execution settings.
type RunConfig struct {
	// Iterations is the number of times each workload's computation is
	// repeated inside one timed measurement.
	Iterations int `mapstructure:"iterations" yaml:"iterations" json:"iterations"`
}

// OutputConfig contains result rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Run: RunConfig{
			Iterations: 1,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (must be one of %v)", c.LogLevel, validLogLevels)
	}

	if c.Run.Iterations < 1 {
		return fmt.Errorf("run.iterations must be at least 1, got %d", c.Run.Iterations)
	}

	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q (must be one of %v)", c.Output.Format, validFormats)
	}

	return nil
}
