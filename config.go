package ordsort

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Config holds configuration settings for ordsort
type Config struct {
	Logger                  *zerolog.Logger // receives a debug event per sort; nil disables logging
	RecoverComparisonPanics bool            // convert panics raised by a rule into a *ComparisonError
	Workers                 int             // maximum number of concurrent sorts used by SortEach
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	nop := zerolog.Nop()
	return &Config{
		Logger:                  &nop,
		RecoverComparisonPanics: false,
		Workers:                 runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first invalid field in c
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Value: c.Workers, Reason: "must not be negative"}
	}
	return nil
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.Logger == nil {
		merged.Logger = d.Logger
	}
	if merged.Workers <= 0 {
		merged.Workers = d.Workers
	}
	// RecoverComparisonPanics defaults to false, the zero value
	return &merged
}
