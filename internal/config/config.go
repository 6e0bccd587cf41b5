package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report encodings understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the CLI settings. Zero values mean "not set" so that Merge can layer a
// config file and command-line flags over DefaultConfig.
type Config struct {
	LogLevel string `yaml:"log_level,omitempty"`
	Output   string `yaml:"output,omitempty"`

	// WorkLimit caps the number of DFA states produced by convert; 0 means unlimited.
	WorkLimit int `yaml:"work_limit,omitempty"`

	// Deterministic rejects descriptions with epsilon transitions or duplicate
	// (state, symbol) pairs when loading.
	Deterministic bool `yaml:"deterministic,omitempty"`
}

// DefaultConfig returns a Config with the CLI defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Output:   OutputText,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
	if source.Output != "" {
		c.Output = source.Output
	}
	if source.WorkLimit > 0 {
		c.WorkLimit = source.WorkLimit
	}
	if source.Deterministic {
		c.Deterministic = true
	}
}

// Validate reports settings the CLI cannot honour.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output %q (want %s, %s or %s)", c.Output, OutputText, OutputJSON, OutputYAML)
	}
	if c.WorkLimit < 0 {
		return fmt.Errorf("work limit must not be negative, got %d", c.WorkLimit)
	}
	return nil
}

// Load reads a YAML config file, merges it with defaults, and returns the resulting Config.
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}
