package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OverflowMode selects how the squares formulas treat results wider than 32 bits.
type OverflowMode string

const (
	OverflowTruncate OverflowMode = "truncate"
	OverflowError    OverflowMode = "error"
)

// Output formats accepted by the format setting.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// Config holds all configuration for kata
type Config struct {
	// Format is the default output format for results
	Format string `yaml:"format" env:"KATA_FORMAT"`

	// Overflow decides whether truncated squares results are reported or rejected
	Overflow OverflowMode `yaml:"overflow" env:"KATA_OVERFLOW"`

	// NoColor disables ANSI styling in text output and logs
	NoColor bool `yaml:"no_color" env:"KATA_NO_COLOR"`

	// Logging
	Verbose bool `yaml:"verbose" env:"KATA_VERBOSE"`
	LogJSON bool `yaml:"log_json" env:"KATA_LOG_JSON"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatText,
		Overflow: OverflowTruncate,
		NoColor:  false,
		Verbose:  false,
		LogJSON:  false,
	}
}

// GlobalConfigFilePath returns the global config file path (~/.kata/config.yaml)
func GlobalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kata/config.yaml"
	}
	return filepath.Join(home, ".kata", "config.yaml")
}

// ProjectConfigFilePath returns the project-level config file path (./.kata/config.yaml)
func ProjectConfigFilePath() string {
	return filepath.Join(".kata", "config.yaml")
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Project-level config (./.kata/config.yaml)
// 2. Environment variables
// 3. Global config (~/.kata/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg, _, err := LoadWithPath()
	return cfg, err
}

// LoadWithPath is Load that also reports the highest-priority config file that was
// read, or an empty string when only defaults and environment were used.
func LoadWithPath() (*Config, string, error) {
	cfg, used, err := ReadWithPath()
	if err != nil {
		return nil, "", err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, used, nil
}

// ReadWithPath merges global config, environment and project config like
// LoadWithPath but leaves validation to the caller, so later overrides can still
// replace an invalid value.
func ReadWithPath() (*Config, string, error) {
	cfg := DefaultConfig()
	used := ""

	globalConfigPath := GlobalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
		used = globalConfigPath
	}

	applyEnvOverrides(cfg)

	projectConfigPath := ProjectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
		used = projectConfigPath
	}

	cfg.Normalize()
	return cfg, used, nil
}

// LoadFromFile reads configuration from a specific YAML file path
func LoadFromFile(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadFile is LoadFromFile without validation.
func ReadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	cfg.Normalize()

	return cfg, nil
}

// Normalize lowercases and trims the enumerated settings so that "JSON" and
// " json" select the same format.
func (c *Config) Normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Overflow = OverflowMode(strings.ToLower(strings.TrimSpace(string(c.Overflow))))
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KATA_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("KATA_OVERFLOW"); v != "" {
		cfg.Overflow = OverflowMode(v)
	}
	if v := os.Getenv("KATA_NO_COLOR"); v != "" {
		cfg.NoColor = parseBool(v)
	}
	if v := os.Getenv("KATA_VERBOSE"); v != "" {
		cfg.Verbose = parseBool(v)
	}
	if v := os.Getenv("KATA_LOG_JSON"); v != "" {
		cfg.LogJSON = parseBool(v)
	}
}

// Validate checks that the configuration has valid fields
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatMsgpack:
	default:
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', 'yaml' or 'msgpack')", c.Format)
	}

	switch c.Overflow {
	case OverflowTruncate, OverflowError:
	default:
		return fmt.Errorf("invalid overflow: %s (must be 'truncate' or 'error')", c.Overflow)
	}

	return nil
}

func parseBool(s string) bool {
	return s == "true" || s == "1" || s == "yes"
}
