// Package config provides YAML-based configuration for the declaration
// converter.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure. It is threaded through the
// pipeline as an explicit value; nothing reads it as module-level state.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Format   FormatConfig   `yaml:"format"`
	Advanced AdvancedConfig `yaml:"advanced"`
}

// InputConfig locates and filters the files to convert.
type InputConfig struct {
	Directory string `yaml:"directory"`
	// Extension must match exactly, case-sensitive. Files with any other
	// extension are skipped silently.
	Extension string `yaml:"extension"`
}

// OutputConfig controls where and how archives are written.
type OutputConfig struct {
	Directory     string `yaml:"directory"`
	ArchiveSuffix string `yaml:"archive_suffix"`
}

// FormatConfig describes the interchange format itself: the legacy code page,
// the literal record separator and the field markers.
type FormatConfig struct {
	Encoding            string `yaml:"encoding"`
	RecordSeparator     string `yaml:"record_separator"`
	PayPeriodMarker     string `yaml:"pay_period_marker"`
	EstablishmentMarker string `yaml:"establishment_marker"`
	ActivityMarker      string `yaml:"activity_marker"`
}

// AdvancedConfig contains tuning options.
type AdvancedConfig struct {
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration for the standard
// declaration layout.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Directory: "",
			Extension: ".dsn",
		},
		Output: OutputConfig{
			Directory:     "",
			ArchiveSuffix: "_dsn.zip",
		},
		Format: FormatConfig{
			Encoding:            "latin1",
			RecordSeparator:     "S20.G00.05.001,'01'\r\n",
			PayPeriodMarker:     "S20.G00.05.005",
			EstablishmentMarker: "S21.G00.06.001",
			ActivityMarker:      "S21.G00.06.002",
		},
		Advanced: AdvancedConfig{
			LogLevel: "info",
		},
	}
}

// Load loads configuration from a YAML file. An empty path returns the
// defaults; a missing file is created with the defaults on first run. In
// both cases environment overrides are applied afterwards.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		cfg := DefaultConfig()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(configPath); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.resolvePaths(filepath.Dir(configPath))

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(configPath string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# dsnsplit configuration\n# This file is auto-generated on first run.\n\n")
	if err := os.WriteFile(configPath, append(header, output...), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides lets environment variables override config values.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv("DSNSPLIT_INPUT_DIR"); dir != "" {
		c.Input.Directory = dir
	}
	if dir := os.Getenv("DSNSPLIT_OUTPUT_DIR"); dir != "" {
		c.Output.Directory = dir
	}
	if level := os.Getenv("DSNSPLIT_LOG_LEVEL"); level != "" {
		c.Advanced.LogLevel = level
	}
}

// resolvePaths converts relative directories to absolute, based on the config
// file location.
func (c *Config) resolvePaths(configDir string) {
	if c.Input.Directory != "" && !filepath.IsAbs(c.Input.Directory) {
		c.Input.Directory = filepath.Join(configDir, c.Input.Directory)
	}
	if c.Output.Directory != "" && !filepath.IsAbs(c.Output.Directory) {
		c.Output.Directory = filepath.Join(configDir, c.Output.Directory)
	}
}

// EnsureDirectories creates the output directory if absent.
func (c *Config) EnsureDirectories() error {
	if c.Output.Directory == "" {
		return nil
	}
	if err := os.MkdirAll(c.Output.Directory, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", c.Output.Directory, err)
	}
	return nil
}
