// =============================================================================
// Export Document Generator - Configuration Module
// =============================================================================
//
// Loads and validates the application configuration. One YAML file controls
// where generated workbooks land, where processed records are archived,
// which branding images are attached, and how the CLI behaves.
//
// Shipment-specific data never lives here: records are inputs, not
// configuration.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated workbooks are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed record files are moved
	// after successful generation.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// BRANDING IMAGES
	// =========================================================================

	// Images holds the optional exporter branding image paths. Missing or
	// unreadable images are warnings, not errors.
	Images ImagePaths `yaml:"images"`

	// =========================================================================
	// LOGGING AND PROCESSING SETTINGS
	// =========================================================================

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// MaxConcurrency bounds how many records are processed at once when the
	// generate command receives multiple record files.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError determines whether a failed record aborts the batch.
	// Default: true
	ContinueOnError *bool `yaml:"continue_on_error"`

	// ArchiveOnSuccess moves processed record files into ArchiveDir.
	// Default: true
	ArchiveOnSuccess *bool `yaml:"archive_on_success"`
}

// ImagePaths holds the branding image locations.
type ImagePaths struct {
	Header    string `yaml:"header"`
	Footer    string `yaml:"footer"`
	Signature string `yaml:"signature"`
}

// ContinueOnErrorEnabled reports the effective continue_on_error setting.
func (c *Config) ContinueOnErrorEnabled() bool {
	return c.ContinueOnError == nil || *c.ContinueOnError
}

// ArchiveOnSuccessEnabled reports the effective archive_on_success setting.
func (c *Config) ArchiveOnSuccessEnabled() bool {
	return c.ArchiveOnSuccess == nil || *c.ArchiveOnSuccess
}

// Load reads, defaults and validates the configuration file. A missing file
// yields the pure-default configuration rather than an error, so the CLI
// works out of the box.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
}

// validate checks the configuration and creates missing directories.
func validate(cfg *Config) error {
	dirs := []string{cfg.OutputDir, cfg.ArchiveDir}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1")
	}

	return nil
}
