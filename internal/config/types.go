package config

import (
	"fmt"
	"strings"

	"github.com/benedict2310/scrollyctl/internal/output"
	"github.com/benedict2310/scrollyctl/pkg/model"
)

const (
	EnvConfigPath     = "SCROLLYCTL_CONFIG"
	DefaultAPIVersion = "scrollyctl.dev/v1"
	DefaultLogLevel   = "warn"
)

// Config is the scrollyctl CLI configuration file structure.
type Config struct {
	APIVersion string `yaml:"apiVersion,omitempty"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel,omitempty"`
	// Output is the default report format: table, json or yaml.
	Output string `yaml:"output,omitempty"`
	// ManifestVersion is the story apiVersion used by commands that create manifests.
	ManifestVersion string `yaml:"manifestVersion,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{}
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.APIVersion) == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = string(output.FormatTable)
	}
	if strings.TrimSpace(c.ManifestVersion) == "" {
		c.ManifestVersion = string(model.DefaultVersion)
	}
}

// Validate checks config invariants that must hold for the file to be usable.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logLevel %q is invalid (expected debug|info|warn|error)", c.LogLevel)
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := model.ParseVersion(c.ManifestVersion); err != nil {
		return fmt.Errorf("manifestVersion: %w", err)
	}
	return nil
}

// Set updates one field by its YAML key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "logLevel":
		c.LogLevel = value
	case "output":
		c.Output = value
	case "manifestVersion":
		c.ManifestVersion = value
	default:
		return fmt.Errorf("unknown config key %q (expected logLevel, output or manifestVersion)", key)
	}
	return c.Validate()
}
