// Package config loads the optional user configuration file that
// supplies defaults for the output format, log level and window sort
// order.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/YMC-GitHub/pscan/internal/output"
	"github.com/YMC-GitHub/pscan/internal/sorting"
)

// Config holds the user-tunable defaults. Flags override every field.
type Config struct {
	// Format is the default output format for listings.
	Format string `yaml:"format"`
	// LogLevel sets the diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// SortPosition is the default X_ORDER|Y_ORDER sort for window batches.
	SortPosition string `yaml:"sort_position"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Format:       string(output.FormatTable),
		LogLevel:     "info",
		SortPosition: "1|1",
	}
}

// DefaultConfigPath returns the standard config file location,
// honoring XDG_CONFIG_HOME when set.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pscan", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "pscan", "config.yaml"), nil
}

// Load reads the config file from the standard location. A missing
// file is not an error and yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config file at path, filling unset fields
// with defaults. Unknown keys are rejected so typos surface instead of
// being silently ignored.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	var raw Config
	if err := decodeStrictYAML(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse yaml: %w", path, err)
	}

	if raw.Format != "" {
		cfg.Format = raw.Format
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.SortPosition != "" {
		cfg.SortPosition = raw.SortPosition
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configured values parse. The log level is
// not checked because unknown levels fall back to info.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := sorting.ParsePositionSort(c.SortPosition); err != nil {
		return err
	}
	return nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
