// Package config loads treeops settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/treeops/internal/logger"
)

// Config holds defaults for the command layer.
type Config struct {
	// LogLevel sets progress verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Color selects colored output: auto, always or never.
	Color string `yaml:"color"`

	// Root is the directory the MCP server is confined to.
	Root string `yaml:"root"`

	// Extension and BaseName are used when a command gets no filter flags.
	Extension string `yaml:"extension"`
	BaseName  string `yaml:"base_name"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Color:    "auto",
		Root:     ".",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/treeops/config.yaml or the platform
// equivalent. It returns "" when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "treeops", "config.yaml")
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.Root != "" {
		cfg.Root = fileCfg.Root
	}
	cfg.Extension = fileCfg.Extension
	cfg.BaseName = fileCfg.BaseName

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(logger.Levels, ", "))
	}
	switch strings.ToLower(c.Color) {
	case logger.ColorAuto, logger.ColorAlways, logger.ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be one of auto, always, never", c.Color)
	}
	return nil
}

// Flags carries command-line overrides. Nil fields were not given.
type Flags struct {
	LogLevel  *string
	Color     *string
	Extension *string
	BaseName  *string
}

// MergeWithFlags applies every non-nil flag over the loaded values.
func (c *Config) MergeWithFlags(f Flags) {
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Extension != nil {
		c.Extension = *f.Extension
	}
	if f.BaseName != nil {
		c.BaseName = *f.BaseName
	}
}
