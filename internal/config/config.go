// Package config handles the XDG configuration directory and the optional
// config.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.toml"

	// DirEnv overrides the config directory.
	DirEnv = "TODO_CONFIG_DIR"
)

// Defaults applied when the config file omits a key.
const (
	DefaultPriority    = "Medium"
	DefaultCategory    = "General"
	DefaultLogLevel    = "warn"
	DefaultRecentCount = 5
	DefaultPrompt      = "todo> "
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// DefaultPriority is used by add when --priority is omitted.
	DefaultPriority string

	// DefaultCategory is used by add when --category is omitted.
	DefaultCategory string

	// Color enables styled output.
	Color bool

	// LogLevel is the base log level (debug, info, warn, error).
	LogLevel string

	// RecentCount is the number of tasks shown by list --recent.
	RecentCount int

	// Prompt is the interactive prompt.
	Prompt string
}

// fileConfig mirrors config.toml. Pointers distinguish unset keys.
type fileConfig struct {
	DefaultPriority *string `toml:"default_priority"`
	DefaultCategory *string `toml:"default_category"`
	Color           *bool   `toml:"color"`
	LogLevel        *string `toml:"log_level"`
	RecentCount     *int    `toml:"recent_count"`
	Prompt          *string `toml:"prompt"`
}

// New creates a Config with defaults for the default or specified config directory.
// If configDir is empty, uses $TODO_CONFIG_DIR, XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:             dir,
		DefaultPriority: DefaultPriority,
		DefaultCategory: DefaultCategory,
		Color:           true,
		LogLevel:        DefaultLogLevel,
		RecentCount:     DefaultRecentCount,
		Prompt:          DefaultPrompt,
	}
}

// Load creates a Config and applies config.toml from its directory if present.
// A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	data, err := os.ReadFile(cfg.Path())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.apply(data); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path(), err)
	}
	return cfg, nil
}

// apply validates TOML data against the config schema and merges it into c.
func (c *Config) apply(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid toml: %w", err)
	}
	if err := validate(raw); err != nil {
		return err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid toml: %w", err)
	}

	if fc.DefaultPriority != nil {
		c.DefaultPriority = *fc.DefaultPriority
	}
	if fc.DefaultCategory != nil {
		c.DefaultCategory = *fc.DefaultCategory
	}
	if fc.Color != nil {
		c.Color = *fc.Color
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.RecentCount != nil {
		c.RecentCount = *fc.RecentCount
	}
	if fc.Prompt != nil {
		c.Prompt = *fc.Prompt
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses $TODO_CONFIG_DIR if set, then XDG_CONFIG_HOME, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to config.toml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// WithFlags returns a copy of c with the per-command --quiet and --debug
// flags layered on top.
func (c *Config) WithFlags(quiet, debug bool) *Config {
	cp := *c
	cp.Quiet = c.Quiet || quiet
	cp.Debug = c.Debug || debug
	return &cp
}
