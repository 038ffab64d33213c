package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .ab/).
	userConfigFile = ".abconfig.yaml"
	// envFile holds optional environment overrides (sibling to .ab/).
	envFile = ".env"

	// Default configuration values
	DefaultLogLevel     = "warn"
	DefaultLogFile      = ""
	DefaultConfirmClear = true
	DefaultColor        = ColorAuto
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables that override .abconfig.yaml.
const (
	EnvLogLevel     = "AB_LOG_LEVEL"
	EnvLogFile      = "AB_LOG_FILE"
	EnvConfirmClear = "AB_CONFIRM_CLEAR"
	EnvColor        = "AB_COLOR"
)

// Config represents user configuration from .abconfig.yaml.
// This file is user-managed and never written by ab.
type Config struct {
	// LogLevel is the minimum level logged (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, sends logs to a file instead of stderr.
	LogFile string `yaml:"log_file"`

	// ConfirmClear makes `ab clear` ask before removing every contact.
	ConfirmClear bool `yaml:"confirm_clear"`

	// Color is auto, always, or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		LogFile:      DefaultLogFile,
		ConfirmClear: DefaultConfirmClear,
		Color:        DefaultColor,
	}
}

// LoadConfig loads .abconfig.yaml if it exists, otherwise returns defaults.
// Partial config files are merged with defaults. Environment variables, or
// a .env file next to .ab/, override file values.
func (s *Storage) LoadConfig() (*Config, error) {
	return LoadConfigDir(s.root)
}

// LoadConfigDir loads configuration for the workspace rooted at dir.
// It does not require .ab/ to exist.
func LoadConfigDir(dir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, userConfigFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	env, err := readEnv(filepath.Join(dir, envFile))
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn, or error)", c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (expected auto, always, or never)", c.Color)
	}
	return nil
}

// applyEnv overlays environment overrides. Process environment wins over .env.
func (c *Config) applyEnv(dotenv map[string]string) error {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Color = v
	}
	if v, ok := lookup(EnvConfirmClear); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvConfirmClear, v, err)
		}
		c.ConfirmClear = b
	}
	return nil
}

// readEnv parses a .env file, returning an empty map if it does not exist.
func readEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	return env, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
