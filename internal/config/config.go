package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the stagelist configuration file
type Config struct {
	LogFile      *string `json:"logFile,omitempty" validate:"omitempty,min=1"`
	Debug        *bool   `json:"debug,omitempty"`
	Color        *string `json:"color,omitempty" validate:"omitempty,oneof=auto always never"`
	StrictBounds *bool   `json:"strictBounds,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultPath returns the config file path.
// If STAGELIST_CONFIG is set, uses that path.
// Otherwise, uses ~/.stagelist/config.json
func DefaultPath() string {
	if customPath := os.Getenv("STAGELIST_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".stagelist.json"
	}
	return filepath.Join(homeDir, ".stagelist", "config.json")
}

// Load reads the config at path. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg to path, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Validate checks field values against their constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from STAGELIST_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv("STAGELIST_LOG_FILE"); v != "" {
		c.LogFile = &v
	}
	if v := os.Getenv("STAGELIST_COLOR"); v != "" {
		c.Color = &v
	}
	if v := os.Getenv("STAGELIST_STRICT"); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			c.StrictBounds = &strict
		}
	}
	if os.Getenv("DEBUG") != "" {
		debug := true
		c.Debug = &debug
	}
}

// LogFilePath returns the configured log file, or empty when file logging is off
func (c *Config) LogFilePath() string {
	if c.LogFile != nil {
		return *c.LogFile
	}
	return ""
}

// IsDebug returns whether debug output is enabled
func (c *Config) IsDebug() bool {
	return c.Debug != nil && *c.Debug
}

// ColorMode returns the color mode, or "auto" as default
func (c *Config) ColorMode() string {
	if c.Color != nil && *c.Color != "" {
		return *c.Color
	}
	return "auto"
}

// IsStrict returns whether out-of-bounds operations stop a script run
func (c *Config) IsStrict() bool {
	return c.StrictBounds != nil && *c.StrictBounds
}
