// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cronexpand/lib/cron"
)

// EnvironmentVariable names the variable [Load] reads the config path from.
const EnvironmentVariable = "CRONEXPAND_CONFIG"

// Config is the configuration for cronexpand.
type Config struct {
	// LogLevel is the minimum level written to stderr: debug, info,
	// warn, or error.
	// Default: warn
	LogLevel string `yaml:"log_level" json:"log_level" toml:"log_level"`

	// CommandMode selects how the command field is split from the
	// line: "remainder" keeps everything after the fifth field,
	// "token" keeps only the sixth space-separated token.
	// Default: remainder
	CommandMode cron.CommandMode `yaml:"command_mode" json:"command_mode" toml:"command_mode"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		CommandMode: cron.CommandRemainder,
	}
}

// Load loads configuration from the file named by CRONEXPAND_CONFIG,
// or returns [Default] when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over the defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// loadFile decodes a single file into c, choosing the decoder by
// extension. Keys absent from the file keep their current values.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	case ".toml":
		return toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml, .json, .jsonc, or .toml)", extension)
	}
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if !c.CommandMode.Valid() {
		errs = append(errs, fmt.Errorf("invalid command_mode: %q (use %q or %q)",
			c.CommandMode, cron.CommandRemainder, cron.CommandToken))
	}

	return errors.Join(errs...)
}

// Level returns LogLevel as a slog level. Call only after Validate.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log_level: %q (use debug, info, warn, or error)", name)
	}
	return level, nil
}
