// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Aerocode settings from aerocode.yaml, AEROCODE_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Language string     `mapstructure:"language" yaml:"language"`
	User     UserConfig `mapstructure:"user" yaml:"user"`
	Log      LogConfig  `mapstructure:"log" yaml:"log"`
	UI       UIConfig   `mapstructure:"ui" yaml:"ui"`
}

// UserConfig overrides the mock user shown in the UI.
type UserConfig struct {
	Name  string `mapstructure:"name" yaml:"name,omitempty"`
	Email string `mapstructure:"email" yaml:"email,omitempty"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// Defaults returns the built-in defaults keyed the way viper expects.
func Defaults() map[string]any {
	return map[string]any{
		"language":      "pt-BR",
		"log.level":     "info",
		"ui.alt_screen": true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Aerocode")
		default: // Linux, macOS, etc.
			configDir = "/etc/aerocode"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "aerocode")
	}

	return filepath.Join(configDir, "aerocode.yaml"), nil
}

// LoadConfig builds a T from defaults, the first aerocode.yaml found (or
// configFile when non-nil), AEROCODE_* environment variables and the flags
// of cmd, in increasing order of precedence. A missing config file is not
// an error; the second return value is the file actually read, if any.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("aerocode")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("aerocode")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

// ReadConfigFile decodes path on top of defaults, ignoring environment
// variables and flags. A missing file yields the defaults.
func ReadConfigFile[T any](path string, defaults map[string]any) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to path, creating parent directories.
func WriteConfigFile[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o600)
}
