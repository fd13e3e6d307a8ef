// SPDX-License-Identifier: MPL-2.0

// Package config owns the on-disk state of devc: the alias table and a few
// UI knobs, stored as a flat TOML file in the platform config directory.
// The core engine never reads this package; it receives snapshots.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "devc"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config is the persisted devc state.
	Config struct {
		// Aliases holds the alias definitions as an ordered list of
		// [[alias]] tables. Alias names are case-sensitive; storing them
		// as values rather than TOML keys keeps viper's key folding away
		// from them.
		Aliases []Alias `toml:"alias" mapstructure:"alias"`
		// UI holds presentation knobs.
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}

	// Alias is one persisted alias definition.
	Alias struct {
		Name      string `toml:"name" mapstructure:"name"`
		Expansion string `toml:"expansion" mapstructure:"expansion"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables verbose output without passing --verbose.
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}
)

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{}
}

// AliasTable returns the aliases as a name → expansion map. Later entries
// win when a file carries duplicates.
func (c *Config) AliasTable() map[string]string {
	table := make(map[string]string, len(c.Aliases))
	for _, a := range c.Aliases {
		table[a.Name] = a.Expansion
	}
	return table
}

// SetAlias binds name to expansion, replacing an existing entry in place.
func (c *Config) SetAlias(name, expansion string) {
	for i := range c.Aliases {
		if c.Aliases[i].Name == name {
			c.Aliases[i].Expansion = expansion
			return
		}
	}
	c.Aliases = append(c.Aliases, Alias{Name: name, Expansion: expansion})
}

// RemoveAlias deletes name, returning its previous expansion.
func (c *Config) RemoveAlias(name string) (string, bool) {
	for i := range c.Aliases {
		if c.Aliases[i].Name == name {
			expansion := c.Aliases[i].Expansion
			c.Aliases = append(c.Aliases[:i], c.Aliases[i+1:]...)
			return expansion, true
		}
	}
	return "", false
}

// Dir returns the devc configuration directory using platform conventions:
// Windows uses %APPDATA%, macOS uses ~/Library/Application Support, and
// Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
func Dir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the full path of the config file.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// ManifestPath returns the path of the optional command grammar override.
func ManifestPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "commands.cue"), nil
}

// Load reads the config file, returning defaults when none exists. An
// explicit path (from --config) bypasses the platform directory lookup.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	path := explicitPath
	if path == "" {
		var err error
		path, err = FilePath()
		if err != nil {
			return nil, err
		}
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to the config file, creating the directory on first use.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
