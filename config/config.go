// Package config provides configuration management for VPN Switcher.
// It handles loading, saving, and managing application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/vpn-switcher/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory;
// command-line flags override individual values for one run.
type Config struct {
	// Theme sets the menu color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// Menu selects the presentation backend: "auto", "tui", "fuzzel",
	// "rofi", or "dmenu". "auto" prefers the built-in TUI on a terminal
	// and falls back to the first launcher found in PATH.
	Menu string `yaml:"menu"`
	// HistoryFile overrides the recency log location. Empty means the
	// default location under the user's config directory.
	HistoryFile string `yaml:"history_file"`
	// HistorySize bounds the recency log.
	HistorySize int `yaml:"history_size"`
	// ShowNotifications enables desktop notifications for switch events.
	ShowNotifications bool `yaml:"show_notifications"`
	// NotifyDurationMS is the notification display time in milliseconds.
	// A negative value disables notifications.
	NotifyDurationMS int `yaml:"notify_duration_ms"`
	// CommandTimeoutSec bounds each nmcli call. Zero or negative falls
	// back to the default.
	CommandTimeoutSec int `yaml:"command_timeout_sec"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		Theme:             common.ThemeAuto,
		Menu:              common.MenuAuto,
		HistorySize:       common.DefaultHistorySize,
		ShowNotifications: true,
		NotifyDurationMS:  int(common.DefaultNotifyDuration.Milliseconds()),
		CommandTimeoutSec: int(common.CommandTimeout.Seconds()),
	}
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return load(configPath)
}

func load(configPath string) (*Config, error) {
	// If it doesn't exist, return default configuration
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.save(configPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	config.Validate()
	return &config, nil
}

// Validate normalizes configuration values, falling back to defaults for
// anything out of range rather than failing the run.
func (c *Config) Validate() {
	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = common.ThemeAuto
	}

	switch c.Menu {
	case common.MenuAuto, common.MenuTUI, common.MenuFuzzel, common.MenuRofi, common.MenuDmenu:
	default:
		c.Menu = common.MenuAuto
	}

	if c.HistorySize <= 0 {
		c.HistorySize = common.DefaultHistorySize
	}
	if c.CommandTimeoutSec <= 0 {
		c.CommandTimeoutSec = int(common.CommandTimeout.Seconds())
	}
}

// Save saves the configuration to the file
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.save(configPath)
}

func (c *Config) save(configPath string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.ConfigFileName), nil
}
