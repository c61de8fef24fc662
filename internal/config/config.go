// Package config handles the demo application's configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/stackpane/stackpane/compositor"
)

// Default configuration values.
const (
	DefaultAnchor       = "top-right"
	DefaultGap          = 1
	DefaultMarginX      = 2
	DefaultMarginY      = 1
	DefaultToastTimeout = "3s"
	DefaultEventPeriod  = "8s"
	DefaultBorder       = "rounded"
	DefaultForeground   = "15"
	DefaultAccent       = "205"
)

// Config represents the stackpane-demo configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Toast   ToastConfig   `toml:"toast"`
	Style   StyleConfig   `toml:"style"`
}

// DisplayConfig holds overlay placement settings.
type DisplayConfig struct {
	Anchor  string `toml:"anchor"` // top-right, top-left, bottom-right, bottom-left, center
	Gap     int    `toml:"gap"`
	MarginX int    `toml:"margin_x"`
	MarginY int    `toml:"margin_y"`
}

// ToastConfig holds toast lifecycle settings.
type ToastConfig struct {
	Timeout     string `toml:"timeout"`      // how long a toast stays up
	EventPeriod string `toml:"event_period"` // background feed interval
}

// StyleConfig holds overlay styling settings.
type StyleConfig struct {
	Border     string `toml:"border"` // rounded, normal, thick
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Anchor:  DefaultAnchor,
			Gap:     DefaultGap,
			MarginX: DefaultMarginX,
			MarginY: DefaultMarginY,
		},
		Toast: ToastConfig{
			Timeout:     DefaultToastTimeout,
			EventPeriod: DefaultEventPeriod,
		},
		Style: StyleConfig{
			Border:     DefaultBorder,
			Foreground: DefaultForeground,
			Accent:     DefaultAccent,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stackpane", "demo.toml")
}

// LoadConfig loads configuration from the given path, applying defaults
// for anything unset. A missing file is not an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Options converts the display section to compositor options.
func (c *Config) Options() compositor.Options {
	return compositor.Options{
		Anchor:  compositor.Anchor(c.Display.Anchor),
		Gap:     c.Display.Gap,
		MarginX: c.Display.MarginX,
		MarginY: c.Display.MarginY,
	}
}

// ToastTimeout parses the toast timeout, falling back to the default on
// an empty or malformed value.
func (c *Config) ToastTimeout() time.Duration {
	return parseDuration(c.Toast.Timeout, DefaultToastTimeout)
}

// EventPeriod parses the background feed interval, falling back to the
// default on an empty or malformed value.
func (c *Config) EventPeriod() time.Duration {
	return parseDuration(c.Toast.EventPeriod, DefaultEventPeriod)
}

func parseDuration(value, fallback string) time.Duration {
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}
