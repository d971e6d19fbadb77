// Package config provides configuration management for TurskMind.
//
// Configuration is read-only: an optional TOML file overrides the defaults,
// and the application never writes it back.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidTickInterval is returned when tick_interval is not positive.
var ErrInvalidTickInterval = errors.New("tick_interval must be positive")

// Config holds all configuration for the TurskMind application.
type Config struct {
	TickInterval  time.Duration      `mapstructure:"tick_interval"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	Title                 string `mapstructure:"title"`
	IconApp               string `mapstructure:"icon_app"`
	ColorTitle            string `mapstructure:"color_title"`
	ColorAccent           string `mapstructure:"color_accent"`
	ColorPractice         string `mapstructure:"color_practice"`
	ColorMuted            string `mapstructure:"color_muted"`
	ColorHelp             string `mapstructure:"color_help"`
	ColorSuccess          string `mapstructure:"color_success"`
	ColorWarning          string `mapstructure:"color_warning"`
	ProgressGradientStart string `mapstructure:"progress_gradient_start"`
	ProgressGradientEnd   string `mapstructure:"progress_gradient_end"`
	ChartGradientStart    string `mapstructure:"chart_gradient_start"`
	ChartGradientEnd      string `mapstructure:"chart_gradient_end"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Title:                 "TurskMind 🌟",
		IconApp:               "🪔",
		ColorTitle:            "#E0B860",
		ColorAccent:           "#4ECDC4",
		ColorPractice:         "#7C6FE0",
		ColorMuted:            "#6B7280",
		ColorHelp:             "#95A5A6",
		ColorSuccess:          "#2ECC71",
		ColorWarning:          "#F39C12",
		ProgressGradientStart: "#7C6FE0",
		ProgressGradientEnd:   "#4ECDC4",
		ChartGradientStart:    "#E0B860",
		ChartGradientEnd:      "#C0392B",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TickInterval: time.Second,
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Log: LogConfig{
			Level:  "error",
			Output: "stderr",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load reads the configuration. An empty path means the default location;
// a missing default file yields the defaults, a missing explicit file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.TickInterval <= 0 {
		return nil, ErrInvalidTickInterval
	}

	return &cfg, nil
}

// GetConfigPath returns the path to the default config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".turskmind", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("tick_interval", d.TickInterval.String())
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.sound", d.Notifications.Sound)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.output", d.Log.Output)

	// Theme defaults
	t := d.Theme
	v.SetDefault("theme.title", t.Title)
	v.SetDefault("theme.icon_app", t.IconApp)
	v.SetDefault("theme.color_title", t.ColorTitle)
	v.SetDefault("theme.color_accent", t.ColorAccent)
	v.SetDefault("theme.color_practice", t.ColorPractice)
	v.SetDefault("theme.color_muted", t.ColorMuted)
	v.SetDefault("theme.color_help", t.ColorHelp)
	v.SetDefault("theme.color_success", t.ColorSuccess)
	v.SetDefault("theme.color_warning", t.ColorWarning)
	v.SetDefault("theme.progress_gradient_start", t.ProgressGradientStart)
	v.SetDefault("theme.progress_gradient_end", t.ProgressGradientEnd)
	v.SetDefault("theme.chart_gradient_start", t.ChartGradientStart)
	v.SetDefault("theme.chart_gradient_end", t.ChartGradientEnd)
}
