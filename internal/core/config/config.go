// Package config handles configuration loading and validation for choir.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/choir/internal/core/content"
	"github.com/colonyops/choir/internal/core/settings"
	"github.com/colonyops/choir/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Playback      PlaybackConfig      `yaml:"playback"`
	Content       ContentConfig       `yaml:"content"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Theme         string              `yaml:"theme"`
	LogLevel      string              `yaml:"log_level"`
	Settings      settings.Selection  `yaml:"settings"`
	DataDir       string              `yaml:"-"` // set by caller, not from config file

	// APIKeyOverride comes from the environment. It applies to the running
	// session only and is never written back to the config file.
	APIKeyOverride string `yaml:"-"`
}

// PlaybackConfig controls the playback timer.
type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// ContentConfig points at a custom document. Empty fields use the built-in
// document. Relative paths resolve against the config file directory.
type ContentConfig struct {
	TextFile        string `yaml:"text_file"`
	SectionsDir     string `yaml:"sections_dir"`
	SectionsPattern string `yaml:"sections_pattern"`
}

// NotificationsConfig controls toast lifetime and history size.
type NotificationsConfig struct {
	ToastTTL     time.Duration `yaml:"toast_ttl"`
	HistoryLimit int           `yaml:"history_limit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Playback: PlaybackConfig{
			Interval: 2 * time.Second,
		},
		Content: ContentConfig{
			SectionsPattern: content.DefaultPattern,
		},
		Notifications: NotificationsConfig{
			ToastTTL:     5 * time.Second,
			HistoryLimit: 100,
		},
		Theme:    styles.DefaultTheme,
		LogLevel: "info",
		Settings: settings.Defaults(),
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			// an omitted prompt follows the configured persona
			cfg.Settings.Prompt = ""

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.DataDir = dataDir
			cfg.resolvePaths(filepath.Dir(configPath))
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Playback.Interval == 0 {
		c.Playback.Interval = defaults.Playback.Interval
	}
	if c.Content.SectionsPattern == "" {
		c.Content.SectionsPattern = defaults.Content.SectionsPattern
	}
	if c.Notifications.ToastTTL == 0 {
		c.Notifications.ToastTTL = defaults.Notifications.ToastTTL
	}
	if c.Notifications.HistoryLimit == 0 {
		c.Notifications.HistoryLimit = defaults.Notifications.HistoryLimit
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Settings.Model == "" {
		c.Settings.Model = defaults.Settings.Model
	}
	if c.Settings.Persona == "" {
		c.Settings.Persona = defaults.Settings.Persona
	}
	if c.Settings.Prompt == "" && c.Settings.Persona != settings.PersonaCustom {
		c.Settings.SelectPersona(c.Settings.Persona)
	}
}

func (c *Config) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Content.TextFile = resolve(c.Content.TextFile)
	c.Content.SectionsDir = resolve(c.Content.SectionsDir)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Playback.Interval < 0 {
		return fmt.Errorf("playback.interval must be positive")
	}

	if c.Notifications.ToastTTL < 0 {
		return fmt.Errorf("notifications.toast_ttl must be positive")
	}

	if c.Notifications.HistoryLimit < 0 {
		return fmt.Errorf("notifications.history_limit cannot be negative")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return nil
}

// SessionSettings returns the settings the app starts with: the file values
// with APIKeyOverride applied.
func (c *Config) SessionSettings() settings.Selection {
	sel := c.Settings
	if c.APIKeyOverride != "" {
		sel.APIKey = c.APIKeyOverride
	}
	return sel
}

// ContentOptions returns the document sources for content.Load.
func (c *Config) ContentOptions() content.Options {
	return content.Options{
		TextFile:        c.Content.TextFile,
		SectionsDir:     c.Content.SectionsDir,
		SectionsPattern: c.Content.SectionsPattern,
	}
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "choir.log")
}

// SaveSettings writes sel into the config file at path, keeping every other
// key already present in the file.
func SaveSettings(path string, sel settings.Selection) error {
	doc := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse config file: %w", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("read config file: %w", err)
	}

	doc["settings"] = sel

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	// the file may predate this write with wider permissions
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("chmod config file: %w", err)
	}
	return nil
}
