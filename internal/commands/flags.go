package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/colonyops/choir/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Document overrides applied on top of the config file
	TextFile    string
	SectionsDir string
	Interval    time.Duration

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "choir", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "choir")
}

// ApplyOverrides copies command-line document and playback overrides into
// cfg. Empty values leave the config untouched.
func (f *Flags) ApplyOverrides(cfg *config.Config) {
	if f.TextFile != "" {
		cfg.Content.TextFile = f.TextFile
	}
	if f.SectionsDir != "" {
		cfg.Content.SectionsDir = f.SectionsDir
	}
	if f.Interval > 0 {
		cfg.Playback.Interval = f.Interval
	}
}
