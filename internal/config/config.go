package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/kilo/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	Editor   EditorConfig   `toml:"editor"`
	Autosave AutosaveConfig `toml:"autosave"`
}

// EditorConfig holds buffer and session settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	HistoryDepth    int  `toml:"history_depth"`
	AutoIndent      bool `toml:"auto_indent"`
	SystemClipboard bool `toml:"system_clipboard"`
	Highlight       bool `toml:"highlight"`
	// ThemeFile is an optional TOML theme overriding the built-in colours.
	ThemeFile string `toml:"theme_file"`
}

// AutosaveConfig controls the background saver.
type AutosaveConfig struct {
	Enabled  bool   `toml:"enabled"`
	Interval string `toml:"interval"`
}

// IntervalDuration parses Interval, falling back to the default on bad input.
func (a AutosaveConfig) IntervalDuration() time.Duration {
	d, err := time.ParseDuration(a.Interval)
	if err != nil || d <= 0 {
		return DefaultAutosaveInterval
	}
	return d
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			HistoryDepth:    DefaultHistoryDepth,
			AutoIndent:      DefaultAutoIndent,
			SystemClipboard: SystemClipboard,
			Highlight:       DefaultHighlight,
		},
		Autosave: AutosaveConfig{
			Enabled:  false,
			Interval: DefaultAutosaveInterval.String(),
		},
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" when it cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFile decodes filePath on top of cfg. A missing file is not an error.
func loadFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		logger.DebugTagf("config", "Config file not found: %s", filePath)
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.WarnTagf("config", "Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.HistoryDepth <= 0 {
		c.Editor.HistoryDepth = defaults.Editor.HistoryDepth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if d, err := time.ParseDuration(c.Autosave.Interval); err != nil || d <= 0 {
		c.Autosave.Interval = defaults.Autosave.Interval
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// configFilePath (or DefaultPath when empty), then flag overrides.
// The returned config is always usable, even alongside a file error.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}

	var loadErr error
	if path != "" {
		loadErr = loadFile(path, cfg)
		if loadErr != nil {
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
