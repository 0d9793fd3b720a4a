package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/kilo/internal/logger"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	HistoryDepth    *int
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	SystemClipboard *bool
	AutoIndent      *bool
	Autosave        *bool
	ThemeFile       *string
}

// NewFlags defines the command-line flags on a fresh FlagSet.
func NewFlags(name string) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &Flags{
		set:             fs,
		ConfigFilePath:  fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName)),
		Version:         fs.Bool("version", false, "Show version information and exit"),
		LogLevel:        fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file"),
		LogFilePath:     fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file"),
		TabWidth:        fs.Int("tabwidth", 0, "Columns per tab - Overrides config file"),
		HistoryDepth:    fs.Int("history", 0, "Maximum undo depth - Overrides config file"),
		EnableTags:      fs.String("log-tags", "", "Comma-separated list of tags to enable"),
		DisableTags:     fs.String("log-disable-tags", "", "Comma-separated list of tags to disable"),
		EnablePkgs:      fs.String("log-packages", "", "Comma-separated list of packages to enable"),
		DisablePkgs:     fs.String("log-disable-packages", "", "Comma-separated list of packages to disable"),
		SystemClipboard: fs.Bool("system-clipboard", false, "Use the system clipboard"),
		AutoIndent:      fs.Bool("autoindent", true, "Copy leading whitespace on Enter"),
		Autosave:        fs.Bool("autosave", false, "Periodically save a modified file"),
		ThemeFile:       fs.String("theme", "", "Path to a TOML theme file"),
	}
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides updates cfg with the flags that were explicitly set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "history":
			if *f.HistoryDepth > 0 {
				cfg.Editor.HistoryDepth = *f.HistoryDepth
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "autoindent":
			cfg.Editor.AutoIndent = *f.AutoIndent
		case "autosave":
			cfg.Autosave.Enabled = *f.Autosave
		case "theme":
			cfg.Editor.ThemeFile = *f.ThemeFile
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
