package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/kilo/internal/logger"
	"github.com/gdamore/tcell/v2"
)

type tomlStyle struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

type tomlTheme struct {
	Name   string               `toml:"name"`
	Styles map[string]tomlStyle `toml:"styles"`
}

// LoadThemeFile reads a TOML theme. Styles it does not define keep the
// built-in ones; defined styles inherit unset attributes from its Default.
func LoadThemeFile(path string) (*Theme, error) {
	var tt tomlTheme
	meta, err := toml.DecodeFile(path, &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("theme file '%s': unrecognized keys %v", path, undecoded)
	}
	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	th := &Theme{Name: tt.Name, Styles: make(map[string]tcell.Style, len(DefaultTheme.Styles))}
	for name, style := range DefaultTheme.Styles {
		th.Styles[name] = style
	}

	base := th.Styles["Default"]
	if def, ok := tt.Styles["Default"]; ok {
		if base, err = def.apply(base); err != nil {
			return nil, fmt.Errorf("theme '%s' style Default: %w", tt.Name, err)
		}
		th.Styles["Default"] = base
	}
	for name, ts := range tt.Styles {
		if name == "Default" {
			continue
		}
		style, err := ts.apply(base)
		if err != nil {
			return nil, fmt.Errorf("theme '%s' style %s: %w", tt.Name, name, err)
		}
		th.Styles[name] = style
	}
	logger.Debugf("loaded theme '%s' from '%s'", th.Name, path)
	return th, nil
}

func (ts tomlStyle) apply(style tcell.Style) (tcell.Style, error) {
	if ts.Fg != nil {
		c, err := parseColor(*ts.Fg)
		if err != nil {
			return style, err
		}
		style = style.Foreground(c)
	}
	if ts.Bg != nil {
		c, err := parseColor(*ts.Bg)
		if err != nil {
			return style, err
		}
		style = style.Background(c)
	}
	if ts.Bold != nil {
		style = style.Bold(*ts.Bold)
	}
	if ts.Italic != nil {
		style = style.Italic(*ts.Italic)
	}
	if ts.Underline != nil {
		style = style.Underline(*ts.Underline)
	}
	if ts.Reverse != nil {
		style = style.Reverse(*ts.Reverse)
	}
	return style, nil
}

// parseColor accepts #rrggbb, W3C colour names, "reset" and "default".
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
