package tui

import (
	"strings"

	"github.com/bethropolis/kilo/internal/highlight"
	"github.com/bethropolis/kilo/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names to tcell styles. Syntax styles are keyed by the
// highlight kind name.
type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if i := strings.IndexByte(name, '.'); i != -1 {
		if style, ok := t.Styles[name[:i]]; ok {
			return style
		}
	}
	if style, ok := t.Styles["Default"]; ok {
		return style
	}
	logger.Warnf("theme %q has no style %q nor Default", t.Name, name)
	return tcell.StyleDefault
}

// KindStyle returns the style for a highlight kind.
func (t *Theme) KindStyle(k highlight.Kind) tcell.Style {
	if k == highlight.KindNone {
		return t.GetStyle("Default")
	}
	return t.GetStyle(k.String())
}

// DefaultTheme is a muted dark palette.
var DefaultTheme = newDefaultTheme()

func newDefaultTheme() *Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)
	return &Theme{
		Name: "DevComfort Dark",
		Styles: map[string]tcell.Style{
			"Default":           base,
			"Selection":         base.Reverse(true),
			"LineNumber":        base.Foreground(comment),
			"StatusBar":         bar,
			"StatusBarModified": bar.Foreground(yellow),
			"StatusBarMessage":  bar.Bold(true),

			"keyword":  base.Foreground(blue).Bold(true),
			"string":   base.Foreground(green),
			"comment":  base.Foreground(comment).Italic(true),
			"number":   base.Foreground(orange),
			"type":     base.Foreground(cyan),
			"function": base.Foreground(yellow),
		},
	}
}
