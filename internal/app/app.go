// Package app wires the editor session to the terminal and runs the main loop.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/bethropolis/kilo/internal/autosave"
	"github.com/bethropolis/kilo/internal/clipboard"
	"github.com/bethropolis/kilo/internal/config"
	"github.com/bethropolis/kilo/internal/editor"
	"github.com/bethropolis/kilo/internal/event"
	"github.com/bethropolis/kilo/internal/highlight"
	"github.com/bethropolis/kilo/internal/logger"
	"github.com/bethropolis/kilo/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	input        *tui.InputProcessor
	statusBar    *tui.StatusBar
	theme        *tui.Theme
	eventManager *event.Manager
	highlights   *highlight.Manager
	autoSave     *autosave.AutoSave

	// mu guards editor and the fields below; the saver goroutine takes it too.
	mu           sync.Mutex
	editor       *editor.Editor
	filePath     string
	kinds        []highlight.Kind
	kindsVersion uint64
	quitPending  bool
}

// NewApp creates an application on the controlling terminal.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, filePath, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewWithScreen creates an application drawing on screen.
func NewWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	tuiManager, err := tui.NewWithScreen(screen)
	if err != nil {
		return nil, err
	}
	a, err := newApp(cfg, filePath, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI) (*App, error) {
	eventManager := event.NewManager()
	_, height := tuiManager.Size()

	ed := editor.New("", editor.Options{
		TabWidth:     cfg.Editor.TabWidth,
		HistoryDepth: cfg.Editor.HistoryDepth,
		AutoIndent:   cfg.Editor.AutoIndent,
		ViewLines:    tui.TextRows(height) + 1,
		Clipboard:    clipboard.NewManager(cfg.Editor.SystemClipboard),
		Events:       eventManager,
	})

	a := &App{
		tuiManager:   tuiManager,
		input:        tui.NewInputProcessor(),
		statusBar:    tui.NewStatusBar(config.MessageTimeout),
		theme:        tui.DefaultTheme,
		eventManager: eventManager,
		editor:       ed,
		filePath:     filePath,
	}
	if cfg.Editor.ThemeFile != "" {
		th, err := tui.LoadThemeFile(cfg.Editor.ThemeFile)
		if err != nil {
			logger.Warnf("using built-in theme: %v", err)
		} else {
			a.theme = th
			tuiManager.Screen().SetStyle(th.GetStyle("Default"))
		}
	}
	if cfg.Editor.Highlight {
		a.highlights = highlight.NewManager(highlight.NewHighlighter(), highlight.DebounceDuration, tuiManager.Wake)
	}
	if cfg.Autosave.Enabled {
		a.autoSave = autosave.New(lockedDocument{a}, cfg.Autosave.IntervalDuration())
	}
	a.subscribe()

	if filePath != "" {
		err := ed.Open(filePath)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			logger.InfoTagf("io", "%s does not exist, starting a new file", filePath)
			a.statusBar.SetTemporaryMessage("New file: %s", filePath)
		default:
			return nil, err
		}
	}
	return a, nil
}

// Run processes terminal events until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	if a.highlights != nil {
		defer a.highlights.Shutdown()
		a.requestHighlight()
	}
	if a.autoSave != nil {
		a.autoSave.Start()
		defer a.autoSave.Stop()
	}

	a.statusBar.SetTemporaryMessage("kilo - Ctrl+S save | Ctrl+Q quit")
	a.redraw()

	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handleEvent(ev) {
			a.mu.Lock()
			modified := a.editor.IsModified()
			a.mu.Unlock()
			if modified {
				logger.Warnf("exiting with unsaved changes")
			}
			logger.Infof("exiting")
			return nil
		}
		a.redraw()
	}
}

// handleEvent applies one terminal event and reports whether to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		_, h := ev.Size()
		a.editor.Resize(tui.TextRows(h))
	case *tcell.EventKey:
		return a.dispatch(a.input.ProcessEvent(ev))
	case *tcell.EventMouse:
		return a.dispatch(a.input.ProcessMouse(ev))
	}
	return false
}

// redraw draws the editor and status bar.
func (a *App) redraw() {
	a.mu.Lock()
	defer a.mu.Unlock()

	line, col := a.editor.CursorLineCol()
	a.statusBar.SetFileInfo(a.editor.Title(), a.editor.IsModified())
	a.statusBar.SetCursorInfo(line, col)

	a.tuiManager.Clear()
	a.tuiManager.DrawEditor(a.editor, a.currentKinds(), a.theme)
	a.statusBar.Draw(a.tuiManager.Screen(), a.theme)
	a.tuiManager.Show()
}

// currentKinds returns per-rune highlight kinds, reusing the last result
// until a pass for the current version completes.
func (a *App) currentKinds() []highlight.Kind {
	if a.highlights == nil {
		return nil
	}
	version := a.editor.Engine().Version()
	if a.kinds != nil && a.kindsVersion == version {
		return a.kinds
	}
	if ranges, ok := a.highlights.Ranges(version); ok {
		a.kinds = highlight.Spans(ranges, a.editor.Engine().Len())
		a.kindsVersion = version
	}
	return a.kinds
}

// requestHighlight schedules highlighting of the current text. Callers hold mu
// or run before the loop starts.
func (a *App) requestHighlight() {
	if a.highlights == nil {
		return
	}
	e := a.editor.Engine()
	path := e.FilePath()
	if path == "" {
		path = a.filePath
	}
	a.highlights.Request(e.Version(), path, e.String())
}

// lockedDocument exposes the editor to the saver goroutine under the app lock.
type lockedDocument struct{ a *App }

func (d lockedDocument) IsModified() bool {
	d.a.mu.Lock()
	defer d.a.mu.Unlock()
	return d.a.editor.IsModified()
}

func (d lockedDocument) FilePath() string {
	d.a.mu.Lock()
	defer d.a.mu.Unlock()
	return d.a.editor.FilePath()
}

func (d lockedDocument) Save() error {
	d.a.mu.Lock()
	err := d.a.editor.Save()
	d.a.mu.Unlock()
	if err == nil {
		d.a.tuiManager.Wake()
	}
	return err
}
