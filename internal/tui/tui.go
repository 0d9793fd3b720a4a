// Package tui draws an editor session on a tcell screen and turns terminal
// input into editor actions.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a TUI on the controlling terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and wraps it, e.g. a simulation screen in tests.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(DefaultTheme.GetStyle("Default"))
	s.EnableMouse()
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event, or nil once the screen is closed.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Wake posts an interrupt so a blocked PollEvent returns and the host redraws.
func (t *TUI) Wake() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *TUI) Clear() { t.screen.Clear() }
func (t *TUI) Show()  { t.screen.Show() }
func (t *TUI) Sync()  { t.screen.Sync() }

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// Screen gives direct access to the tcell screen.
func (t *TUI) Screen() tcell.Screen {
	return t.screen
}
