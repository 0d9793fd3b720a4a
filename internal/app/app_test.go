package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/kilo/internal/buffer"
	"github.com/bethropolis/kilo/internal/config"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, path string, mutate func(*config.Config)) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.Highlight = false
	if mutate != nil {
		mutate(cfg)
	}
	s := tcell.NewSimulationScreen("UTF-8")
	a, err := NewWithScreen(cfg, path, s)
	require.NoError(t, err)
	return a, s
}

// run starts the main loop and returns a channel closed when it exits.
func run(t *testing.T, a *App) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not quit")
	}
}

func typeString(s tcell.SimulationScreen, text string) {
	for _, r := range text {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

func TestTypeSaveQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	a, s := newTestApp(t, path, nil)
	done := run(t, a)

	typeString(s, "hi")
	s.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)
	typeString(s, "yo")
	s.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\nyo", string(data))
}

func TestQuitWithUnsavedChangesNeedsConfirmation(t *testing.T) {
	a, s := newTestApp(t, "", nil)
	done := run(t, a)

	typeString(s, "x")
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)

	assert.Equal(t, "x", a.editor.Engine().String())
}

// statusRow returns the text of the bottom screen row.
func statusRow(s tcell.SimulationScreen) string {
	cells, width, height := s.GetContents()
	var sb strings.Builder
	for _, c := range cells[(height-1)*width:] {
		sb.WriteString(string(c.Runes))
	}
	return sb.String()
}

func TestCancelledQuitClearsWarning(t *testing.T) {
	a, s := newTestApp(t, "", nil)
	done := run(t, a)

	typeString(s, "x")
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	assert.Eventually(t, func() bool {
		return strings.Contains(statusRow(s), "Unsaved changes")
	}, 2*time.Second, 10*time.Millisecond)

	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	assert.Eventually(t, func() bool {
		return !strings.Contains(statusRow(s), "Unsaved changes")
	}, 2*time.Second, 10*time.Millisecond)

	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)
}

func TestUndoRedoKeys(t *testing.T) {
	a, s := newTestApp(t, "", nil)
	done := run(t, a)

	typeString(s, "ab")
	s.InjectKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlY, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)

	assert.Equal(t, "a", a.editor.Engine().String())
}

func TestSelectCutPaste(t *testing.T) {
	a, s := newTestApp(t, "", nil)
	done := run(t, a)

	typeString(s, "abc")
	s.InjectKey(tcell.KeyHome, 0, tcell.ModShift)
	s.InjectKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlV, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlV, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)

	assert.Equal(t, "abcabc", a.editor.Engine().String())
}

func TestDoubleClickSelectsWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo bar baz"), 0o644))
	a, s := newTestApp(t, path, nil)
	done := run(t, a)

	// The gutter is two cells wide; "bar" starts at cell 6.
	s.InjectMouse(7, 0, tcell.Button1, tcell.ModNone)
	s.InjectMouse(7, 0, tcell.ButtonNone, tcell.ModNone)
	s.InjectMouse(7, 0, tcell.Button1, tcell.ModNone)
	s.InjectMouse(7, 0, tcell.ButtonNone, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)

	assert.Equal(t, "foo  baz", a.editor.Engine().String())
}

func TestOpenErrors(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Editor.Highlight = false
	_, err := NewWithScreen(cfg, t.TempDir(), tcell.NewSimulationScreen("UTF-8"))
	assert.ErrorIs(t, err, buffer.ErrNotRegular)
}

func TestAutosaveWritesModifiedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auto.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))
	a, s := newTestApp(t, path, func(cfg *config.Config) {
		cfg.Autosave.Enabled = true
		cfg.Autosave.Interval = "20ms"
	})
	done := run(t, a)

	s.InjectKey(tcell.KeyEnd, 0, tcell.ModNone)
	typeString(s, "!")
	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && string(data) == "v1!"
	}, 2*time.Second, 10*time.Millisecond)

	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)
}

func TestHighlightKindsComputed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))
	a, s := newTestApp(t, path, func(cfg *config.Config) { cfg.Editor.Highlight = true })
	done := run(t, a)

	assert.Eventually(t, func() bool {
		a.mu.Lock()
		defer a.mu.Unlock()
		return len(a.kinds) > 0
	}, 3*time.Second, 10*time.Millisecond)

	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	wait(t, done)
}
