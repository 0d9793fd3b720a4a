// Package clipboard keeps the text copied from the editor, optionally
// mirrored to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/kilo/internal/logger"
)

// Backend is a system clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemBackend adapts github.com/atotto/clipboard.
type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Manager holds an internal register and, when a backend is present,
// keeps it in sync with the system clipboard.
type Manager struct {
	register string
	backend  Backend
}

// NewManager creates a manager. useSystem selects the system clipboard when
// the platform supports one; otherwise only the internal register is used.
func NewManager(useSystem bool) *Manager {
	m := &Manager{}
	if useSystem {
		if clipboard.Unsupported {
			logger.WarnTagf("clipboard", "system clipboard unsupported, using internal register")
		} else {
			m.backend = systemBackend{}
		}
	}
	return m
}

// NewManagerWithBackend creates a manager using b as the system clipboard.
func NewManagerWithBackend(b Backend) *Manager {
	return &Manager{backend: b}
}

// Copy stores text. A failing system clipboard is reported but the
// internal register is still updated.
func (m *Manager) Copy(text string) error {
	m.register = text
	logger.DebugTagf("clipboard", "copied %d bytes", len(text))
	if m.backend == nil {
		return nil
	}
	if err := m.backend.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

// Paste returns the clipboard content, preferring the system clipboard and
// falling back to the internal register when it fails or is empty.
func (m *Manager) Paste() string {
	if m.backend != nil {
		text, err := m.backend.ReadAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.WarnTagf("clipboard", "system clipboard read failed: %v", err)
		}
	}
	return m.register
}
