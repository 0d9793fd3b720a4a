package buffer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/kilo/internal/event"
	"github.com/bethropolis/kilo/internal/logger"
)

var (
	// ErrNoFilePath is returned by Save when no file is associated.
	ErrNoFilePath = errors.New("no file path associated with buffer")
	// ErrNotRegular is returned by CheckReadable for directories and devices.
	ErrNotRegular = errors.New("not a regular file")
)

// CheckReadable rejects paths Open must not be given: missing, non-regular
// or unreadable files.
func CheckReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot open '%s': %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot open '%s': %w", path, ErrNotRegular)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open '%s': %w", path, err)
	}
	return f.Close()
}

// Open replaces all state with the content of path. On a read error the
// engine is left untouched.
func (e *Engine) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	e.Clear()
	e.text = []rune(string(data))
	e.filePath = path
	logger.DebugTagf("io", "opened %s (%d bytes, %d runes)", path, len(data), len(e.text))
	e.events.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	return nil
}

// SaveAs writes the content verbatim to path and binds the association.
// On a write error the association is unchanged.
func (e *Engine) SaveAs(path string) error {
	data := []byte(string(e.text))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	e.filePath = path
	e.modified = false
	logger.DebugTagf("io", "saved %s (%d bytes)", path, len(data))
	e.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	return nil
}

// Save writes to the associated file.
func (e *Engine) Save() error {
	if e.filePath == "" {
		return ErrNoFilePath
	}
	return e.SaveAs(e.filePath)
}

// FilePath returns the associated path, or "".
func (e *Engine) FilePath() string { return e.filePath }

// FileName returns the base name of the associated path, or "".
func (e *Engine) FileName() string {
	if e.filePath == "" {
		return ""
	}
	return filepath.Base(e.filePath)
}
