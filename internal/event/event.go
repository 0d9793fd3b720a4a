// Package event provides a small synchronous publish/subscribe bus.
package event

import "github.com/bethropolis/kilo/internal/history"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // content changed (insert/delete, including undo/redo replays)
	TypeBufferLoaded   // a file was opened
	TypeBufferSaved    // the content was written to disk
	TypeCursorMoved    // the cursor offset changed
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes one applied edit.
type BufferModifiedData struct {
	Edit    history.Entry
	Version uint64
}

// BufferLoadedData carries the opened path.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData carries the written path.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor offset.
type CursorMovedData struct {
	Position int
}
