// Package buffer implements the document engine: a rune-addressed text store
// with a cursor, line and visual-column arithmetic, bounded undo/redo and
// viewport computation. It never depends on the host UI.
package buffer

import (
	"slices"
	"unicode/utf8"

	"github.com/bethropolis/kilo/internal/event"
	"github.com/bethropolis/kilo/internal/history"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the number of columns a tab occupies.
const DefaultTabWidth = 4

// maxClusterRunes bounds the window scanned for a single grapheme cluster.
const maxClusterRunes = 64

// Options configures an Engine. Zero values select defaults.
type Options struct {
	TabWidth     int
	HistoryDepth int
	Events       *event.Manager // optional
}

// Engine owns the document, the cursor and the edit history.
// It is not safe for concurrent use; the host serializes all calls.
type Engine struct {
	text     []rune
	position int // always within [0, len(text)]
	prefCol  int // preferred visual column kept across vertical moves

	tabWidth int
	history  *history.History
	events   *event.Manager

	filePath string
	modified bool
	version  uint64
}

// New creates an engine pre-seeded with text and the cursor at 0.
func New(text string, opts Options) *Engine {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	return &Engine{
		text:     []rune(text),
		tabWidth: opts.TabWidth,
		history:  history.New(opts.HistoryDepth),
		events:   opts.Events,
	}
}

// String returns the whole document.
func (e *Engine) String() string { return string(e.text) }

// Len returns the document length in runes.
func (e *Engine) Len() int { return len(e.text) }

// Position returns the cursor offset.
func (e *Engine) Position() int { return e.position }

// TabWidth returns the configured tab width.
func (e *Engine) TabWidth() int { return e.tabWidth }

// Version increases on every content mutation.
func (e *Engine) Version() uint64 { return e.version }

// IsModified reports unsaved changes.
func (e *Engine) IsModified() bool { return e.modified }

// RuneAt returns the rune at pos, or false when pos is not a character.
func (e *Engine) RuneAt(pos int) (rune, bool) {
	if pos < 0 || pos >= len(e.text) {
		return 0, false
	}
	return e.text[pos], true
}

// Text returns the text between two offsets in either order, clamped.
func (e *Engine) Text(from, to int) string {
	from, to = e.clamp(from), e.clamp(to)
	if from > to {
		from, to = to, from
	}
	return string(e.text[from:to])
}

func (e *Engine) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(e.text) {
		return len(e.text)
	}
	return pos
}

// Insert inserts text at the cursor.
func (e *Engine) Insert(text string) {
	e.InsertAt(e.position, text)
}

// InsertAt inserts text at pos and leaves the cursor after it.
func (e *Engine) InsertAt(pos int, text string) {
	if text == "" {
		return
	}
	pos = e.clamp(pos)
	entry := history.InsertOf(pos, text)
	e.history.Record(entry)
	e.insert(pos, []rune(text))
	e.prefCol = e.VisualColumn(e.position)
	e.notifyModified(entry)
}

// RemoveRange deletes [min(from,to), max(from,to)) and leaves the cursor at
// the start of the removed range.
func (e *Engine) RemoveRange(from, to int) {
	from, to = e.clamp(from), e.clamp(to)
	if from > to {
		from, to = to, from
	}
	if from == to {
		return
	}
	entry := history.DeleteOf(from, string(e.text[from:to]))
	e.history.Record(entry)
	e.remove(from, to)
	e.prefCol = e.VisualColumn(e.position)
	e.notifyModified(entry)
}

// DeleteForward removes the grapheme cluster after the cursor. A "\r\n"
// pair is one cluster.
func (e *Engine) DeleteForward() {
	pos := e.position
	if pos >= len(e.text) {
		return
	}
	end := min(e.TailOfLine(pos)+1, len(e.text), pos+maxClusterRunes)
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(e.text[pos:end]), -1)
	n := max(utf8.RuneCountInString(cluster), 1)
	e.RemoveRange(pos, pos+n)
}

// DeleteBackward removes the grapheme cluster before the cursor. A "\r\n"
// pair is one cluster.
func (e *Engine) DeleteBackward() {
	pos := e.position
	if pos <= 0 {
		return
	}
	start := max(e.HeadOfLine(pos-1), pos-maxClusterRunes)
	n := 1
	gr := uniseg.NewGraphemes(string(e.text[start:pos]))
	for gr.Next() {
		n = len(gr.Runes())
	}
	e.RemoveRange(pos-n, pos)
}

// insert and remove mutate content without touching history.
func (e *Engine) insert(pos int, r []rune) {
	e.text = slices.Insert(e.text, pos, r...)
	e.version++
	e.modified = true
	e.setPosition(pos + len(r))
}

func (e *Engine) remove(from, to int) {
	e.text = slices.Delete(e.text, from, to)
	e.version++
	e.modified = true
	e.setPosition(from)
}

func (e *Engine) setPosition(pos int) {
	pos = e.clamp(pos)
	if pos == e.position {
		return
	}
	e.position = pos
	e.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Position: pos})
}

func (e *Engine) notifyModified(entry history.Entry) {
	e.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: entry, Version: e.version})
}

// Clear drops content, cursor, history and the file association.
func (e *Engine) Clear() {
	e.text = e.text[:0]
	e.position = 0
	e.prefCol = 0
	e.filePath = ""
	e.modified = false
	e.version++
	e.history.Clear()
}
