// Package editor composes the text engine, its viewport, a selection and a
// clipboard into the session a terminal host drives.
package editor

import (
	"strings"

	"github.com/bethropolis/kilo/internal/buffer"
	"github.com/bethropolis/kilo/internal/clipboard"
	"github.com/bethropolis/kilo/internal/event"
	"github.com/bethropolis/kilo/internal/logger"
)

// Options configures a new Editor.
type Options struct {
	TabWidth     int
	HistoryDepth int
	AutoIndent   bool
	// ViewLines is the viewport height in lines, including a partially
	// visible last line.
	ViewLines int
	Clipboard *clipboard.Manager
	Events    *event.Manager
}

// Editor is one editing session.
type Editor struct {
	engine     *buffer.Engine
	view       *buffer.Viewport
	sel        selection
	clip       *clipboard.Manager
	autoIndent bool
}

// New creates an editor holding text.
func New(text string, opts Options) *Editor {
	engine := buffer.New(text, buffer.Options{
		TabWidth:     opts.TabWidth,
		HistoryDepth: opts.HistoryDepth,
		Events:       opts.Events,
	})
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewManager(false)
	}
	return &Editor{
		engine:     engine,
		view:       buffer.NewViewport(engine, opts.ViewLines),
		clip:       clip,
		autoIndent: opts.AutoIndent,
	}
}

// Engine exposes the underlying text engine.
func (ed *Editor) Engine() *buffer.Engine { return ed.engine }

// Viewport exposes the visible page.
func (ed *Editor) Viewport() *buffer.Viewport { return ed.view }

// Cursor returns the cursor offset.
func (ed *Editor) Cursor() int { return ed.engine.Position() }

// Selection returns the selected range [from, to).
func (ed *Editor) Selection() (from, to int, ok bool) {
	return ed.sel.bounds(ed.engine.Position())
}

func (ed *Editor) follow() { ed.view.Follow(ed.engine.Position()) }

// deleteSelection removes the selected text and reports whether there was any.
func (ed *Editor) deleteSelection() bool {
	from, to, ok := ed.Selection()
	ed.sel.clear()
	if !ok {
		return false
	}
	ed.engine.RemoveRange(from, to)
	return true
}

// InsertText replaces the selection, if any, with text.
func (ed *Editor) InsertText(text string) {
	ed.deleteSelection()
	if text != "" {
		ed.engine.Insert(text)
	}
	ed.follow()
}

// InsertNewline breaks the line, repeating the current line's indentation
// when auto-indent is on.
func (ed *Editor) InsertNewline() {
	ed.deleteSelection()
	indent := ""
	if ed.autoIndent {
		indent = ed.leadingWhitespace()
	}
	ed.engine.Insert("\n" + indent)
	ed.follow()
}

// leadingWhitespace returns the indentation of the cursor line up to the cursor.
func (ed *Editor) leadingWhitespace() string {
	pos := ed.engine.Position()
	head := ed.engine.HeadOfLine(pos)
	line := ed.engine.Text(head, pos)
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// Backspace deletes the selection or the cluster before the cursor.
func (ed *Editor) Backspace() {
	if !ed.deleteSelection() {
		ed.engine.DeleteBackward()
	}
	ed.follow()
}

// Delete deletes the selection or the cluster after the cursor.
func (ed *Editor) Delete() {
	if !ed.deleteSelection() {
		ed.engine.DeleteForward()
	}
	ed.follow()
}

// move runs a cursor motion, extending or dropping the selection.
func (ed *Editor) move(extend bool, motion func()) {
	if extend {
		ed.sel.extend(ed.engine.Position())
	} else {
		ed.sel.clear()
	}
	motion()
	ed.follow()
}

func (ed *Editor) Left(extend bool)  { ed.move(extend, func() { ed.engine.Back(1) }) }
func (ed *Editor) Right(extend bool) { ed.move(extend, func() { ed.engine.Forward(1) }) }
func (ed *Editor) Up(extend bool)    { ed.move(extend, func() { ed.engine.Up(1) }) }
func (ed *Editor) Down(extend bool)  { ed.move(extend, func() { ed.engine.Down(1) }) }
func (ed *Editor) Home(extend bool)  { ed.move(extend, ed.engine.MoveToHeadOfLine) }
func (ed *Editor) End(extend bool)   { ed.move(extend, ed.engine.MoveToTailOfLine) }

// pageSize is the number of lines a page motion moves: one less than the
// fully visible lines.
func (ed *Editor) pageSize() int {
	return max(ed.view.LineCount()-2, 1)
}

func (ed *Editor) PageUp(extend bool) {
	n := ed.pageSize()
	ed.move(extend, func() {
		ed.view.ScrollBackward(n)
		ed.engine.Up(n)
	})
}

func (ed *Editor) PageDown(extend bool) {
	n := ed.pageSize()
	ed.move(extend, func() {
		ed.view.ScrollForward(n)
		ed.engine.Down(n)
	})
}

// MoveTo places the cursor at pos, dropping the selection.
func (ed *Editor) MoveTo(pos int) {
	ed.move(false, func() { ed.engine.MoveTo(pos) })
}

// Undo reverts the last edit in two steps: when the cursor is away from
// where the edit happened it first moves there, and only a second call
// reverts it.
func (ed *Editor) Undo() bool {
	target, ok := ed.engine.PeekUndoTarget()
	if !ok {
		return false
	}
	ed.sel.clear()
	if target != ed.engine.Position() {
		logger.DebugTagf("history", "undo: moving to %d first", target)
		ed.engine.MoveTo(target)
	} else {
		ed.engine.Undo()
	}
	ed.follow()
	return true
}

// Redo re-applies the last undone edit with the same two-step behaviour as Undo.
func (ed *Editor) Redo() bool {
	target, ok := ed.engine.PeekRedoTarget()
	if !ok {
		return false
	}
	ed.sel.clear()
	if target != ed.engine.Position() {
		logger.DebugTagf("history", "redo: moving to %d first", target)
		ed.engine.MoveTo(target)
	} else {
		ed.engine.Redo()
	}
	ed.follow()
	return true
}

// Copy puts the selection on the clipboard. It reports whether anything
// was selected.
func (ed *Editor) Copy() (bool, error) {
	from, to, ok := ed.Selection()
	if !ok {
		return false, nil
	}
	return true, ed.clip.Copy(ed.engine.Text(from, to))
}

// Cut copies the selection and deletes it.
func (ed *Editor) Cut() (bool, error) {
	copied, err := ed.Copy()
	if !copied {
		return false, err
	}
	ed.deleteSelection()
	ed.follow()
	return true, err
}

// Paste inserts the clipboard content, replacing the selection.
func (ed *Editor) Paste() {
	text := ed.clip.Paste()
	if text == "" {
		return
	}
	ed.InsertText(text)
}

// SelectWordAt selects the run of same-class characters around pos.
func (ed *Editor) SelectWordAt(pos int) {
	from := ed.engine.ConsecutiveLeft(pos)
	to := ed.engine.ConsecutiveRight(pos)
	ed.sel.clear()
	ed.engine.MoveTo(from)
	ed.sel.extend(from)
	ed.engine.MoveTo(to)
	ed.follow()
}

// SelectAll selects the whole document.
func (ed *Editor) SelectAll() {
	ed.sel.clear()
	ed.engine.MoveTo(0)
	ed.sel.extend(0)
	ed.engine.MoveTo(ed.engine.Len())
	ed.follow()
}

// Open loads path after checking it is a readable regular file.
func (ed *Editor) Open(path string) error {
	if err := buffer.CheckReadable(path); err != nil {
		return err
	}
	if err := ed.engine.Open(path); err != nil {
		return err
	}
	ed.sel.clear()
	ed.view.Reset()
	return nil
}

// Save writes the document to its file.
func (ed *Editor) Save() error { return ed.engine.Save() }

// SaveAs writes the document to path and binds it.
func (ed *Editor) SaveAs(path string) error { return ed.engine.SaveAs(path) }

// IsModified reports unsaved changes.
func (ed *Editor) IsModified() bool { return ed.engine.IsModified() }

// FilePath returns the bound file, or "".
func (ed *Editor) FilePath() string { return ed.engine.FilePath() }

// Resize sets the number of text rows the host can show.
func (ed *Editor) Resize(rows int) {
	ed.view.SetLineCount(rows + 1)
	ed.follow()
}

// Page returns the visible text.
func (ed *Editor) Page() string { return ed.view.Text() }

// CursorLineCol returns the zero-based line and visual column of the cursor.
func (ed *Editor) CursorLineCol() (int, int) {
	pos := ed.engine.Position()
	return ed.engine.LineOf(pos), ed.engine.VisualColumn(pos)
}

// Title names the document for a status line, marking unsaved changes.
func (ed *Editor) Title() string {
	name := ed.engine.FileName()
	if name == "" {
		name = "[No Name]"
	}
	if ed.engine.IsModified() {
		name += " [+]"
	}
	return name
}
