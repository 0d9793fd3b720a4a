package buffer

import "github.com/bethropolis/kilo/internal/history"

// replayer applies history entries to the engine without recording them.
type replayer struct {
	e *Engine
}

// Revert undoes the effect described by en and returns its inverse.
func (r replayer) Revert(en history.Entry) history.Entry {
	e := r.e
	pos := e.clamp(en.Pos)
	switch en.Kind {
	case history.Insert:
		e.remove(pos, e.clamp(pos+en.Len()))
	case history.Delete:
		e.insert(pos, []rune(en.Text))
	}
	e.prefCol = e.VisualColumn(e.position)
	inv := en.Inverse()
	e.notifyModified(inv)
	return inv
}

// Undo reverts the most recent edit. It reports whether anything happened.
func (e *Engine) Undo() bool {
	return e.history.Undo(replayer{e})
}

// Redo re-applies the most recently undone edit.
func (e *Engine) Redo() bool {
	return e.history.Redo(replayer{e})
}

// PeekUndoTarget returns the cursor position an Undo would land on.
func (e *Engine) PeekUndoTarget() (int, bool) {
	return e.history.PeekUndoTarget()
}

// PeekRedoTarget returns the position at which a Redo would apply.
func (e *Engine) PeekRedoTarget() (int, bool) {
	return e.history.PeekRedoTarget()
}

// CanUndo reports whether there is an edit to undo.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether there is an undone edit to redo.
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }
