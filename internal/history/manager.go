package history

import "github.com/bethropolis/kilo/internal/logger"

// DefaultMaxHistory bounds each stack when no depth is configured.
const DefaultMaxHistory = 1000

// Reverter applies the opposite of an entry to a document and returns the
// entry describing what it just did.
type Reverter interface {
	Revert(e Entry) Entry
}

// History holds the undo and redo stacks. It is not safe for concurrent use.
type History struct {
	undo *Stack
	redo *Stack
}

// New creates a history bounded to maxDepth entries per stack.
func New(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxHistory
	}
	return &History{
		undo: NewStack(maxDepth),
		redo: NewStack(maxDepth),
	}
}

// Record pushes a user edit and invalidates the redo branch.
func (h *History) Record(e Entry) {
	h.push(e, false)
}

func (h *History) push(e Entry, fromRedo bool) {
	if h.undo.Push(e) {
		logger.DebugTagf("history", "undo stack full (%d), dropped oldest entry", h.undo.Cap())
	}
	if !fromRedo {
		h.redo.Clear()
	}
}

// Undo reverts the most recent edit through r. It is a no-op on an empty stack.
func (h *History) Undo(r Reverter) bool {
	e, ok := h.undo.Pop()
	if !ok {
		return false
	}
	inv := r.Revert(e)
	h.redo.Push(inv)
	logger.DebugTagf("history", "undo %s at %d (undo=%d redo=%d)", e.Kind, e.Pos, h.undo.Len(), h.redo.Len())
	return true
}

// Redo replays the most recently undone edit through r. The replay goes back
// onto the undo stack without clearing the remaining redo entries.
func (h *History) Redo(r Reverter) bool {
	e, ok := h.redo.Pop()
	if !ok {
		return false
	}
	h.push(r.Revert(e), true)
	logger.DebugTagf("history", "redo %s at %d (undo=%d redo=%d)", e.Kind, e.Pos, h.undo.Len(), h.redo.Len())
	return true
}

// PeekUndoTarget returns the cursor position an undo would land on.
func (h *History) PeekUndoTarget() (int, bool) {
	e, ok := h.undo.Peek()
	if !ok {
		return 0, false
	}
	return e.Target(), true
}

// PeekRedoTarget returns the position at which a redo would apply.
func (h *History) PeekRedoTarget() (int, bool) {
	e, ok := h.redo.Peek()
	if !ok {
		return 0, false
	}
	return e.Pos, true
}

// CanUndo reports whether an undo entry exists.
func (h *History) CanUndo() bool { return h.undo.Len() > 0 }

// CanRedo reports whether a redo entry exists.
func (h *History) CanRedo() bool { return h.redo.Len() > 0 }

// UndoLen returns the number of undoable entries.
func (h *History) UndoLen() int { return h.undo.Len() }

// RedoLen returns the number of redoable entries.
func (h *History) RedoLen() int { return h.redo.Len() }

// Clear resets both stacks. Call this on file load.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}
