package buffer

import (
	"fmt"
	"testing"

	"github.com/bethropolis/kilo/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRedoRestoresContent(t *testing.T) {
	e := newEngine("seed\n")
	snapshots := []string{e.String()}
	edits := []func(){
		func() { e.Insert("abc") },
		func() { e.MoveTo(2); e.Insert("\tX\r\n") },
		func() { e.RemoveRange(0, 3) },
		func() { e.MoveTo(e.Len()); e.DeleteBackward() },
		func() { e.MoveTo(1); e.DeleteForward() },
	}
	for _, edit := range edits {
		edit()
		snapshots = append(snapshots, e.String())
	}

	for i := len(edits) - 1; i >= 0; i-- {
		require.True(t, e.Undo())
		assert.Equal(t, snapshots[i], e.String(), "after undo to step %d", i)
	}
	assert.False(t, e.Undo())

	for i := 1; i <= len(edits); i++ {
		require.True(t, e.Redo())
		assert.Equal(t, snapshots[i], e.String(), "after redo to step %d", i)
	}
	assert.False(t, e.Redo())
}

func TestUndoCursorPlacement(t *testing.T) {
	e := newEngine("")
	e.Insert("hello")
	e.RemoveRange(1, 3)

	e.Undo()
	assert.Equal(t, "hello", e.String())
	assert.Equal(t, 3, e.Position(), "re-inserted text leaves cursor after it")

	e.Undo()
	assert.Equal(t, "", e.String())
	assert.Equal(t, 0, e.Position())

	e.Redo()
	assert.Equal(t, 5, e.Position())
}

func TestNewEditClearsRedo(t *testing.T) {
	e := newEngine("")
	e.Insert("a")
	e.Undo()
	require.True(t, e.CanRedo())
	e.Insert("b")
	assert.False(t, e.CanRedo())
	assert.False(t, e.Redo())
}

func TestPeekTargets(t *testing.T) {
	e := newEngine("0123456789")
	_, ok := e.PeekUndoTarget()
	assert.False(t, ok)

	e.MoveTo(4)
	e.Insert("ab")
	pos, ok := e.PeekUndoTarget()
	require.True(t, ok)
	assert.Equal(t, 6, pos)

	e.RemoveRange(8, 10)
	pos, _ = e.PeekUndoTarget()
	assert.Equal(t, 8, pos)

	e.MoveTo(0)
	pos, _ = e.PeekUndoTarget()
	assert.Equal(t, 8, pos, "peeking never moves the cursor")
	assert.Equal(t, 0, e.Position())

	e.Undo()
	pos, ok = e.PeekRedoTarget()
	require.True(t, ok)
	assert.Equal(t, 8, pos)
}

func TestHistoryDepthIsBounded(t *testing.T) {
	e := newEngine("")
	total := history.DefaultMaxHistory + 10
	for i := 0; i < total; i++ {
		e.Insert(fmt.Sprint(i % 10))
	}
	undone := 0
	for e.Undo() {
		undone++
	}
	assert.Equal(t, history.DefaultMaxHistory, undone)
	assert.Equal(t, 10, e.Len())
}

func TestCustomHistoryDepth(t *testing.T) {
	e := New("", Options{HistoryDepth: 3})
	for i := 0; i < 5; i++ {
		e.Insert("x")
	}
	n := 0
	for e.Undo() {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, "xx", e.String())
}
