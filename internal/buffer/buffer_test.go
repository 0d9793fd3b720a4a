package buffer

import (
	"fmt"
	"testing"

	"github.com/bethropolis/kilo/internal/event"
	"github.com/bethropolis/kilo/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(text string) *Engine {
	return New(text, Options{TabWidth: 4})
}

func TestInsertAndLinesFrom(t *testing.T) {
	e := newEngine("")
	e.Insert("abc")
	assert.Equal(t, "abc", e.String())
	e.Insert("ABC\n")
	assert.Equal(t, "abcABC\n", e.String())
	e.Insert("123")
	assert.Equal(t, "abcABC\n123", e.String())

	e.MoveTo(0)
	assert.Equal(t, "abcABC\n", e.LinesFrom(0, 1))
	assert.Equal(t, "123", e.LinesFrom(7, 1))
	assert.Equal(t, "abcABC\n123", e.LinesFrom(3, 5))
	assert.Equal(t, "", e.LinesFrom(3, 0))
}

func TestInsertAtClampsAndMovesCursor(t *testing.T) {
	e := newEngine("hello")
	e.InsertAt(99, "!")
	assert.Equal(t, "hello!", e.String())
	assert.Equal(t, 6, e.Position())

	e.InsertAt(-3, ">")
	assert.Equal(t, ">hello!", e.String())
	assert.Equal(t, 1, e.Position())

	v := e.Version()
	e.Insert("")
	assert.Equal(t, v, e.Version(), "empty insert is a no-op")
	assert.Equal(t, 2, e.history.UndoLen())
}

func TestRemoveRange(t *testing.T) {
	e := newEngine("0123456789")
	e.RemoveRange(7, 3)
	assert.Equal(t, "012789", e.String())
	assert.Equal(t, 3, e.Position())

	e.RemoveRange(4, -10)
	assert.Equal(t, "89", e.String())
	assert.Equal(t, 0, e.Position())

	e.RemoveRange(1, 1)
	assert.Equal(t, "89", e.String())
	assert.True(t, e.IsModified())
}

func TestInsertRemoveAreInverses(t *testing.T) {
	for _, tc := range []struct {
		content string
		pos     int
		text    string
	}{
		{"", 0, "abc"},
		{"hello world", 5, ",\n\tthere"},
		{"line1\nline2", 6, "inserted\n"},
		{"日本語", 1, "🙂x"},
	} {
		t.Run(fmt.Sprintf("%q@%d", tc.content, tc.pos), func(t *testing.T) {
			e := newEngine(tc.content)
			e.MoveTo(tc.pos)
			e.Insert(tc.text)
			e.RemoveRange(tc.pos, tc.pos+len([]rune(tc.text)))
			assert.Equal(t, tc.content, e.String())
			assert.Equal(t, tc.pos, e.Position())
		})
	}
}

func TestDeleteForwardAndBackward(t *testing.T) {
	e := newEngine("ab\r\ncd")
	e.MoveTo(2)
	e.DeleteForward()
	assert.Equal(t, "abcd", e.String(), "CRLF removed as one unit")

	e = newEngine("ab\r\ncd")
	e.MoveTo(4)
	e.DeleteBackward()
	assert.Equal(t, "abcd", e.String())
	assert.Equal(t, 2, e.Position())

	e.DeleteBackward()
	assert.Equal(t, "acd", e.String())
	assert.Equal(t, 1, e.Position())

	e.DeleteForward()
	assert.Equal(t, "ad", e.String())
	assert.Equal(t, 1, e.Position())
}

func TestDeleteAtDocumentEdges(t *testing.T) {
	e := newEngine("x")
	e.MoveTo(0)
	e.DeleteBackward()
	assert.Equal(t, "x", e.String())

	e.MoveTo(1)
	e.DeleteForward()
	assert.Equal(t, "x", e.String())
	assert.False(t, e.CanUndo())
}

func TestDeleteRemovesWholeCluster(t *testing.T) {
	e := newEngine("ae\u0301b")
	e.MoveTo(3)
	e.DeleteBackward()
	assert.Equal(t, "ab", e.String())

	e = newEngine("a\U0001F44D\U0001F3FDb")
	e.MoveTo(1)
	e.DeleteForward()
	assert.Equal(t, "ab", e.String())
}

func TestLoneCRAndLF(t *testing.T) {
	e := newEngine("a\rb\nc")
	e.MoveTo(1)
	e.DeleteForward()
	assert.Equal(t, "ab\nc", e.String())

	e.MoveTo(3)
	e.DeleteBackward()
	assert.Equal(t, "abc", e.String())
}

func TestEventsDispatched(t *testing.T) {
	bus := event.NewManager()
	var edits []history.Entry
	var moves []int
	bus.Subscribe(event.TypeBufferModified, func(ev event.Event) bool {
		edits = append(edits, ev.Data.(event.BufferModifiedData).Edit)
		return false
	})
	bus.Subscribe(event.TypeCursorMoved, func(ev event.Event) bool {
		moves = append(moves, ev.Data.(event.CursorMovedData).Position)
		return false
	})

	e := New("", Options{Events: bus})
	e.Insert("hi")
	e.Undo()

	require.Len(t, edits, 2)
	assert.Equal(t, history.InsertOf(0, "hi"), edits[0])
	assert.Equal(t, history.DeleteOf(0, "hi"), edits[1])
	assert.Equal(t, []int{2, 0}, moves)
}

func TestTextAndRuneAt(t *testing.T) {
	e := newEngine("h\u00e9llo")
	assert.Equal(t, "\u00e9l", e.Text(3, 1))
	assert.Equal(t, "h\u00e9llo", e.Text(-1, 100))
	r, ok := e.RuneAt(1)
	assert.True(t, ok)
	assert.Equal(t, '\u00e9', r)
	_, ok = e.RuneAt(5)
	assert.False(t, ok)
}
