package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveToClamps(t *testing.T) {
	e := newEngine("abc")
	e.MoveTo(10)
	assert.Equal(t, 3, e.Position())
	e.MoveTo(-4)
	assert.Equal(t, 0, e.Position())
	e.Forward(2)
	assert.Equal(t, 2, e.Position())
	e.Back(5)
	assert.Equal(t, 0, e.Position())
}

func TestHeadAndTailMoves(t *testing.T) {
	e := newEngine("one\ntwo three\nfour")
	e.MoveTo(6)
	e.MoveToTailOfLine()
	assert.Equal(t, 13, e.Position())
	e.MoveToHeadOfLine()
	assert.Equal(t, 4, e.Position())
}

func TestMoveLinesKeepsPreferredColumn(t *testing.T) {
	e := newEngine("abcdef\nab\n\tx\nabcdefgh")
	e.MoveTo(5)
	assert.Equal(t, 5, e.PreferredColumn())

	e.Down(1)
	assert.Equal(t, 9, e.Position(), "short line clamps to its tail")
	e.Down(1)
	assert.Equal(t, 12, e.Position(), "tab plus x only reaches column 5 at the tail")
	e.Down(1)
	assert.Equal(t, 18, e.Position())
	assert.Equal(t, 5, e.VisualColumn(e.Position()))

	e.Up(3)
	assert.Equal(t, 5, e.Position())
}

func TestMoveLinesAtEdges(t *testing.T) {
	e := newEngine("ab\ncd")
	e.MoveTo(1)
	e.Up(1)
	assert.Equal(t, 1, e.Position())

	e.MoveTo(4)
	e.Down(1)
	assert.Equal(t, 4, e.Position())

	e.MoveTo(1)
	e.Down(5)
	assert.Equal(t, 4, e.Position(), "overshooting lands on the last line")
	e.MoveLines(0)
	assert.Equal(t, 4, e.Position())
}

func TestPreferredColumnResetsOnEdit(t *testing.T) {
	e := newEngine("abcdef\nabcdef")
	e.MoveTo(5)
	e.Insert("\n")
	assert.Equal(t, 0, e.PreferredColumn())
	e.Down(1)
	assert.Equal(t, 8, e.Position())
}
