package buffer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// numbered builds "L0\nL1\n...L{n-1}".
func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("L%d", i)
	}
	return strings.Join(lines, "\n")
}

func TestScrollForwardStopsAtLastPage(t *testing.T) {
	e := newEngine(numbered(10))
	v := NewViewport(e, 4)

	assert.Equal(t, 2, v.ScrollForward(2))
	assert.Equal(t, 2, v.OriginLine())
	assert.Equal(t, "L2\nL3\nL4\nL5\n", v.Text())

	moved := v.ScrollForward(100)
	assert.Equal(t, 5, moved)
	assert.Equal(t, 7, v.OriginLine(), "last line sits on row lines-2")
	assert.Equal(t, "L7\nL8\nL9", v.Text())
	assert.Equal(t, 0, v.ScrollForward(1))
}

func TestScrollBackwardStopsAtZero(t *testing.T) {
	e := newEngine(numbered(10))
	v := NewViewport(e, 4)
	v.ScrollForward(5)

	assert.Equal(t, 3, v.ScrollBackward(3))
	assert.Equal(t, 2, v.OriginLine())
	assert.Equal(t, 2, v.ScrollBackward(10))
	assert.Equal(t, 0, v.Origin())
}

func TestShortDocumentDoesNotScroll(t *testing.T) {
	e := newEngine("a\nb")
	v := NewViewport(e, 10)
	assert.Equal(t, 0, v.ScrollForward(3))
	assert.Equal(t, "a\nb", v.Text())
}

func TestFollow(t *testing.T) {
	e := newEngine(numbered(20))
	v := NewViewport(e, 5)

	e.MoveTo(e.Len())
	v.Follow(e.Position())
	assert.Equal(t, 16, v.OriginLine())

	e.MoveTo(e.HeadOfLine(e.Position()))
	e.Up(10)
	v.Follow(e.Position())
	assert.Equal(t, 9, v.OriginLine())

	e.MoveTo(0)
	v.Follow(0)
	assert.Equal(t, 0, v.Origin())
}

func TestOriginReanchorsAfterEdit(t *testing.T) {
	e := newEngine(numbered(10))
	v := NewViewport(e, 3)
	v.ScrollForward(4)
	origin := v.Origin()

	e.RemoveRange(origin-5, e.Len())
	assert.Equal(t, e.HeadOfLine(e.Len()), v.Origin())
	v.Reset()
	assert.Equal(t, 0, v.Origin())
	v.SetLineCount(0)
	assert.Equal(t, 1, v.LineCount())
}
