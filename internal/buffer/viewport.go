package buffer

import "github.com/bethropolis/kilo/internal/logger"

// Viewport tracks the offset anchoring the first visible line of a page of
// a fixed number of lines.
type Viewport struct {
	engine *Engine
	origin int
	lines  int
}

// NewViewport creates a viewport showing lines lines from the top of e.
func NewViewport(e *Engine, lines int) *Viewport {
	return &Viewport{engine: e, lines: max(lines, 1)}
}

// SetLineCount changes the number of visible lines.
func (v *Viewport) SetLineCount(n int) { v.lines = max(n, 1) }

// LineCount returns the number of visible lines.
func (v *Viewport) LineCount() int { return v.lines }

// Origin returns the offset of the first visible character.
func (v *Viewport) Origin() int {
	v.anchor()
	return v.origin
}

// OriginLine returns the line number of the first visible line.
func (v *Viewport) OriginLine() int {
	return v.engine.LineOf(v.Origin())
}

// Reset scrolls back to the top of the document.
func (v *Viewport) Reset() { v.origin = 0 }

// anchor keeps the origin on a line head after edits moved text under it.
func (v *Viewport) anchor() {
	v.origin = v.engine.HeadOfLine(v.engine.clamp(v.origin))
}

// ScrollForward advances the origin up to n lines, stopping before the last
// page would scroll out of view. It returns the number of lines moved.
func (v *Viewport) ScrollForward(n int) int {
	v.anchor()
	e := v.engine
	moved := 0
	for i := 0; i < n; i++ {
		current := v.origin
		if e.IsLastLine(e.NextLinePosN(current, v.lines-2)) {
			break
		}
		next := e.NextLinePos(current)
		if next <= current {
			break
		}
		v.origin = next
		moved++
	}
	logger.DebugTagf("viewport", "scroll forward %d/%d, origin=%d", moved, n, v.origin)
	return moved
}

// ScrollBackward retreats the origin up to n lines, stopping at offset 0.
// It returns the number of lines moved.
func (v *Viewport) ScrollBackward(n int) int {
	v.anchor()
	moved := 0
	for i := 0; i < n; i++ {
		if v.origin == 0 {
			break
		}
		v.origin = v.engine.PrevLinePos(v.origin)
		moved++
	}
	logger.DebugTagf("viewport", "scroll backward %d/%d, origin=%d", moved, n, v.origin)
	return moved
}

// Follow scrolls just enough to bring the line of pos into view.
func (v *Viewport) Follow(pos int) {
	caretLine := v.engine.LineOf(pos)
	originLine := v.OriginLine()
	switch bottom := originLine + v.lines - 2; {
	case caretLine < originLine:
		v.ScrollBackward(originLine - caretLine)
	case caretLine > bottom:
		v.ScrollForward(caretLine - bottom)
	}
}

// Text returns the visible page.
func (v *Viewport) Text() string {
	return v.engine.LinesFrom(v.Origin(), v.lines)
}
