package buffer

// MoveTo places the cursor at pos (clamped) and makes its column the
// preferred column.
func (e *Engine) MoveTo(pos int) {
	e.setPosition(pos)
	e.prefCol = e.VisualColumn(e.position)
}

// Forward moves the cursor n characters right.
func (e *Engine) Forward(n int) { e.MoveTo(e.position + n) }

// Back moves the cursor n characters left.
func (e *Engine) Back(n int) { e.MoveTo(e.position - n) }

// MoveToHeadOfLine moves the cursor to the start of its line.
func (e *Engine) MoveToHeadOfLine() { e.MoveTo(e.HeadOfLine(e.position)) }

// MoveToTailOfLine moves the cursor to the end of its line.
func (e *Engine) MoveToTailOfLine() { e.MoveTo(e.TailOfLine(e.position)) }

// PreferredColumn returns the visual column kept across vertical moves.
func (e *Engine) PreferredColumn() int { return e.prefCol }

// MoveLines moves the cursor n lines down (n > 0) or up (n < 0), landing on
// the preferred visual column. Moving down from the last line or up from the
// first line does nothing.
func (e *Engine) MoveLines(n int) {
	var next int
	switch {
	case n > 0:
		if e.IsLastLine(e.position) {
			return
		}
		next = e.position
		for i := 0; i < n; i++ {
			next = e.clamp(e.TailOfLine(next) + 1)
		}
	case n < 0:
		next = e.HeadOfLine(e.position)
		if next == 0 {
			return
		}
		for i := 0; i < -n; i++ {
			next = e.HeadOfLine(next - 1)
		}
	default:
		return
	}
	e.setPosition(e.SeekVisualColumn(next, e.prefCol))
}

// Up moves the cursor n lines up.
func (e *Engine) Up(n int) { e.MoveLines(-n) }

// Down moves the cursor n lines down.
func (e *Engine) Down(n int) { e.MoveLines(n) }
