package buffer

// HeadOfLine returns the offset of the first character of the line
// containing pos.
func (e *Engine) HeadOfLine(pos int) int {
	for i := e.clamp(pos) - 1; i >= 0; i-- {
		if e.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// TailOfLine returns the offset of the newline ending the line containing
// pos, or Len() on the last line.
func (e *Engine) TailOfLine(pos int) int {
	if pos > len(e.text)-1 {
		return len(e.text)
	}
	for i := max(pos, 0); i < len(e.text); i++ {
		if e.text[i] == '\n' {
			return i
		}
	}
	return len(e.text)
}

// IsLastLine reports whether no newline exists at or after pos.
func (e *Engine) IsLastLine(pos int) bool {
	if pos > len(e.text)-1 {
		return true
	}
	for i := max(pos, 0); i < len(e.text); i++ {
		if e.text[i] == '\n' {
			return false
		}
	}
	return true
}

// NextLinePos returns the head of the line after pos, clamped to Len().
func (e *Engine) NextLinePos(pos int) int {
	return e.clamp(e.TailOfLine(pos) + 1)
}

// NextLinePosN advances n lines from pos, stopping once the last line is reached.
func (e *Engine) NextLinePosN(pos, n int) int {
	ret := pos
	for i := 0; i < n; i++ {
		ret = e.NextLinePos(ret)
		if e.IsLastLine(ret) {
			return ret
		}
	}
	return ret
}

// PrevLinePos returns the head of the line before the one containing pos.
func (e *Engine) PrevLinePos(pos int) int {
	return e.HeadOfLine(e.clamp(e.HeadOfLine(pos) - 1))
}

// CountLines counts the newlines between two offsets in either order.
func (e *Engine) CountLines(from, to int) int {
	from, to = e.clamp(from), e.clamp(to)
	if from > to {
		from, to = to, from
	}
	n := 0
	for _, r := range e.text[from:to] {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineOf returns the zero-based line number of pos.
func (e *Engine) LineOf(pos int) int {
	return e.CountLines(0, pos)
}

// IsHeadOfLine reports whether the cursor sits at the start of a line.
func (e *Engine) IsHeadOfLine() bool {
	return e.position == 0 || e.text[e.position-1] == '\n'
}

// LinesFrom returns the text from the head of pos's line through count line
// boundaries: the page a host renders starting at pos.
func (e *Engine) LinesFrom(pos, count int) string {
	if count <= 0 {
		return ""
	}
	next := pos
	for i := 0; i < count; i++ {
		next = e.TailOfLine(next) + 1
	}
	return e.Text(e.HeadOfLine(pos), next)
}

// LineRight returns the text from the cursor to the end of its line.
func (e *Engine) LineRight() string {
	return e.Text(e.position, e.TailOfLine(e.position))
}
