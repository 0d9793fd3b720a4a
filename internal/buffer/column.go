package buffer

func (e *Engine) cost(r rune) int {
	if r == '\t' {
		return e.tabWidth
	}
	return 1
}

// VisualColumn returns the tab-expanded column of pos within its line.
// Each tab counts as TabWidth columns.
func (e *Engine) VisualColumn(pos int) int {
	pos = e.clamp(pos)
	col := 0
	for _, r := range e.text[e.HeadOfLine(pos):pos] {
		col += e.cost(r)
	}
	return col
}

// SeekVisualColumn returns the offset on pos's line where the cumulative
// column cost first exceeds col, or the tail of the line if it is shorter.
func (e *Engine) SeekVisualColumn(pos, col int) int {
	head, tail := e.HeadOfLine(pos), e.TailOfLine(pos)
	remaining := col
	for i := head; i < tail; i++ {
		remaining -= e.cost(e.text[i])
		if remaining < 0 {
			return i
		}
	}
	return tail
}
