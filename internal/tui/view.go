package tui

import (
	"strconv"

	"github.com/bethropolis/kilo/internal/buffer"
	"github.com/bethropolis/kilo/internal/config"
	"github.com/bethropolis/kilo/internal/editor"
	"github.com/bethropolis/kilo/internal/highlight"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cellWidth is the number of screen cells r occupies. A tab takes tabWidth
// cells; a carriage return takes none.
func cellWidth(r rune, tabWidth int) int {
	switch r {
	case '\t':
		return tabWidth
	case '\r':
		return 0
	}
	return runewidth.RuneWidth(r)
}

// walkLine visits the characters of the line starting at pos with their
// screen x, stopping at the newline or when visit returns false. It returns
// the offset where the walk stopped.
func walkLine(e *buffer.Engine, pos int, visit func(pos, x, w int, r rune) bool) int {
	tw := e.TabWidth()
	x := 0
	for ; pos < e.Len(); pos++ {
		r, _ := e.RuneAt(pos)
		if r == '\n' {
			break
		}
		w := cellWidth(r, tw)
		if !visit(pos, x, w, r) {
			break
		}
		x += w
	}
	return pos
}

// gutterWidth returns the width of the line-number column, or 0 when the
// screen is too narrow for it.
func gutterWidth(e *buffer.Engine, width int) int {
	lines := e.CountLines(0, e.Len()) + 1
	w := len(strconv.Itoa(lines)) + 1
	if w >= width/2 {
		return 0
	}
	return w
}

// TextRows is the number of rows available for text on a screen of height h.
func TextRows(h int) int {
	return max(h-config.StatusBarHeight, 0)
}

// DrawEditor draws the visible page of ed, its selection and the cursor.
// kinds holds the highlight kind of each rune and may be shorter than the
// document.
func (t *TUI) DrawEditor(ed *editor.Editor, kinds []highlight.Kind, th *Theme) {
	width, height := t.Size()
	rows := TextRows(height)
	if rows <= 0 || width <= 0 {
		return
	}
	e := ed.Engine()
	gutter := gutterWidth(e, width)
	selFrom, selTo, hasSel := ed.Selection()
	cursor := ed.Cursor()
	defStyle := th.GetStyle("Default")
	selStyle := th.GetStyle("Selection")
	numStyle := th.GetStyle("LineNumber")

	cx, cy := -1, -1
	pos := ed.Viewport().Origin()
	firstLine := e.LineOf(pos)
	for row := 0; row < rows; row++ {
		if gutter > 0 {
			num := strconv.Itoa(firstLine + row + 1)
			t.drawText(gutter-1-len(num), row, num, numStyle)
		}
		end := walkLine(e, pos, func(p, x, w int, r rune) bool {
			if p == cursor {
				cx, cy = x, row
			}
			style := defStyle
			if p < len(kinds) {
				style = th.KindStyle(kinds[p])
			}
			if hasSel && p >= selFrom && p < selTo {
				style = selStyle
			}
			sx := gutter + x
			switch {
			case r == '\t':
				for i := 0; i < w && sx+i < width; i++ {
					t.screen.SetContent(sx+i, row, ' ', nil, style)
				}
			case w > 0 && sx+w <= width:
				t.screen.SetContent(sx, row, r, nil, style)
			}
			return true
		})
		if end == cursor && cy < 0 {
			cx, cy = lineWidth(e, pos, end), row
		}
		if hasSel && end < e.Len() && end >= selFrom && end < selTo {
			if sx := gutter + lineWidth(e, pos, end); sx < width {
				t.screen.SetContent(sx, row, ' ', nil, selStyle)
			}
		}
		if end >= e.Len() {
			break
		}
		pos = end + 1
	}

	if cy >= 0 {
		t.screen.ShowCursor(min(gutter+cx, width-1), cy)
	} else {
		t.screen.HideCursor()
	}
}

// lineWidth is the cell width of [from, to) on one line.
func lineWidth(e *buffer.Engine, from, to int) int {
	tw := e.TabWidth()
	w := 0
	for p := from; p < to; p++ {
		r, _ := e.RuneAt(p)
		w += cellWidth(r, tw)
	}
	return w
}

func (t *TUI) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// OffsetAt maps a screen cell to a document offset. Cells past the end of a
// line map to its end; rows past the document map to its end.
func (t *TUI) OffsetAt(ed *editor.Editor, x, y int) int {
	e := ed.Engine()
	width, _ := t.Size()
	x -= gutterWidth(e, width)
	pos := ed.Viewport().Origin()
	for row := 0; row < y; row++ {
		next := e.NextLinePos(pos)
		if next == pos {
			return e.TailOfLine(pos)
		}
		pos = next
	}
	hit := -1
	end := walkLine(e, pos, func(p, cellX, w int, r rune) bool {
		if x < cellX+max(w, 1) && w > 0 {
			hit = p
			return false
		}
		return true
	})
	if hit < 0 {
		return end
	}
	return hit
}
