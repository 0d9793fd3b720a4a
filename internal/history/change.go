// Package history provides bounded undo/redo stacks of reversible edits.
package history

import "unicode/utf8"

// Kind indicates whether text was inserted or deleted.
type Kind int

const (
	Insert Kind = iota
	Delete
)

func (k Kind) String() string {
	if k == Delete {
		return "delete"
	}
	return "insert"
}

// Entry is a single reversible edit. Pos is a rune offset and Text is the
// inserted or removed text.
type Entry struct {
	Kind Kind
	Pos  int
	Text string
}

// InsertOf records text inserted at pos.
func InsertOf(pos int, text string) Entry {
	return Entry{Kind: Insert, Pos: pos, Text: text}
}

// DeleteOf records text removed starting at pos.
func DeleteOf(pos int, text string) Entry {
	return Entry{Kind: Delete, Pos: pos, Text: text}
}

// Inverse returns the same payload with the opposite kind.
func (e Entry) Inverse() Entry {
	if e.Kind == Insert {
		e.Kind = Delete
	} else {
		e.Kind = Insert
	}
	return e
}

// Len is the length of Text in runes.
func (e Entry) Len() int {
	return utf8.RuneCountInString(e.Text)
}

// Target is the cursor position the edit left behind.
func (e Entry) Target() int {
	if e.Kind == Delete {
		return e.Pos
	}
	return e.Pos + e.Len()
}
