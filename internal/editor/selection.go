package editor

// selection is anchored at one end; the cursor is the other end.
type selection struct {
	active bool
	anchor int
}

func (s *selection) clear() { s.active, s.anchor = false, 0 }

// extend starts a selection at pos unless one is already active.
func (s *selection) extend(pos int) {
	if !s.active {
		s.active, s.anchor = true, pos
	}
}

// bounds returns the selected range ordered, and false when it is empty.
func (s *selection) bounds(cursor int) (int, int, bool) {
	if !s.active || s.anchor == cursor {
		return 0, 0, false
	}
	return min(s.anchor, cursor), max(s.anchor, cursor), true
}
