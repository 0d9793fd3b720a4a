package buffer

import "unicode"

// categories are the Unicode general categories used to group characters
// into runs. Letters are lower-cased first so case does not split a word.
var categories = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
	unicode.Mn, unicode.Mc, unicode.Me,
	unicode.Nd, unicode.Nl, unicode.No,
	unicode.Zs, unicode.Zl, unicode.Zp,
	unicode.Cc, unicode.Cf, unicode.Co, unicode.Cs,
	unicode.Pc, unicode.Pd, unicode.Ps, unicode.Pe, unicode.Pi, unicode.Pf, unicode.Po,
	unicode.Sm, unicode.Sc, unicode.Sk, unicode.So,
}

func charClass(r rune) int {
	r = unicode.ToLower(r)
	for i, table := range categories {
		if unicode.Is(table, r) {
			return i
		}
	}
	return -1
}

// wordAnchor picks the character a scan starts from; past the end it is
// the last character.
func (e *Engine) wordAnchor(pos int) int {
	return min(e.clamp(pos), len(e.text)-1)
}

// ConsecutiveLeft returns the start of the run of same-class characters
// containing pos.
func (e *Engine) ConsecutiveLeft(pos int) int {
	if len(e.text) == 0 {
		return 0
	}
	p := e.wordAnchor(pos)
	class := charClass(e.text[p])
	for i := p - 1; i >= 0; i-- {
		if charClass(e.text[i]) != class {
			return i + 1
		}
	}
	return 0
}

// ConsecutiveRight returns the end (exclusive) of the run of same-class
// characters containing pos.
func (e *Engine) ConsecutiveRight(pos int) int {
	if len(e.text) == 0 {
		return 0
	}
	p := e.wordAnchor(pos)
	class := charClass(e.text[p])
	for i := p + 1; i < len(e.text); i++ {
		if charClass(e.text[i]) != class {
			return i
		}
	}
	return len(e.text)
}
