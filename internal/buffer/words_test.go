package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsecutiveScan(t *testing.T) {
	e := newEngine("foo Bar,  42x")
	cases := []struct {
		pos         int
		left, right int
	}{
		{1, 0, 3},
		{4, 4, 7}, // mixed case stays one run
		{7, 7, 8},
		{8, 8, 10},
		{10, 10, 12},
		{12, 12, 13},
		{13, 12, 13}, // end of document uses the last character
		{-5, 0, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.left, e.ConsecutiveLeft(tc.pos), "left(%d)", tc.pos)
		assert.Equal(t, tc.right, e.ConsecutiveRight(tc.pos), "right(%d)", tc.pos)
	}
}

func TestConsecutiveScanEmpty(t *testing.T) {
	e := newEngine("")
	assert.Equal(t, 0, e.ConsecutiveLeft(0))
	assert.Equal(t, 0, e.ConsecutiveRight(0))
}

func TestConsecutiveScanUnicode(t *testing.T) {
	e := newEngine("日本語 text")
	assert.Equal(t, 0, e.ConsecutiveLeft(2))
	assert.Equal(t, 3, e.ConsecutiveRight(0))
}
