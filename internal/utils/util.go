// Package utils holds small helpers shared by the editor packages.
package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// RuneOffsets maps every byte offset of src to the index of the rune that
// contains it. The returned slice has len(src)+1 entries so that the end
// offset maps to the rune count.
func RuneOffsets(src []byte) []int {
	table := make([]int, len(src)+1)
	runeIdx := 0
	for off := 0; off < len(src); {
		_, size := utf8.DecodeRune(src[off:])
		for i := 0; i < size; i++ {
			table[off+i] = runeIdx
		}
		off += size
		runeIdx++
	}
	table[len(src)] = runeIdx
	return table
}

// Debouncer delays a call until no new call was requested for a while.
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce schedules fn after duration, cancelling any pending call.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		if d.timer == t {
			d.timer = nil
		}
		d.mutex.Unlock()
		fn()
	})
	d.timer = t
}

// Stop cancels a pending call. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
