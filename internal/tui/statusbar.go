package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/kilo/internal/config"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// StatusBar is the bottom line: document title and cursor position, or a
// temporary message.
type StatusBar struct {
	mu       sync.Mutex
	timeout  time.Duration
	title    string
	modified bool
	line     int
	col      int

	message     string
	messageTime time.Time
	now         func() time.Time
}

// NewStatusBar creates a status bar whose messages expire after timeout.
func NewStatusBar(timeout time.Duration) *StatusBar {
	if timeout <= 0 {
		timeout = config.MessageTimeout
	}
	return &StatusBar{timeout: timeout, now: time.Now}
}

// SetFileInfo updates the document title.
func (sb *StatusBar) SetFileInfo(title string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.title, sb.modified = title, modified
}

// SetCursorInfo updates the zero-based cursor line and column.
func (sb *StatusBar) SetCursorInfo(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line, sb.col = line, col
}

// SetTemporaryMessage shows a message until the timeout elapses.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = fmt.Sprintf(format, args...)
	sb.messageTime = sb.now()
}

// ResetTemporaryMessage clears the message.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message, sb.messageTime = "", time.Time{}
}

// content returns the left and right texts, whether a message is shown and
// whether the document is modified.
func (sb *StatusBar) content() (string, string, bool, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if !sb.messageTime.IsZero() && sb.now().Sub(sb.messageTime) > sb.timeout {
		sb.message, sb.messageTime = "", time.Time{}
	}
	right := fmt.Sprintf("Ln %d, Col %d", sb.line+1, sb.col+1)
	if sb.message != "" {
		return sb.message, right, true, sb.modified
	}
	return sb.title, right, false, sb.modified
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, th *Theme) {
	width, height := screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1
	left, right, isMessage, modified := sb.content()

	style := th.GetStyle("StatusBar")
	leftStyle := style
	switch {
	case isMessage:
		leftStyle = th.GetStyle("StatusBarMessage")
	case modified:
		leftStyle = th.GetStyle("StatusBarModified")
	}
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	rightWidth := uniseg.StringWidth(right)
	rightX := width - rightWidth - 1
	leftLimit := width
	if rightX > uniseg.StringWidth(left)+1 {
		drawClusters(screen, rightX, y, right, width, style)
		leftLimit = rightX - 1
	}
	drawClusters(screen, 0, y, left, leftLimit, leftStyle)
}

// drawClusters draws s from x, one grapheme cluster at a time, stopping
// before limit.
func drawClusters(screen tcell.Screen, x, y int, s string, limit int, style tcell.Style) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if x+w > limit {
			return
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
