package highlight

import (
	"context"
	"sync"
	"time"

	"github.com/bethropolis/kilo/internal/logger"
	"github.com/bethropolis/kilo/internal/utils"
)

// DebounceDuration delays highlighting while the user keeps typing.
const DebounceDuration = 65 * time.Millisecond

// Manager highlights documents in the background and caches the result by
// document version.
type Manager struct {
	hl        *Highlighter
	debouncer utils.Debouncer
	delay     time.Duration
	onReady   func()

	mu      sync.Mutex
	version uint64
	valid   bool
	ranges  []Range
	cancel  context.CancelFunc
}

// NewManager creates a manager. onReady, when set, runs after each
// completed highlight pass.
func NewManager(hl *Highlighter, delay time.Duration, onReady func()) *Manager {
	return &Manager{hl: hl, delay: delay, onReady: onReady}
}

// Request schedules highlighting of text at version. Requests for the
// cached version are ignored.
func (m *Manager) Request(version uint64, path, text string) {
	m.mu.Lock()
	if m.valid && m.version == version {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.debouncer.Debounce(m.delay, func() { m.run(version, path, text) })
}

func (m *Manager) run(version uint64, path, text string) {
	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = cancel
	m.mu.Unlock()
	defer cancel()

	ranges, err := m.hl.Highlight(ctx, path, text)
	m.finish(ctx, version, ranges, err)
}

// finish publishes a completed run unless a newer request cancelled it.
func (m *Manager) finish(ctx context.Context, version uint64, ranges []Range, err error) {
	if ctx.Err() != nil {
		logger.DebugTagf("highlight", "version %d superseded", version)
		return
	}
	if err != nil {
		logger.WarnTagf("highlight", "highlighting failed: %v", err)
		ranges = nil
	}

	m.mu.Lock()
	if !m.valid || version >= m.version {
		m.version, m.ranges, m.valid = version, ranges, true
	}
	m.mu.Unlock()

	if m.onReady != nil {
		m.onReady()
	}
}

// Ranges returns the ranges cached for version.
func (m *Manager) Ranges(version uint64) ([]Range, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid || m.version != version {
		return nil, false
	}
	return m.ranges, true
}

// Invalidate drops the cache, e.g. after a file is opened.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.valid, m.ranges = false, nil
	m.mu.Unlock()
}

// Shutdown cancels pending and running work.
func (m *Manager) Shutdown() {
	m.debouncer.Stop()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
