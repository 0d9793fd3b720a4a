// Package autosave periodically writes a modified document back to its file.
package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/kilo/internal/logger"
)

// Target is the document being saved. Its methods may be called from the
// saver goroutine.
type Target interface {
	IsModified() bool
	FilePath() string
	Save() error
}

// AutoSave saves its target on a fixed interval while it is modified.
type AutoSave struct {
	target   Target
	interval time.Duration

	mutex    sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates an AutoSave. It does nothing until Start is called.
func New(target Target, interval time.Duration) *AutoSave {
	return &AutoSave{target: target, interval: interval}
}

// Start launches the saver goroutine. Starting twice is a no-op.
func (a *AutoSave) Start() {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.running || a.interval <= 0 {
		return
	}
	a.running = true
	a.stopChan = make(chan struct{})
	a.wg.Add(1)
	go a.loop(a.stopChan)
	logger.InfoTagf("io", "autosave started, interval %v", a.interval)
}

// Stop signals the saver goroutine and waits for it to exit.
func (a *AutoSave) Stop() {
	a.mutex.Lock()
	if !a.running {
		a.mutex.Unlock()
		return
	}
	a.running = false
	close(a.stopChan)
	a.mutex.Unlock()
	a.wg.Wait()
	logger.DebugTagf("io", "autosave stopped")
}

func (a *AutoSave) loop(stop <-chan struct{}) {
	defer a.wg.Done()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := a.SaveIfModified(); err != nil {
				logger.ErrorTagf("io", "autosave of %s failed: %v", a.target.FilePath(), err)
			}
		case <-stop:
			return
		}
	}
}

// SaveIfModified saves the target when it is modified and bound to a file.
// It reports whether a save was attempted.
func (a *AutoSave) SaveIfModified() (bool, error) {
	if !a.target.IsModified() {
		return false, nil
	}
	path := a.target.FilePath()
	if path == "" {
		logger.DebugTagf("io", "document has no file, skipping autosave")
		return false, nil
	}
	if err := a.target.Save(); err != nil {
		return true, err
	}
	logger.DebugTagf("io", "autosaved %s", path)
	return true, nil
}
