package app

import (
	"github.com/bethropolis/kilo/internal/event"
	"github.com/bethropolis/kilo/internal/logger"
)

// subscribe wires engine notifications to the status bar and highlighter.
// Handlers run synchronously inside editor calls, with mu held.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
}

func (a *App) handleBufferModified(e event.Event) bool {
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		logger.DebugTagf("history", "modified: %s at %d, version %d", data.Edit.Kind, data.Edit.Pos, data.Version)
	}
	a.requestHighlight()
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		a.statusBar.SetTemporaryMessage("Opened %s", data.FilePath)
	}
	if a.highlights != nil {
		a.highlights.Invalidate()
	}
	a.kinds = nil
	a.requestHighlight()
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false
}
