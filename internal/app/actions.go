package app

import (
	"errors"

	"github.com/bethropolis/kilo/internal/buffer"
	"github.com/bethropolis/kilo/internal/logger"
	"github.com/bethropolis/kilo/internal/tui"
)

// wheelLines is how far one wheel notch scrolls.
const wheelLines = 3

// dispatch applies an action to the editor and reports whether to quit.
// The caller holds mu.
func (a *App) dispatch(ev tui.ActionEvent) bool {
	if ev.Action == tui.ActionUnknown {
		return false
	}
	if ev.Action != tui.ActionQuit && a.quitPending {
		a.quitPending = false
		a.statusBar.ResetTemporaryMessage()
	}
	ed := a.editor

	switch ev.Action {
	case tui.ActionQuit:
		if ed.IsModified() && !a.quitPending {
			a.quitPending = true
			a.statusBar.SetTemporaryMessage("Unsaved changes! Press Ctrl+Q again to quit")
			return false
		}
		return true
	case tui.ActionSave:
		a.save()
	case tui.ActionUndo:
		if !ed.Undo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case tui.ActionRedo:
		if !ed.Redo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}
	case tui.ActionCopy:
		a.reportClipboard(ed.Copy())
	case tui.ActionCut:
		a.reportClipboard(ed.Cut())
	case tui.ActionPaste:
		ed.Paste()
	case tui.ActionSelectAll:
		ed.SelectAll()

	case tui.ActionMoveUp:
		ed.Up(ev.Extend)
	case tui.ActionMoveDown:
		ed.Down(ev.Extend)
	case tui.ActionMoveLeft:
		ed.Left(ev.Extend)
	case tui.ActionMoveRight:
		ed.Right(ev.Extend)
	case tui.ActionMovePageUp:
		ed.PageUp(ev.Extend)
	case tui.ActionMovePageDown:
		ed.PageDown(ev.Extend)
	case tui.ActionMoveHome:
		ed.Home(ev.Extend)
	case tui.ActionMoveEnd:
		ed.End(ev.Extend)

	case tui.ActionInsertRune:
		ed.InsertText(string(ev.Rune))
	case tui.ActionInsertTab:
		ed.InsertText("\t")
	case tui.ActionInsertNewLine:
		ed.InsertNewline()
	case tui.ActionDeleteForward:
		ed.Delete()
	case tui.ActionDeleteBackward:
		ed.Backspace()

	case tui.ActionClick, tui.ActionSelectWord:
		_, h := a.tuiManager.Size()
		if ev.Y >= tui.TextRows(h) {
			return false
		}
		pos := a.tuiManager.OffsetAt(ed, ev.X, ev.Y)
		if ev.Action == tui.ActionClick {
			ed.MoveTo(pos)
		} else {
			ed.SelectWordAt(pos)
		}
	case tui.ActionScrollUp:
		ed.Viewport().ScrollBackward(wheelLines)
	case tui.ActionScrollDown:
		ed.Viewport().ScrollForward(wheelLines)
	}
	return false
}

// save writes the document, binding the path given on the command line when
// the document has none yet.
func (a *App) save() {
	err := a.editor.Save()
	if errors.Is(err, buffer.ErrNoFilePath) {
		if a.filePath == "" {
			a.statusBar.SetTemporaryMessage("No file name: start kilo with a path to save")
			return
		}
		err = a.editor.SaveAs(a.filePath)
	}
	if err != nil {
		logger.ErrorTagf("io", "save failed: %v", err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
	}
}

func (a *App) reportClipboard(done bool, err error) {
	switch {
	case err != nil:
		a.statusBar.SetTemporaryMessage("Clipboard: %v", err)
	case !done:
		a.statusBar.SetTemporaryMessage("Nothing selected")
	}
}
