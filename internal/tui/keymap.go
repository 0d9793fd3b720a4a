package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Action is an editor operation requested by terminal input.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionSave
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	ActionInsertRune
	ActionInsertTab
	ActionInsertNewLine
	ActionDeleteForward
	ActionDeleteBackward

	ActionClick      // X, Y
	ActionSelectWord // X, Y
	ActionScrollUp
	ActionScrollDown
)

// ActionEvent is a decoded input event.
type ActionEvent struct {
	Action Action
	Rune   rune
	// Extend is set for motions made with Shift held.
	Extend bool
	X, Y   int
}

// DoubleClickInterval is the longest gap between two clicks on the same
// cell that still counts as a double click.
const DoubleClickInterval = 400 * time.Millisecond

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap  map[tcell.Key]Action
	ctrlMap map[tcell.Key]Action

	buttons   tcell.ButtonMask
	lastClick time.Time
	lastX     int
	lastY     int
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap: map[tcell.Key]Action{
			tcell.KeyUp:         ActionMoveUp,
			tcell.KeyDown:       ActionMoveDown,
			tcell.KeyLeft:       ActionMoveLeft,
			tcell.KeyRight:      ActionMoveRight,
			tcell.KeyPgUp:       ActionMovePageUp,
			tcell.KeyPgDn:       ActionMovePageDown,
			tcell.KeyHome:       ActionMoveHome,
			tcell.KeyEnd:        ActionMoveEnd,
			tcell.KeyEnter:      ActionInsertNewLine,
			tcell.KeyTab:        ActionInsertTab,
			tcell.KeyBackspace:  ActionDeleteBackward,
			tcell.KeyBackspace2: ActionDeleteBackward,
			tcell.KeyDelete:     ActionDeleteForward,
		},
		ctrlMap: map[tcell.Key]Action{
			tcell.KeyCtrlS: ActionSave,
			tcell.KeyCtrlQ: ActionQuit,
			tcell.KeyCtrlZ: ActionUndo,
			tcell.KeyCtrlY: ActionRedo,
			tcell.KeyCtrlC: ActionCopy,
			tcell.KeyCtrlX: ActionCut,
			tcell.KeyCtrlV: ActionPaste,
			tcell.KeyCtrlA: ActionSelectAll,
		},
	}
	return p
}

// ProcessEvent decodes a key event.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if action, ok := p.ctrlMap[key]; ok {
		return ActionEvent{Action: action}
	}
	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action, Extend: mod&tcell.ModShift != 0}
	}
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}
	return ActionEvent{Action: ActionUnknown}
}

// ProcessMouse decodes a mouse event. Only the press of the primary button
// and the wheel produce actions.
func (p *InputProcessor) ProcessMouse(ev *tcell.EventMouse) ActionEvent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0
	p.buttons = buttons

	switch {
	case buttons&tcell.WheelUp != 0:
		return ActionEvent{Action: ActionScrollUp}
	case buttons&tcell.WheelDown != 0:
		return ActionEvent{Action: ActionScrollDown}
	case !pressed:
		return ActionEvent{Action: ActionUnknown}
	}

	x, y := ev.Position()
	when := ev.When()
	double := x == p.lastX && y == p.lastY && !p.lastClick.IsZero() && when.Sub(p.lastClick) <= DoubleClickInterval
	if double {
		p.lastClick = time.Time{}
		return ActionEvent{Action: ActionSelectWord, X: x, Y: y}
	}
	p.lastClick, p.lastX, p.lastY = when, x, y
	return ActionEvent{Action: ActionClick, X: x, Y: y}
}
