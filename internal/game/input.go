package game

import (
	"torus-walker/internal/entities"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionAdvance // any other key or a mouse click
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveN:
		return "move-n"
	case ActionMoveS:
		return "move-s"
	case ActionMoveE:
		return "move-e"
	case ActionMoveW:
		return "move-w"
	case ActionAdvance:
		return "advance"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionAdvance
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	}
	return ActionAdvance
}

// mouseToAction maps a button press to ActionAdvance. Motion and wheel
// events carry no action.
func mouseToAction(ev *tcell.EventMouse) Action {
	if ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0 {
		return ActionAdvance
	}
	return ActionNone
}

// actionToDirection converts a movement action to a direction.
func actionToDirection(a Action) entities.Direction {
	switch a {
	case ActionMoveN:
		return entities.DirUp
	case ActionMoveS:
		return entities.DirDown
	case ActionMoveE:
		return entities.DirRight
	case ActionMoveW:
		return entities.DirLeft
	}
	return entities.DirNone
}
