package editor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dshills/linedit/internal/input/key"
)

// Action names a controller operation.
type Action string

// Action names.
const (
	ActionNone           Action = ""
	ActionQuit           Action = "app.quit"
	ActionRedraw         Action = "view.redraw"
	ActionInsertChar     Action = "editor.insertChar"
	ActionInsertNewline  Action = "editor.insertNewline"
	ActionDeleteCharBack Action = "editor.deleteCharBack"
	ActionDeleteChar     Action = "editor.deleteChar"
	ActionMoveLeft       Action = "cursor.moveLeft"
	ActionMoveRight      Action = "cursor.moveRight"
	ActionMoveUp         Action = "cursor.moveUp"
	ActionMoveDown       Action = "cursor.moveDown"
	ActionMoveLineStart  Action = "cursor.moveLineStart"
	ActionMoveLineEnd    Action = "cursor.moveLineEnd"
	ActionWordBackward   Action = "cursor.wordBackward"
	ActionWordForward    Action = "cursor.wordForward"
)

// Actions lists every bindable action.
var Actions = []Action{
	ActionQuit,
	ActionRedraw,
	ActionInsertNewline,
	ActionDeleteCharBack,
	ActionDeleteChar,
	ActionMoveLeft,
	ActionMoveRight,
	ActionMoveUp,
	ActionMoveDown,
	ActionMoveLineStart,
	ActionMoveLineEnd,
	ActionWordBackward,
	ActionWordForward,
}

// ParseAction validates an action name.
func ParseAction(name string) (Action, error) {
	a := Action(name)
	if !slices.Contains(Actions, a) {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// Keymap binds keys to actions.
type Keymap map[key.Key]Action

// DefaultKeymap returns the standard bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		key.Ctrl('C'): ActionQuit,
		key.Ctrl('L'): ActionRedraw,
		key.BS:        ActionDeleteCharBack,
		key.DEL:       ActionDeleteCharBack,
		key.Delete:    ActionDeleteChar,
		key.CR:        ActionInsertNewline,
		key.LF:        ActionInsertNewline,
		key.Home:      ActionMoveLineStart,
		key.End:       ActionMoveLineEnd,
		key.Left:      ActionMoveLeft,
		key.Right:     ActionMoveRight,
		key.Up:        ActionMoveUp,
		key.Down:      ActionMoveDown,
		key.CtrlLeft:  ActionWordBackward,
		key.CtrlRight: ActionWordForward,
	}
}

// Clone returns a copy of the keymap.
func (km Keymap) Clone() Keymap {
	return maps.Clone(km)
}

// Bind binds k to a, replacing any previous binding of k.
func (km Keymap) Bind(k key.Key, a Action) {
	km[k] = a
}

// Rebind binds a to k only, removing every other key bound to a.
func (km Keymap) Rebind(a Action, k key.Key) {
	for old, bound := range km {
		if bound == a {
			delete(km, old)
		}
	}
	km[k] = a
}

// Lookup resolves k. Unbound printable bytes insert themselves; any other
// unbound key resolves to ActionNone.
func (km Keymap) Lookup(k key.Key) Action {
	if a, ok := km[k]; ok {
		return a
	}
	if k.IsPrintable() {
		return ActionInsertChar
	}
	return ActionNone
}

// KeysFor returns the keys bound to a, in ascending order.
func (km Keymap) KeysFor(a Action) []key.Key {
	var keys []key.Key
	for k, bound := range km {
		if bound == a {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
