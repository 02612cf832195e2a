package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini2d/internal/core"
)

// KeyMapper translates Bubble Tea key messages to demo actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// defaultBindings maps key names to actions. Arrows and WASD move; Z/X and
// the bracket keys rotate.
var defaultBindings = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,

	"w": core.ActionUp, "up": core.ActionUp,
	"s": core.ActionDown, "down": core.ActionDown,
	"a": core.ActionLeft, "left": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight,

	"z": core.ActionRotateLeft, "[": core.ActionRotateLeft, ",": core.ActionRotateLeft,
	"x": core.ActionRotateRight, "]": core.ActionRotateRight, ".": core.ActionRotateRight,

	" ":     core.ActionFire,
	"tab":   core.ActionToggle,
	"t":     core.ActionToggle,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack,
	"esc":   core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: defaultBindings}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
