package core

// Action represents a semantic demo action, abstracted from physical key presses.
// Demos react to intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow
	ActionDown               // S, Down arrow
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionRotateLeft         // Z, [ - rotate counter-clockwise
	ActionRotateRight        // X, ] - rotate clockwise
	ActionFire               // Space - fire the cannon, emit a burst
	ActionToggle             // Tab, T - cycle shape kind, toggle revive
	ActionConfirm            // Enter - confirm, toggle anchor
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C - exit
	ActionPause              // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionFire:        "Fire",
	ActionToggle:      "Toggle",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input state for one simulation tick: every action that
// was triggered during the frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
