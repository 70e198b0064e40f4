package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents rather than raw keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move paddle left
	ActionRight           // D, Right arrow - move paddle right
	ActionUp              // Up arrow - menu navigation
	ActionDown            // Down arrow - menu navigation
	ActionConfirm         // Enter, Y - confirm dialog or menu selection
	ActionBack            // Escape, N - decline dialog, go back
	ActionRestart         // R - restart the round
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P, Space - pause/unpause game
	ActionForceWin        // W - end the round as won
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
	ActionForceWin: "ForceWin",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input state during one simulation tick. Movement actions
// are "held" for as long as the platform considers the key pressed, so the
// frame can be polled the way a key-state API would be.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
