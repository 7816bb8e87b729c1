package core

// Action represents a semantic game action, abstracted from physical key presses.
// Adapters translate keys (or websocket messages) into actions so the session
// logic works with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - walk towards -Z
	ActionDown           // Down arrow - walk towards +Z
	ActionLeft           // Left arrow - walk towards -X
	ActionRight          // Right arrow - walk towards +X
	ActionSubmit         // Enter - submit the typed answer
	ActionHint           // Tab - hear the phrase spoken
	ActionStart          // Enter on the start screen
	ActionPause          // Escape - pause/unpause
	ActionRestart        // Ctrl+R - new session after winning
	ActionQuit           // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSubmit:
		return "Submit"
	case ActionHint:
		return "Hint"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input of the single player during one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Answer carries the text typed by the player when ActionSubmit is set.
	Answer string
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the unit movement direction requested by the frame.
// Opposite keys cancel out; diagonals are normalized.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Has(ActionUp) {
		d.Z--
	}
	if f.Has(ActionDown) {
		d.Z++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	return d.Normalize()
}

// Clear resets all actions and the answer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Answer = ""
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Answer = f.Answer
	return clone
}
