package core

// Action represents a semantic game control, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - steer left while held
	ActionRight          // Right arrow, D - steer right while held
	ActionPause          // P - toggle pause (edge-triggered by the game)
	ActionRestart        // R - start a new run after game over
	ActionQuit           // Q, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// InputFrame is the held state of every control during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are down this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as down for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is down this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// simActions are the controls that reach the simulation and therefore
// belong in a recorded input log. Bit i of a mask is simActions[i].
var simActions = [...]Action{ActionLeft, ActionRight, ActionPause}

// Mask packs the simulation controls of the frame into a bitmask.
// Frontend-only actions (restart, quit) are not encoded.
func (f InputFrame) Mask() uint8 {
	var m uint8
	for i, a := range simActions {
		if f.Has(a) {
			m |= 1 << i
		}
	}
	return m
}

// InputFrameFromMask rebuilds a frame from a mask produced by Mask.
func InputFrameFromMask(m uint8) InputFrame {
	f := NewInputFrame()
	for i, a := range simActions {
		if m&(1<<i) != 0 {
			f.Set(a)
		}
	}
	return f
}
