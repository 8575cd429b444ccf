package desert

import (
	"github.com/vovakirdan/desert-runner/internal/core"
)

// State is the phase of a run.
type State uint8

const (
	StateRunning  State = iota // Initial state; everything updates
	StatePaused                // Toggled by the pause control, also mid-crash
	StateCrashing              // Hit a cactus; freeze is scheduled
	StateEnded                 // Terminal; nothing but road marks updates
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCrashing:
		return "crashing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// live reports whether the world moves in this state.
func (s State) live() bool {
	return s == StateRunning || s == StateCrashing
}

// togglePause flips between Paused and the live state on the rising edge
// of the pause control. Holding the key does nothing after the first frame.
// A crashed run can be paused too; resuming returns it to Crashing.
func togglePause(w *World, in core.InputFrame) {
	pressed := in.Has(core.ActionPause)
	rising := pressed && !w.pauseHeld
	w.pauseHeld = pressed
	if !rising {
		return
	}

	switch w.state {
	case StateRunning, StateCrashing:
		w.state = StatePaused
	case StatePaused:
		w.state = StateRunning
		if w.crashed {
			w.state = StateCrashing
		}
	}
}

// endRun is the delayed freeze scheduled by a crash. The freeze runs on
// simulated time, so it also lands while a crashed run is paused.
func endRun(w *World) {
	if !w.crashed || w.state == StateEnded {
		return
	}
	w.state = StateEnded
	w.spawner.Stop()
}
