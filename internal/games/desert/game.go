// Package desert implements the desert runner: steer a car left and right
// on a scrolling road, dodge falling cacti and collect boosters.
//
// The package is pure simulation. Frontends feed it one core.InputFrame per
// frame and read back either a rendered core.Screen or a View.
package desert

import (
	"time"

	"github.com/vovakirdan/desert-runner/internal/config"
	"github.com/vovakirdan/desert-runner/internal/core"
)

// Game drives a World one frame at a time.
type Game struct {
	cfg       config.DesertConfig
	runtime   core.RuntimeConfig
	frameTime time.Duration
	world     *World
}

// New creates a desert runner with the given configuration. Call Reset
// before the first Step.
func New(cfg config.DesertConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "desert"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Desert Runner"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.DesertConfig {
	return g.cfg
}

// Runtime returns the runtime configuration of the current run.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Reset starts a new run. The seed in runtime fully determines spawning, so
// the same seed and input stream always replay identically.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.frameTime = time.Second / time.Duration(runtime.TickRate)
	g.world = newWorld(g.cfg, runtime.Seed)
}

// Step advances the simulation by one frame.
//
// Order within a frame: simulated time advances first (spawn timers and the
// delayed freeze fire here), then the pause edge is resolved, then a live
// world scrolls, moves and collides. Road marks are rebuilt last, in every
// state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	if w.state != StateEnded {
		w.frame++
		w.clock.Advance(g.frameTime)
		togglePause(w, in)

		if w.state.live() {
			scroll(w)
			move(w, in)
			collide(w)
		}
	}
	regenerateMarks(w)

	return core.StepResult{State: g.State()}
}

// State returns the frontend-facing summary of the run.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.score,
		Paused:   w.state == StatePaused,
		Crashing: w.state == StateCrashing,
		GameOver: w.state == StateEnded,
	}
}

// RunState returns the state machine position of the run.
func (g *Game) RunState() State {
	return g.world.state
}
