package desert

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/desert-runner/internal/clock"
	"github.com/vovakirdan/desert-runner/internal/config"
)

// World is the simulation context: every piece of mutable run state lives
// here and is passed explicitly to each update step.
type World struct {
	cfg     config.DesertConfig
	rng     *rand.Rand
	clock   *clock.Scheduler
	spawner *Spawner

	Store
	vehicle Vehicle

	state     State
	pauseHeld bool // Pause control was down last frame
	crashed   bool // Set once by the first obstacle hit
	score     int
	scoreText string
	finalText string

	phase int        // Scroll phase in [0, world height)
	marks []RoadMark // Rebuilt from phase every frame

	dustTimer int
	frame     uint64
}

// newWorld builds a fresh run and starts its spawn timers.
func newWorld(cfg config.DesertConfig, seed int64) *World {
	w := &World{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		clock: clock.New(),
		vehicle: Vehicle{
			X: cfg.Vehicle.StartX,
			Y: cfg.Vehicle.StartY,
			W: cfg.Vehicle.Width,
			H: cfg.Vehicle.Height,
		},
		state: StateRunning,
	}
	w.setScoreText()
	w.spawner = startSpawner(w)
	regenerateMarks(w)
	return w
}

// addScore credits points while the run is still Running. Score is frozen
// from the moment of a crash.
func (w *World) addScore(points int) {
	if points <= 0 || w.state != StateRunning {
		return
	}
	w.score += points
	w.setScoreText()
}

func (w *World) setScoreText() {
	w.scoreText = fmt.Sprintf("Score: %d", w.score)
}

// randRange returns a uniform integer in [lo, hi].
func (w *World) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
