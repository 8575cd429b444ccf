package desert

import (
	"github.com/vovakirdan/desert-runner/internal/clock"
	"github.com/vovakirdan/desert-runner/internal/config"
)

// Spawner owns the two periodic spawn timers. They run on the world's
// simulated clock, independent of the frame update.
type Spawner struct {
	clock     *clock.Scheduler
	obstacles clock.TaskID
	pickups   clock.TaskID
	stopped   bool
}

func startSpawner(w *World) *Spawner {
	s := &Spawner{clock: w.clock}
	s.obstacles = w.clock.Every(millis(w.cfg.Obstacles.PeriodMs), func() {
		spawnObstacle(w)
	})
	s.pickups = w.clock.Every(millis(w.cfg.Pickups.PeriodMs), func() {
		spawnPickup(w)
	})
	return s
}

// Stop cancels both timers. Safe to call more than once.
func (s *Spawner) Stop() {
	if s.stopped {
		return
	}
	s.clock.Cancel(s.obstacles)
	s.clock.Cancel(s.pickups)
	s.stopped = true
}

func spawnObstacle(w *World) {
	if !w.state.live() {
		return
	}
	w.Obstacles.Add(Obstacle{Body: spawnBody(w, w.cfg.Obstacles)})
}

func spawnPickup(w *World) {
	if !w.state.live() {
		return
	}
	w.Pickups.Add(Pickup{Body: spawnBody(w, w.cfg.Pickups)})
}

// spawnBody places a new entity above the top edge at a random column that
// keeps its width inside the play area.
func spawnBody(w *World, e config.EntityConfig) Body {
	return Body{
		X:  w.randRange(0, w.cfg.World.Width-e.Width),
		Y:  e.SpawnY,
		W:  e.Width,
		H:  e.Height,
		VY: w.cfg.Scroll.Speed * e.SpeedFactor,
	}
}
