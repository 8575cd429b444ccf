package desert

import (
	"fmt"
)

// collide tests the vehicle against every obstacle and pickup. Only a
// Running world reacts: once crashed, further overlaps are ignored. Several
// cacti overlapping in the same frame still count as one crash.
func collide(w *World) {
	if w.state != StateRunning {
		return
	}

	vb := w.vehicle.Bounds()
	hit := false
	w.Obstacles.ForEach(func(o *Obstacle) {
		if !hit && vb.Intersects(o.Bounds()) {
			hit = true
		}
	})
	if hit {
		crash(w)
		return
	}

	collected := w.Pickups.RemoveIf(func(p *Pickup) bool {
		return vb.Intersects(p.Bounds())
	})
	w.addScore(collected * w.cfg.Pickups.Reward)
}

// crash starts the termination sequence: a dust burst around the vehicle,
// the final score text, and a delayed freeze.
func crash(w *World) {
	if w.crashed {
		return
	}
	w.crashed = true
	w.state = StateCrashing

	d := w.cfg.Dust
	for i := 0; i < d.BurstCount; i++ {
		x := w.vehicle.X + w.randRange(-d.BurstSpread, d.BurstSpread)
		y := w.vehicle.Y + d.BurstOffsetY + w.randRange(-d.BurstSpread, d.BurstSpread)
		spawnDust(w, x, y, d.BurstMinSize, d.BurstMaxSize, d.BurstLife)
	}

	w.finalText = fmt.Sprintf("Game Over! Final Score: %d", w.score)
	w.clock.After(millis(w.cfg.Crash.FreezeDelayMs), func() {
		endRun(w)
	})
}
