package desert

import (
	"github.com/vovakirdan/desert-runner/internal/core"
)

// move advances everything that moves during a live frame: steering and the
// dust trail, particles, then obstacles and pickups with cleanup of whatever
// left the screen. The car stays steerable through the crash window.
func move(w *World, in core.InputFrame) {
	steer(w, in)
	advanceParticles(w)
	advanceBodies(w)
}

// steer applies lateral input and lays dust while a steering control is held.
func steer(w *World, in core.InputFrame) {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)

	vc := w.cfg.Vehicle
	if left {
		w.vehicle.X -= vc.Step
	}
	if right {
		w.vehicle.X += vc.Step
	}
	w.vehicle.X = core.Clamp(w.vehicle.X, vc.MinX, vc.MaxX)

	if !left && !right {
		return
	}
	w.dustTimer++
	if w.dustTimer >= w.cfg.Dust.TrailEvery {
		d := w.cfg.Dust
		spawnDust(w, w.vehicle.X, w.vehicle.Y+d.TrailOffsetY, d.TrailMinSize, d.TrailMaxSize, d.TrailLife)
		w.dustTimer = 0
	}
}

// spawnDust adds one particle with a random size in [minSize, maxSize].
func spawnDust(w *World, x, y, minSize, maxSize, life int) {
	w.Particles.Add(Particle{
		X:    x,
		Y:    y,
		Size: w.randRange(minSize, maxSize),
		Life: life,
		VY:   w.cfg.Scroll.Speed,
	})
}

func advanceParticles(w *World) {
	w.Particles.ForEach(func(p *Particle) {
		p.Y += p.VY
		p.Life--
	})
	w.Particles.RemoveIf(func(p *Particle) bool {
		return p.Life <= 0
	})
}

// advanceBodies moves obstacles and pickups down. Every obstacle that
// leaves the bottom edge was survived and is worth its reward; pickups that
// leave were missed.
func advanceBodies(w *World) {
	bottom := w.cfg.World.Height

	w.Obstacles.ForEach(func(o *Obstacle) {
		o.Y += o.VY
	})
	survived := w.Obstacles.RemoveIf(func(o *Obstacle) bool {
		return o.Y > bottom
	})
	w.addScore(survived * w.cfg.Obstacles.Reward)

	w.Pickups.ForEach(func(p *Pickup) {
		p.Y += p.VY
	})
	w.Pickups.RemoveIf(func(p *Pickup) bool {
		return p.Y > bottom
	})
}
