package desert

import (
	"github.com/vovakirdan/desert-runner/internal/core"
)

// Body is a sprite positioned by its centre that falls at a constant speed.
type Body struct {
	X, Y int // Centre position in world pixels
	W, H int // Display size
	VY   int // Downward pixels per frame
}

// Bounds returns the collision rectangle of the body.
func (b Body) Bounds() core.Rect {
	return core.CenteredRect(b.X, b.Y, b.W, b.H)
}

// Obstacle is a cactus: running into one ends the run.
type Obstacle struct {
	Body
}

// Pickup is a booster: collecting one grants a bonus.
type Pickup struct {
	Body
}

// Particle is a puff of dust that disappears when its life runs out.
type Particle struct {
	X, Y int // Centre position
	Size int // Diameter
	Life int // Remaining frames
	VY   int
}

// Bounds returns the square enclosing the particle.
func (p Particle) Bounds() core.Rect {
	return core.CenteredRect(p.X, p.Y, p.Size, p.Size)
}

// Vehicle is the player's car. Only steering input moves it.
type Vehicle struct {
	X, Y int
	W, H int
}

// Bounds returns the collision rectangle of the vehicle.
func (v Vehicle) Bounds() core.Rect {
	return core.CenteredRect(v.X, v.Y, v.W, v.H)
}

// RoadMark is one road-divider dash. Marks are rebuilt every frame and
// carry no identity.
type RoadMark struct {
	X, Y int // Centre position
	W, H int
}

// Bounds returns the rectangle covered by the mark.
func (m RoadMark) Bounds() core.Rect {
	return core.CenteredRect(m.X, m.Y, m.W, m.H)
}
