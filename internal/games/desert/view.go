package desert

import (
	"time"

	"github.com/vovakirdan/desert-runner/internal/core"
)

// View is a read-only copy of everything a frontend needs to draw a frame.
type View struct {
	Width, Height int
	Phase         int // Background scroll offset
	Vehicle       core.Rect
	Obstacles     []core.Rect
	Pickups       []core.Rect
	Particles     []Particle
	Marks         []RoadMark
	ScoreText     string
	FinalText     string // Empty until the crash
	Paused        bool
	State         State
}

// View captures the current frame.
func (g *Game) View() View {
	w := g.world
	v := View{
		Width:     w.cfg.World.Width,
		Height:    w.cfg.World.Height,
		Phase:     w.phase,
		Vehicle:   w.vehicle.Bounds(),
		Obstacles: make([]core.Rect, 0, w.Obstacles.Len()),
		Pickups:   make([]core.Rect, 0, w.Pickups.Len()),
		Particles: append([]Particle(nil), w.Particles.Items()...),
		Marks:     append([]RoadMark(nil), w.marks...),
		ScoreText: w.scoreText,
		FinalText: w.finalText,
		Paused:    w.state == StatePaused,
		State:     w.state,
	}
	for _, o := range w.Obstacles.Items() {
		v.Obstacles = append(v.Obstacles, o.Bounds())
	}
	for _, p := range w.Pickups.Items() {
		v.Pickups = append(v.Pickups, p.Bounds())
	}
	return v
}

// Snapshot captures the run for determinism checks and replay verification.
type Snapshot struct {
	Frame     uint64
	SimTime   time.Duration
	State     State
	Score     int
	VehicleX  int
	Phase     int
	Obstacles int
	Pickups   int
	Particles int
	Marks     int
}

// Snapshot returns the current run snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	return Snapshot{
		Frame:     w.frame,
		SimTime:   w.clock.Now(),
		State:     w.state,
		Score:     w.score,
		VehicleX:  w.vehicle.X,
		Phase:     w.phase,
		Obstacles: w.Obstacles.Len(),
		Pickups:   w.Pickups.Len(),
		Particles: w.Particles.Len(),
		Marks:     len(w.marks),
	}
}
