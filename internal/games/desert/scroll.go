package desert

import (
	"github.com/vovakirdan/desert-runner/internal/config"
)

// scroll advances the scroll phase, wrapping at the world height. The
// background offset is the phase itself.
func scroll(w *World) {
	w.phase += w.cfg.Scroll.Speed
	if w.phase >= w.cfg.World.Height {
		w.phase = 0
	}
}

// regenerateMarks discards last frame's marks and rebuilds them from the
// current phase. It runs every frame whatever the state.
func regenerateMarks(w *World) {
	w.marks = appendRoadMarks(w.marks[:0], w.phase, w.cfg.World.Height, w.cfg.Scroll)
}

// RoadMarks returns the road-divider dashes visible for the given scroll
// phase. Candidate slots span one screen above to two screens below the
// top edge; only marks whose centre lies in [0, screenH] are kept. The
// result depends on nothing but its arguments.
func RoadMarks(phase, screenH int, sc config.ScrollConfig) []RoadMark {
	return appendRoadMarks(nil, phase, screenH, sc)
}

func appendRoadMarks(dst []RoadMark, phase, screenH int, sc config.ScrollConfig) []RoadMark {
	step := sc.MarkHeight + sc.MarkSpacing
	if step <= 0 {
		return dst
	}
	for i := -screenH; i < 2*screenH; i += step {
		y := phase + i - screenH
		if y < 0 || y > screenH {
			continue
		}
		dst = append(dst, RoadMark{X: sc.MarkX, Y: y, W: sc.MarkWidth, H: sc.MarkHeight})
	}
	return dst
}
