package desert

import (
	"github.com/vovakirdan/desert-runner/internal/core"
)

// Visual characters for rendering
const (
	SandChar     = '·'
	MarkChar     = '┃'
	DustChar     = '░'
	BoosterChar  = '◆'
	CactusChar   = '▓'
	VehicleChar  = '█'
	WheelChar    = '▀'
	sandInterval = 7 // Columns between sand grains in the background pattern
)

// Render draws the current frame into dst, scaling the world onto whatever
// grid the terminal offers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.View()
	sw, sh := dst.Width(), dst.Height()
	if sw <= 0 || sh <= 0 || v.Width <= 0 || v.Height <= 0 {
		return
	}
	scale := func(r core.Rect) core.Rect {
		return r.Scale(v.Width, v.Height, sw, sh)
	}

	drawSand(dst, v.Phase*sh/v.Height)

	for _, m := range v.Marks {
		dst.DrawRect(scale(m.Bounds()), MarkChar, core.ColorRoad)
	}
	for _, p := range v.Particles {
		dst.DrawRect(scale(p.Bounds()), DustChar, core.ColorDust)
	}
	for _, r := range v.Pickups {
		dst.DrawRect(scale(r), BoosterChar, core.ColorBooster)
	}
	for _, r := range v.Obstacles {
		dst.DrawRect(scale(r), CactusChar, core.ColorCactus)
	}
	drawVehicle(dst, scale(v.Vehicle))

	// HUD
	dst.DrawText(2, 0, " "+v.ScoreText+" ", core.ColorText)

	switch v.State {
	case StatePaused:
		drawCenteredMessage(dst, "Paused", "Press P to resume")
	case StateCrashing:
		drawCenteredMessage(dst, v.FinalText, "")
	case StateEnded:
		drawCenteredMessage(dst, v.FinalText, "Press R to restart")
	}
}

// drawSand fills the background with a sparse grain pattern that slides
// down with the scroll offset.
func drawSand(dst *core.Screen, offset int) {
	for y := 0; y < dst.Height(); y++ {
		row := y - offset
		for x := 0; x < dst.Width(); x++ {
			if (x+row*3)%sandInterval == 0 {
				dst.SetColored(x, y, SandChar, core.ColorSand)
			}
		}
	}
}

// drawVehicle renders the car body with a row of wheels under it when
// there is room.
func drawVehicle(dst *core.Screen, r core.Rect) {
	if r.H > 1 {
		body := core.NewRect(r.X, r.Y, r.W, r.H-1)
		dst.DrawRect(body, VehicleChar, core.ColorVehicle)
		dst.DrawRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1), WheelChar, core.ColorVehicle)
		return
	}
	dst.DrawRect(r, VehicleChar, core.ColorVehicle)
}

// drawCenteredMessage draws a message box in the center of the screen.
// An empty subtitle shrinks the box to a single line of text.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorAlert)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle, core.ColorText)
	}
}
