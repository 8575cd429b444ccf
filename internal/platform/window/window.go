// Package window runs the desert runner in a desktop window with ebiten.
// Unlike a terminal, a window reports real key state, so steering and the
// pause control are read as held keys every frame.
package window

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/desert-runner/internal/config"
	"github.com/vovakirdan/desert-runner/internal/core"
	"github.com/vovakirdan/desert-runner/internal/games/desert"
	"github.com/vovakirdan/desert-runner/internal/replay"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	sandColor     = color.RGBA{0xED, 0xC9, 0xAF, 0xFF}
	duneColor     = color.RGBA{0xE0, 0xB8, 0x98, 0xFF}
	markColor     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	cactusColor   = color.RGBA{0x2E, 0x8B, 0x57, 0xFF}
	boosterColor  = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	vehicleColor  = color.RGBA{0xC0, 0x39, 0x2B, 0xFF}
	windowColor   = color.RGBA{0x34, 0x49, 0x5E, 0xFF}
	overlayColor  = color.RGBA{0x00, 0x00, 0x00, 0x99}
	dustBaseColor = color.RGBA{0xA0, 0x7A, 0x55, 0xFF}
)

// Options configures a windowed run.
type Options struct {
	Config  config.DesertConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Nil disables replay recording
	Logger  *log.Logger
}

// Game adapts a desert run to ebiten's Game interface.
type Game struct {
	opts     Options
	game     *desert.Game
	recorder *replay.Recorder
	logger   *log.Logger
	over     bool // Current run has ended and its replay was handled
}

// New creates the window adapter and starts the first run.
func New(opts Options) *Game {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	opts.Runtime.ScreenW = opts.Config.World.Width
	opts.Runtime.ScreenH = opts.Config.World.Height
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		opts:   opts,
		game:   desert.New(opts.Config),
		logger: logger,
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.game.Reset(g.opts.Runtime)
	g.over = false
	if g.opts.Store != nil {
		g.recorder = replay.NewRecorder(g.opts.Config, g.opts.Runtime, "window")
	}
	g.logger.Debug("run started", "seed", g.opts.Runtime.Seed)
}

// readInput samples the keyboard. Only the simulation controls go into
// the frame; restart and quit are handled by Update.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

// Update advances the run by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.over {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.opts.Runtime.Seed = time.Now().UnixNano()
			g.reset()
		}
		return nil
	}

	in := readInput()
	state := g.game.Step(in).State
	if g.recorder != nil {
		g.recorder.Record(in)
	}

	if state.GameOver {
		g.over = true
		g.logger.Info("run ended", "score", state.Score, "seed", g.opts.Runtime.Seed)
		g.saveReplay(state.Score)
	}
	return nil
}

func (g *Game) saveReplay(score int) {
	if g.recorder == nil || g.opts.Store == nil {
		return
	}
	r, err := g.recorder.Finish(score)
	if err != nil {
		g.logger.Error("cannot package replay", "error", err)
		return
	}
	id, err := g.opts.Store.SaveReplay(r)
	if err != nil {
		g.logger.Error("cannot save replay", "error", err)
		return
	}
	g.logger.Info("replay saved", "id", id, "frames", r.Frames, "score", r.Score)
}

// Draw renders the current frame in world coordinates.
func (g *Game) Draw(screen *ebiten.Image) {
	drawView(screen, g.game.View())
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Config.World.Width, g.opts.Config.World.Height
}

func drawView(screen *ebiten.Image, v desert.View) {
	screen.Fill(sandColor)
	drawDunes(screen, v)

	for _, m := range v.Marks {
		fillRect(screen, m.Bounds(), markColor)
	}
	for _, p := range v.Particles {
		c := dustBaseColor
		c.A = uint8(core.Clamp(p.Life*6, 40, 200))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size)/2, c, true)
	}
	for _, r := range v.Pickups {
		cx, cy := r.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.W)/2, boosterColor, true)
	}
	for _, r := range v.Obstacles {
		drawCactus(screen, r)
	}
	drawVehicle(screen, v.Vehicle)

	ebitenutil.DebugPrintAt(screen, v.ScoreText, 16, 16)

	switch v.State {
	case desert.StatePaused:
		drawBanner(screen, v, "Paused", "Press P to resume")
	case desert.StateCrashing:
		drawBanner(screen, v, v.FinalText, "")
	case desert.StateEnded:
		drawBanner(screen, v, v.FinalText, "Press R to restart, Q to quit")
	}
}

// drawDunes paints darker sand bands that scroll with the phase.
func drawDunes(screen *ebiten.Image, v desert.View) {
	const band, gap = 24, 96
	for y := v.Phase%gap - gap; y < v.Height; y += gap {
		vector.DrawFilledRect(screen, 0, float32(y), float32(v.Width), band, duneColor, false)
	}
}

func drawCactus(screen *ebiten.Image, r core.Rect) {
	trunkW := r.W / 3
	trunk := core.NewRect(r.X+(r.W-trunkW)/2, r.Y, trunkW, r.H)
	fillRect(screen, trunk, cactusColor)
	fillRect(screen, core.NewRect(r.X, r.Y+r.H/4, trunk.X-r.X, r.H/6), cactusColor)
	fillRect(screen, core.NewRect(r.X, r.Y+r.H/8, r.W/8, r.H/4), cactusColor)
	fillRect(screen, core.NewRect(trunk.Right(), r.Y+r.H/2, r.Right()-trunk.Right(), r.H/6), cactusColor)
	fillRect(screen, core.NewRect(r.Right()-r.W/8, r.Y+r.H/3, r.W/8, r.H/4), cactusColor)
}

func drawVehicle(screen *ebiten.Image, r core.Rect) {
	fillRect(screen, r, vehicleColor)
	fillRect(screen, core.NewRect(r.X+r.W/5, r.Y+r.H/6, r.W*3/5, r.H/4), windowColor)
}

func drawBanner(screen *ebiten.Image, v desert.View, title, subtitle string) {
	h := 2*glyphH + 16
	if subtitle == "" {
		h = glyphH + 16
	}
	y := (v.Height - h) / 2
	vector.DrawFilledRect(screen, 0, float32(y), float32(v.Width), float32(h), overlayColor, false)
	ebitenutil.DebugPrintAt(screen, title, (v.Width-len(title)*glyphW)/2, y+8)
	if subtitle != "" {
		ebitenutil.DebugPrintAt(screen, subtitle, (v.Width-len(subtitle)*glyphW)/2, y+8+glyphH)
	}
}

func fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := New(opts)
	ebiten.SetWindowSize(g.opts.Config.World.Width, g.opts.Config.World.Height)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.Runtime.TickRate)
	return ebiten.RunGame(g)
}
