package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-runner/internal/config"
	"github.com/vovakirdan/desert-runner/internal/core"
	"github.com/vovakirdan/desert-runner/internal/games/desert"
	"github.com/vovakirdan/desert-runner/internal/replay"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

// keyHold is how long a control counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const keyHold = 150 * time.Millisecond

// maxQueuedPauses bounds pause presses waiting for delivery at low tick rates.
const maxQueuedPauses = 2

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a terminal run.
type Options struct {
	Config  config.DesertConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Nil disables replay recording
	Logger  *log.Logger
	Source  string // Frontend name stored with each replay
}

// Model is the Bubble Tea model for one player's desert runs.
type Model struct {
	opts       Options
	game       *desert.Game
	screen     *core.Screen
	recorder   *replay.Recorder
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	held       map[core.Action]int // Frames left before the control is released
	holdFrames int
	pauses     int  // Pause presses not yet delivered to the game
	pauseDown  bool // Pause was down on the last stepped frame
	gameState  core.GameState
	quitting   bool
	saved      bool // Whether the replay of the current run has been stored
}

// NewModel creates a model and starts the first run.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:       opts,
		game:       desert.New(opts.Config),
		screen:     core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-1, 1)),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		held:       make(map[core.Action]int),
		holdFrames: core.Max(int(keyHold*time.Duration(opts.Runtime.TickRate)/time.Second), 1),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.reset()
	return m
}

// reset starts a run with the current runtime config.
func (m *Model) reset() {
	m.game.Reset(m.opts.Runtime)
	m.gameState = m.game.State()
	m.saved = false
	clear(m.held)
	m.pauses, m.pauseDown = 0, false
	if m.opts.Store != nil {
		m.recorder = replay.NewRecorder(m.opts.Config, m.opts.Runtime, m.opts.Source)
	}
	m.logger.Debug("run started", "seed", m.opts.Runtime.Seed, "fps", m.opts.Runtime.TickRate)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		delete(m.held, core.ActionRight)
		m.held[core.ActionLeft] = m.holdFrames
	case core.ActionRight:
		delete(m.held, core.ActionLeft)
		m.held[core.ActionRight] = m.holdFrames
	case core.ActionPause:
		// Each press becomes one down frame followed by an up frame, so a
		// quick double tap toggles twice.
		m.pauses = core.Min(m.pauses+1, maxQueuedPauses)
	case core.ActionRestart:
		if m.gameState.GameOver {
			// Reset seed for new run
			m.opts.Runtime.Seed = time.Now().UnixNano()
			m.reset()
		}
	}

	return m, nil
}

// handleResize keeps the run going; the game scales to any grid. The
// bottom row is reserved for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation with the controls currently held.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	in := core.NewInputFrame()
	for a, n := range m.held {
		if n > 0 {
			in.Set(a)
		}
	}
	if m.pauses > 0 && !m.pauseDown {
		in.Set(core.ActionPause)
		m.pauses--
		m.pauseDown = true
	} else {
		m.pauseDown = false
	}

	result := m.game.Step(in)
	m.gameState = result.State
	if m.recorder != nil {
		m.recorder.Record(in)
	}

	for a := range m.held {
		m.held[a]--
		if m.held[a] <= 0 {
			delete(m.held, a)
		}
	}

	if m.gameState.GameOver && !m.saved {
		m.logger.Info("run ended", "score", m.gameState.Score, "seed", m.opts.Runtime.Seed)
		m.saveReplay()
		m.saved = true
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveReplay stores the finished run. Failures are logged and the session
// carries on.
func (m *Model) saveReplay() {
	if m.recorder == nil || m.opts.Store == nil {
		return
	}
	r, err := m.recorder.Finish(m.gameState.Score)
	if err != nil {
		m.logger.Error("cannot package replay", "error", err)
		return
	}
	id, err := m.opts.Store.SaveReplay(r)
	if err != nil {
		m.logger.Error("cannot save replay", "error", err)
		return
	}
	m.logger.Info("replay saved", "id", id, "frames", r.Frames, "score", r.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
