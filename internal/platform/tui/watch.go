package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/desert-runner/internal/core"
	"github.com/vovakirdan/desert-runner/internal/replay"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

const maxPlaybackSpeed = 8

// WatchKeyMap defines the key bindings for replay playback.
type WatchKeyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultWatchKeyMap returns default key bindings.
func DefaultWatchKeyMap() WatchKeyMap {
	return WatchKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause playback"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WatchModel plays a stored replay back at its recorded tick rate.
type WatchModel struct {
	id       int64
	player   *replay.Player
	screen   *core.Screen
	tickRate int
	speed    int // Recorded frames per tick
	paused   bool
	quitting bool
	keys     WatchKeyMap
	help     help.Model
}

// NewWatchModel prepares playback of r on a width x height terminal.
func NewWatchModel(r storage.Replay, width, height int) (WatchModel, error) {
	player, err := replay.NewPlayer(r)
	if err != nil {
		return WatchModel{}, err
	}
	tickRate := r.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	h := help.New()
	h.Width = width
	return WatchModel{
		id:       r.ID,
		player:   player,
		screen:   core.NewScreen(width, core.Max(height-1, 1)),
		tickRate: tickRate,
		speed:    1,
		keys:     DefaultWatchKeyMap(),
		help:     h,
	}, nil
}

// Init starts the playback loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages for playback.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Faster):
			m.speed = core.Min(m.speed*2, maxPlaybackSpeed)
		case key.Matches(msg, m.keys.Slower):
			m.speed = core.Max(m.speed/2, 1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			for i := 0; i < m.speed && m.player.Step(); i++ {
			}
		}
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

// View renders the replayed frame with a status line.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.player.Game().Render(m.screen)

	played, total := m.player.Progress()
	status := fmt.Sprintf(" Replay #%d  %d/%d  x%d ", m.id, played, total, m.speed)
	switch {
	case m.player.Done():
		status += "[end] "
	case m.paused:
		status += "[paused] "
	}
	m.screen.DrawText(m.screen.Width()-len(status)-1, 0, status, core.ColorText)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Watch plays a replay in the terminal until the user quits.
func Watch(r storage.Replay, width, height int) error {
	model, err := NewWatchModel(r, width, height)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
