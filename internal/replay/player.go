package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/desert-runner/internal/config"
	"github.com/vovakirdan/desert-runner/internal/core"
	"github.com/vovakirdan/desert-runner/internal/games/desert"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

// ErrScoreMismatch is returned by Verify when re-simulation does not
// reproduce the recorded score.
var ErrScoreMismatch = errors.New("replay: score mismatch")

// Player feeds a recorded input stream back into a fresh game.
type Player struct {
	game  *desert.Game
	masks []uint8
	pos   int
}

// NewPlayer rebuilds the recorded run from its stored seed, tick rate and
// configuration. No frame has been stepped yet.
func NewPlayer(r storage.Replay) (*Player, error) {
	cfg, err := config.ParseDesert(r.Config)
	if err != nil {
		return nil, fmt.Errorf("replay: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	spans, err := Decode(r.Inputs)
	if err != nil {
		return nil, err
	}
	masks, err := Expand(spans, r.Frames)
	if err != nil {
		return nil, err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = r.Seed
	if r.TickRate > 0 {
		runtime.TickRate = r.TickRate
	}

	game := desert.New(cfg)
	game.Reset(runtime)
	return &Player{game: game, masks: masks}, nil
}

// Game returns the game being replayed, for rendering.
func (p *Player) Game() *desert.Game {
	return p.game
}

// Step advances the game by the next recorded frame. It reports false once
// the recording is exhausted.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	p.game.Step(core.InputFrameFromMask(p.masks[p.pos]))
	p.pos++
	return true
}

// Done reports whether every recorded frame has been played.
func (p *Player) Done() bool {
	return p.pos >= len(p.masks)
}

// Progress returns the number of frames played and the total.
func (p *Player) Progress() (int, int) {
	return p.pos, len(p.masks)
}

// Simulate re-runs a replay headlessly and returns the final snapshot.
func Simulate(r storage.Replay) (desert.Snapshot, error) {
	p, err := NewPlayer(r)
	if err != nil {
		return desert.Snapshot{}, err
	}
	for p.Step() {
	}
	return p.game.Snapshot(), nil
}

// Verify re-runs a replay and checks that it reproduces the recorded score.
func Verify(r storage.Replay) (desert.Snapshot, error) {
	snap, err := Simulate(r)
	if err != nil {
		return snap, err
	}
	if snap.Score != r.Score {
		return snap, fmt.Errorf("%w: recorded %d, simulated %d", ErrScoreMismatch, r.Score, snap.Score)
	}
	return snap, nil
}
