package replay

import (
	"fmt"

	"github.com/vovakirdan/desert-runner/internal/config"
	"github.com/vovakirdan/desert-runner/internal/core"
	"github.com/vovakirdan/desert-runner/internal/storage"
)

// Recorder captures the input stream of one run as it is played.
type Recorder struct {
	cfg     config.DesertConfig
	runtime core.RuntimeConfig
	source  string
	masks   []uint8
}

// NewRecorder starts recording a run that was reset with runtime.
func NewRecorder(cfg config.DesertConfig, runtime core.RuntimeConfig, source string) *Recorder {
	return &Recorder{cfg: cfg, runtime: runtime, source: source}
}

// Record appends the input of one simulated frame. Call it once per Step,
// with the same frame that was passed to Step.
func (r *Recorder) Record(in core.InputFrame) {
	r.masks = append(r.masks, in.Mask())
}

// Frames returns how many frames have been recorded.
func (r *Recorder) Frames() int {
	return len(r.masks)
}

// Finish packages the recording with the final score for storage.
func (r *Recorder) Finish(score int) (storage.Replay, error) {
	cfgYAML, err := config.MarshalDesert(r.cfg)
	if err != nil {
		return storage.Replay{}, fmt.Errorf("replay: encode config: %w", err)
	}
	return storage.Replay{
		Seed:     r.runtime.Seed,
		TickRate: r.runtime.TickRate,
		Config:   cfgYAML,
		Inputs:   Encode(Compress(r.masks)),
		Frames:   len(r.masks),
		Score:    score,
		Source:   r.source,
	}, nil
}
