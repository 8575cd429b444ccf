package replay

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/desert-runner/internal/config"
	"github.com/vovakirdan/desert-runner/internal/core"
	"github.com/vovakirdan/desert-runner/internal/games/desert"
)

func TestEncodeDecode(t *testing.T) {
	spans := []Span{{Mask: 1, Count: 5}, {Mask: 0, Count: 200}, {Mask: 4, Count: 0}, {Mask: 2, Count: 1}}

	data := Encode(spans)
	want := []byte{0x01, 0x05, 0x00, 0xC8, 0x01, 0x02, 0x01}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode() = %x, want %x", data, want)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	expected := []Span{{Mask: 1, Count: 5}, {Mask: 0, Count: 200}, {Mask: 2, Count: 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Decode() = %v, want %v", got, expected)
	}
}

func TestDecodeEmpty(t *testing.T) {
	spans, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) failed: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %v", spans)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"missing count", []byte{0x01}},
		{"truncated varint", []byte{0x01, 0x80}},
		{"zero count", []byte{0x01, 0x00}},
		{"trailing mask", []byte{0x01, 0x02, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, ErrMalformedLog) {
				t.Errorf("expected ErrMalformedLog, got %v", err)
			}
		})
	}
}

func TestCompressExpand(t *testing.T) {
	masks := []uint8{0, 0, 0, 1, 1, 2, 0, 0}
	spans := Compress(masks)
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %v", spans)
	}
	got, err := Expand(spans, len(masks))
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	if !reflect.DeepEqual(got, masks) {
		t.Errorf("Expand(Compress(m)) != m")
	}
}

func TestExpandRejectsFrameMismatch(t *testing.T) {
	tests := []struct {
		name   string
		spans  []Span
		frames int
	}{
		{"too few", []Span{{Mask: 1, Count: 3}}, 4},
		{"too many", []Span{{Mask: 1, Count: 3}, {Mask: 0, Count: 2}}, 4},
		{"huge count", []Span{{Mask: 0, Count: 1 << 62}}, 10},
		{"overflowing sum", []Span{{Mask: 0, Count: 5}, {Mask: 1, Count: ^uint64(0)}}, 10},
		{"negative frames", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Expand(tt.spans, tt.frames); !errors.Is(err, ErrMalformedLog) {
				t.Errorf("expected ErrMalformedLog, got %v", err)
			}
		})
	}
}

func TestRecorderSpans(t *testing.T) {
	rec := NewRecorder(config.DefaultDesertConfig(), core.DefaultConfig(), "test")
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)

	rec.Record(left)
	rec.Record(left)
	rec.Record(core.NewInputFrame())
	rec.Record(quit) // Frontend-only, recorded as an empty frame

	if rec.Frames() != 4 {
		t.Errorf("expected 4 frames, got %d", rec.Frames())
	}
	want := []Span{{Mask: 1, Count: 2}, {Mask: 0, Count: 2}}
	if got := Compress(rec.masks); !reflect.DeepEqual(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

// playRun drives a live game with a scripted input pattern and records it.
func playRun(t *testing.T, seed int64, frames int) (*desert.Game, *Recorder) {
	t.Helper()
	cfg := config.DefaultDesertConfig()
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}

	g := desert.New(cfg)
	g.Reset(runtime)
	rec := NewRecorder(cfg, runtime, "test")

	for i := 0; i < frames; i++ {
		in := core.NewInputFrame()
		switch (i / 25) % 4 {
		case 0:
			in.Set(core.ActionLeft)
		case 2:
			in.Set(core.ActionRight)
		}
		if i == 100 || i == 130 {
			in.Set(core.ActionPause)
		}
		g.Step(in)
		rec.Record(in)
	}
	return g, rec
}

func TestReplayReproducesRun(t *testing.T) {
	g, rec := playRun(t, 2024, 1500)

	r, err := rec.Finish(g.State().Score)
	if err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}
	if r.Frames != 1500 || r.Seed != 2024 || r.TickRate != 60 || r.Source != "test" {
		t.Errorf("unexpected replay header %+v", r)
	}

	snap, err := Verify(r)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if snap != g.Snapshot() {
		t.Errorf("replayed snapshot differs:\nlive   %+v\nreplay %+v", g.Snapshot(), snap)
	}
}

func TestVerifyDetectsScoreMismatch(t *testing.T) {
	g, rec := playRun(t, 7, 300)
	r, err := rec.Finish(g.State().Score + 10)
	if err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}

	if _, err := Verify(r); !errors.Is(err, ErrScoreMismatch) {
		t.Errorf("expected ErrScoreMismatch, got %v", err)
	}
}

func TestPlayerRejectsFrameCountMismatch(t *testing.T) {
	g, rec := playRun(t, 7, 50)
	r, err := rec.Finish(g.State().Score)
	if err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}
	r.Frames = 49

	if _, err := NewPlayer(r); !errors.Is(err, ErrMalformedLog) {
		t.Errorf("expected ErrMalformedLog, got %v", err)
	}
}

func TestPlayerRejectsOversizedSpan(t *testing.T) {
	g, rec := playRun(t, 7, 10)
	r, err := rec.Finish(g.State().Score)
	if err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}
	// A single span whose uvarint count is close to 2^63.
	r.Inputs = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}

	if _, err := NewPlayer(r); !errors.Is(err, ErrMalformedLog) {
		t.Errorf("expected ErrMalformedLog, got %v", err)
	}
}

func TestPlayerRejectsInvalidConfig(t *testing.T) {
	g, rec := playRun(t, 7, 10)
	r, err := rec.Finish(g.State().Score)
	if err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}
	r.Config = []byte("scroll:\n  speed: -1\n")

	if _, err := NewPlayer(r); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPlayerProgress(t *testing.T) {
	g, rec := playRun(t, 1, 30)
	r, err := rec.Finish(g.State().Score)
	if err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}

	p, err := NewPlayer(r)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		p.Step()
	}
	if done, total := p.Progress(); done != 10 || total != 30 {
		t.Errorf("progress = %d/%d, want 10/30", done, total)
	}
	for p.Step() {
	}
	if !p.Done() {
		t.Errorf("player should be done")
	}
	if p.Step() {
		t.Errorf("Step after the end should report false")
	}
}
