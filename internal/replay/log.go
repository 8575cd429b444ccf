// Package replay records desert runs and re-simulates them.
//
// A run is fully determined by its seed, tick rate, configuration and the
// per-frame input stream, so a replay stores only those. Inputs are kept as
// one bitmask per frame (see core.InputFrame.Mask), run-length encoded
// because players hold the same keys for long stretches.
package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrMalformedLog is returned when an encoded input log cannot be decoded.
var ErrMalformedLog = errors.New("replay: malformed input log")

// Span is a stretch of consecutive frames with identical input.
type Span struct {
	Mask  uint8
	Count uint64
}

// Encode compresses spans as a sequence of (mask byte, uvarint count)
// pairs. Zero-length spans are skipped.
func Encode(spans []Span) []byte {
	out := make([]byte, 0, len(spans)*2)
	var buf [binary.MaxVarintLen64]byte
	for _, s := range spans {
		if s.Count == 0 {
			continue
		}
		out = append(out, s.Mask)
		n := binary.PutUvarint(buf[:], s.Count)
		out = append(out, buf[:n]...)
	}
	return out
}

// Decode parses a log produced by Encode.
func Decode(data []byte) ([]Span, error) {
	var spans []Span
	for off := 0; off < len(data); {
		mask := data[off]
		off++
		count, n := binary.Uvarint(data[off:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad count at byte %d", ErrMalformedLog, off)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: empty span at byte %d", ErrMalformedLog, off)
		}
		off += n
		spans = append(spans, Span{Mask: mask, Count: count})
	}
	return spans, nil
}

// Expand turns spans back into one mask per frame. The spans must add up to
// exactly frames; the total is checked before anything is allocated, so a
// corrupt count cannot blow up memory.
func Expand(spans []Span, frames int) ([]uint8, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: negative frame count %d", ErrMalformedLog, frames)
	}
	limit := uint64(frames)
	var total uint64
	for i, s := range spans {
		if s.Count > limit-total {
			return nil, fmt.Errorf("%w: span %d runs past %d frames", ErrMalformedLog, i, frames)
		}
		total += s.Count
	}
	if total != limit {
		return nil, fmt.Errorf("%w: log has %d frames, want %d", ErrMalformedLog, total, frames)
	}

	masks := make([]uint8, 0, frames)
	for _, s := range spans {
		for i := uint64(0); i < s.Count; i++ {
			masks = append(masks, s.Mask)
		}
	}
	return masks, nil
}

// Compress groups per-frame masks into spans.
func Compress(masks []uint8) []Span {
	var spans []Span
	for _, m := range masks {
		if n := len(spans); n > 0 && spans[n-1].Mask == m {
			spans[n-1].Count++
			continue
		}
		spans = append(spans, Span{Mask: m, Count: 1})
	}
	return spans
}
