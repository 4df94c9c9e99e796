// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"

	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/internal/config"
)

// MaxPeak is the largest magnitude an envelope column can hold.
const MaxPeak = 32767

// Magnitude normalizes one little-endian signed sample of 1, 2 or 3 bytes
// to a 16-bit magnitude in [0, MaxPeak]. Any other width yields 0.
func Magnitude(b []byte) int {
	var v int32

	switch len(b) {
	case 3:
		v = int32(uint32(b[0])<<8 | uint32(b[1])<<16 | uint32(b[2])<<24)
	case 2:
		v = int32(uint32(b[0])<<16 | uint32(b[1])<<24)
	case 1:
		v = int32(int8(b[0])) << 23
	default:
		return 0
	}

	m := int(v >> 16)
	if m < 0 {
		m = -m
	}

	return min(m, MaxPeak)
}

// DisplayWidth is the number of envelope columns for roughly one column
// per 100ms of audio. It is never less than 1.
func DisplayWidth(info audio.Info) int {
	div := info.SampleRate / config.PixelsPerSecond
	if div <= 0 {
		div = 1
	}

	return max(info.Frames()/div, 1)
}

// Reducer folds interleaved PCM into per-column maxima. The running
// window survives between Consume calls, so a column may span several
// buffer fills.
type Reducer struct {
	env *Envelope

	bps       int
	frameSize int
	stereo    bool
	spp       int

	peakL int
	peakR int
	count int
}

// NewReducer prepares a reducer producing about width columns for a
// stream described by info. SamplesPerPixel is Frames/width, at least 1.
//
// When the length is unknown (TotalSamples 0) width cannot be honoured;
// the column size then follows the sample rate, one column per 100ms, so
// the envelope still grows with the duration and not with the frame count.
func NewReducer(info audio.Info, width int) (*Reducer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	spp := info.Frames() / width
	if info.Frames() == 0 {
		spp = info.SampleRate / config.PixelsPerSecond
	}

	return &Reducer{
		env:       &Envelope{},
		bps:       info.BytesPerSample(),
		frameSize: info.FrameSize(),
		stereo:    info.Channels > 1,
		spp:       max(spp, 1),
	}, nil
}

func (r *Reducer) SamplesPerPixel() int { return r.spp }
func (r *Reducer) Envelope() *Envelope  { return r.env }

// Consume drains every complete frame from src and returns how many were
// folded. A trailing partial frame stays in src for the next call.
//
// A column closes once it holds more than SamplesPerPixel frames, so every
// full column spans SamplesPerPixel+1 frames.
//
// Mono frames count for both sides. With more than two channels the first
// two are used and the rest skipped.
func (r *Reducer) Consume(src *audio.ByteStream) int {
	frames := src.Len() / r.frameSize

	for range frames {
		frame := src.Next(r.frameSize)

		sl := Magnitude(frame[:r.bps])
		sr := sl
		if r.stereo {
			sr = Magnitude(frame[r.bps : 2*r.bps])
		}

		r.peakL = max(r.peakL, sl)
		r.peakR = max(r.peakR, sr)
		r.count++

		if r.count > r.spp {
			r.emit()
		}
	}

	return frames
}

// Flush appends the pending partial column, if any. Call it once the
// source reports end of stream.
func (r *Reducer) Flush() {
	if r.count > 0 {
		r.emit()
	}
}

func (r *Reducer) emit() {
	r.env.append(r.peakL, r.peakR)
	r.peakL, r.peakR, r.count = 0, 0, 0
}
