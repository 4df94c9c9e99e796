// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpeak/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameReader is an interface for flac.Stream to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type stream struct {
	dec  frameReader
	info audio.Info

	// interleaved samples of the last parsed frame not yet handed out
	pending []int32
	carry   []int32

	served int
	eof    bool
	done   bool
}

func (s *stream) Info() audio.Info { return s.info }
func (s *stream) Close() error     { return s.dec.Close() }

// interleave flattens one frame into the carry buffer.
func (s *stream) interleave(f *frame.Frame) error {
	ch := s.info.Channels
	if len(f.Subframes) != ch {
		return fmt.Errorf("%w: %d subframes, want %d", ErrChannelMismatch, len(f.Subframes), ch)
	}

	n := len(f.Subframes[0].Samples)
	if cap(s.carry) < n*ch {
		s.carry = make([]int32, n*ch)
	}
	s.carry = s.carry[:n*ch]

	for c, sub := range f.Subframes {
		if len(sub.Samples) != n {
			return fmt.Errorf("%w: subframe %d has %d samples, want %d", ErrChannelMismatch, c, len(sub.Samples), n)
		}
		for i, v := range sub.Samples {
			s.carry[i*ch+c] = v
		}
	}
	s.pending = s.carry

	return nil
}

func (s *stream) Read(dst *audio.ByteStream, budget int) (int, error) {
	if s.done {
		return 0, nil
	}

	frameSize := s.info.FrameSize()
	if budget < frameSize {
		return 0, audio.ErrBudgetTooSmall
	}

	want := budget / frameSize * s.info.Channels
	if s.info.TotalSamples > 0 {
		want = min(want, s.info.TotalSamples-s.served)
	}

	bps := s.info.BytesPerSample()
	written := 0
	var decodeErr error

	for written < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}

			f, err := s.dec.ParseNext()
			if errors.Is(err, io.EOF) {
				s.eof = true
				continue
			}
			if err != nil {
				decodeErr = err
				break
			}
			if err := s.interleave(f); err != nil {
				decodeErr = err
				break
			}
		}

		take := min(len(s.pending), want-written)
		for _, v := range s.pending[:take] {
			dst.PutSample(int(v), bps)
		}
		s.pending = s.pending[take:]
		written += take
	}

	s.served += written
	n := written * bps

	if decodeErr != nil {
		return n, &audio.DecodeError{Format: audio.FormatFLAC, Err: decodeErr}
	}
	if written == 0 {
		s.done = true
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}

	si := dec.Info
	switch si.BitsPerSample {
	case 8, 16, 24:
	default:
		_ = dec.Close()
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedEncoding, si.BitsPerSample)
	}

	channels := int(si.NChannels)
	info := audio.Info{
		Format:        audio.FormatFLAC,
		Channels:      channels,
		SampleRate:    int(si.SampleRate),
		BitsPerSample: int(si.BitsPerSample),
		// zero when the encoder did not record the length
		TotalSamples: int(si.NSamples) * channels,
	}
	if err := info.Validate(); err != nil {
		_ = dec.Close()
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	return &stream{dec: dec, info: info}, nil
}
