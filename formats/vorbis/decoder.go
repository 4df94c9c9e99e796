// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/utils"
	"github.com/jfreymuth/oggvorbis"
)

// packetBuffer is the number of float samples pulled from the decoder at once.
const packetBuffer = 4096

// maxIdleReads bounds consecutive empty decoder reads inside one call.
const maxIdleReads = 8

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	Read([]float32) (int, error)
}

type stream struct {
	dec  oggReader
	info audio.Info

	frameBuf []float32
	pcm      []int16
	// decoded samples that did not fit the previous budget
	pending []int16

	served int
	eof    bool
	done   bool
}

func (s *stream) Info() audio.Info { return s.info }
func (s *stream) Close() error     { return nil }

func (s *stream) Read(dst *audio.ByteStream, budget int) (int, error) {
	if s.done {
		return 0, nil
	}

	frameSize := s.info.FrameSize()
	if budget < frameSize {
		return 0, audio.ErrBudgetTooSmall
	}

	want := budget / frameSize * s.info.Channels
	// a zero length means the reader could not seek to find it
	if s.info.TotalSamples > 0 {
		want = min(want, s.info.TotalSamples-s.served)
	}

	written := 0
	idle := 0
	var decodeErr error

	for written < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}

			n, err := s.dec.Read(s.frameBuf)
			n -= n % s.info.Channels
			s.pending = s.pcm[:utils.Float32sToInt16s(s.pcm, s.frameBuf[:n])]

			switch {
			case errors.Is(err, io.EOF):
				s.eof = true
			case err != nil:
				decodeErr = err
			case n == 0:
				idle++
				if idle >= maxIdleReads {
					decodeErr = ErrNoProgress
				}
			default:
				idle = 0
			}
		}

		take := min(len(s.pending), want-written)
		for _, v := range s.pending[:take] {
			dst.PutSample(int(v), 2)
		}
		s.pending = s.pending[take:]
		written += take

		if decodeErr != nil {
			break
		}
	}

	s.served += written

	if decodeErr != nil {
		return written * 2, &audio.DecodeError{Format: audio.FormatVorbis, Err: decodeErr}
	}
	if written == 0 {
		s.done = true
	}

	return written * 2, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotVorbisFile, err)
	}

	channels := dec.Channels()
	info := audio.Info{
		Format:        audio.FormatVorbis,
		Channels:      channels,
		SampleRate:    dec.SampleRate(),
		BitsPerSample: 16,
		TotalSamples:  int(dec.Length()) * channels,
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newStream(dec, info), nil
}

func newStream(dec oggReader, info audio.Info) *stream {
	size := packetBuffer / info.Channels * info.Channels
	return &stream{
		dec:      dec,
		info:     info,
		frameBuf: make([]float32, size),
		pcm:      make([]int16, size),
	}
}
