// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audpeak/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// stream wraps go-audio aiff.Decoder to implement audio.Stream
type stream struct {
	dec    aiffReader
	info   audio.Info
	served int
	done   bool
	intBuf *goaudio.IntBuffer
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

	want := min(budget/frameSize*s.info.Channels, s.info.TotalSamples-s.served)
	if want <= 0 {
		s.done = true
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, want)}
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	switch {
	case errors.Is(err, io.EOF):
		s.done = true
		err = nil
	case err != nil:
		// on a read failure the count is raw bytes and nothing was decoded
		n = 0
	}
	n -= n % s.info.Channels

	bps := s.info.BytesPerSample()
	for _, v := range s.intBuf.Data[:n] {
		// go-audio hands 8-bit samples back as the raw byte
		if bps == 1 {
			v = int(int8(byte(v)))
		}
		dst.PutSample(v, bps)
	}
	s.served += n

	if err != nil {
		return n * bps, &audio.DecodeError{Format: audio.FormatAIFF, Err: err}
	}
	if n == 0 {
		s.done = true
	}

	return n * bps, nil
}

var (
	encNone = [4]byte{'N', 'O', 'N', 'E'}
	encSowt = [4]byte{'s', 'o', 'w', 't'}
)

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotAiffFile, err)
		}
		switch dec.Encoding {
		case [4]byte{}, encNone, encSowt:
		default:
			return nil, fmt.Errorf("%w: compression %q", ErrUnsupportedEncoding, dec.Encoding[:])
		}
		return nil, ErrNotAiffFile
	}

	bits := int(dec.BitDepth)
	switch bits {
	case 8, 16, 24:
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedEncoding, bits)
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, ErrPCMNotFound
	}

	channels := int(dec.NumChans)
	info := audio.Info{
		Format:        audio.FormatAIFF,
		Channels:      channels,
		SampleRate:    dec.SampleRate,
		BitsPerSample: bits,
		TotalSamples:  int(dec.NumSampleFrames) * channels,
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	return &stream{dec: dec, info: info}, nil
}
