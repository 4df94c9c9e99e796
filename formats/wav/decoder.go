// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audpeak/audio"
)

// pcmFormatInteger is the fmt chunk audio format of plain integer PCM.
const pcmFormatInteger = 1

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type stream struct {
	dec    pcmReader
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
		// 8-bit WAV samples are unsigned
		if bps == 1 {
			v -= 128
		}
		dst.PutSample(v, bps)
	}
	s.served += n

	if err != nil {
		return n * bps, &audio.DecodeError{Format: audio.FormatWAV, Err: err}
	}
	if n == 0 {
		s.done = true
	}

	return n * bps, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormatInteger {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
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
	frames := dec.PCMSize / (bits / 8) / channels

	info := audio.Info{
		Format:        audio.FormatWAV,
		Channels:      channels,
		SampleRate:    int(dec.SampleRate),
		BitsPerSample: bits,
		TotalSamples:  frames * channels,
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	return &stream{dec: dec, info: info}, nil
}
