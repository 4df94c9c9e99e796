// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audpeak/audio"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
const (
	outChannels = 2
	outBits     = 16
	frameBytes  = outChannels * outBits / 8
)

// readBuffer is the number of bytes pulled from the decoder at once.
const readBuffer = 8192

// maxIdleReads bounds consecutive empty decoder reads inside one call.
const maxIdleReads = 8

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
}

type stream struct {
	dec  mp3Reader
	info audio.Info

	buf []byte
	// decoded bytes that did not fit the previous budget, or a split frame
	pending []byte

	served int // bytes
	eof    bool
	done   bool
}

func (s *stream) Info() audio.Info { return s.info }
func (s *stream) Close() error     { return nil }

func (s *stream) totalBytes() int {
	return s.info.TotalSamples * outBits / 8
}

func (s *stream) Read(dst *audio.ByteStream, budget int) (int, error) {
	if s.done {
		return 0, nil
	}
	if budget < frameBytes {
		return 0, audio.ErrBudgetTooSmall
	}

	want := budget / frameBytes * frameBytes
	if s.info.TotalSamples > 0 {
		want = min(want, s.totalBytes()-s.served)
	}

	written := 0
	idle := 0
	var decodeErr error

	for written < want {
		// a trailing partial frame is only handed out once completed
		if len(s.pending) < frameBytes {
			if s.eof {
				break
			}

			n, err := s.dec.Read(s.buf)
			s.pending = append(s.pending, s.buf[:n]...)

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

			if decodeErr != nil && len(s.pending) < frameBytes {
				break
			}
			continue
		}

		take := min(len(s.pending), want-written)
		take -= take % frameBytes
		dst.Put(s.pending[:take])
		s.pending = s.pending[take:]
		written += take

		if decodeErr != nil {
			break
		}
	}

	s.served += written

	if decodeErr != nil {
		return written, &audio.DecodeError{Format: audio.FormatMP3, Err: decodeErr}
	}
	if written == 0 {
		s.done = true
	}

	return written, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMP3File, err)
	}

	info := audio.Info{
		Format:        audio.FormatMP3,
		Channels:      outChannels,
		SampleRate:    dec.SampleRate(),
		BitsPerSample: outBits,
	}
	// Length is in bytes and negative when the reader cannot seek
	if length := dec.Length(); length > 0 {
		info.TotalSamples = int(length) / (outBits / 8)
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newStream(dec, info), nil
}

func newStream(dec mp3Reader, info audio.Info) *stream {
	return &stream{
		dec:  dec,
		info: info,
		buf:  make([]byte, readBuffer),
	}
}
