// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Format tags the container variant a stream was decoded from. The set is
// closed: a stream's format is chosen once when it is opened.
type Format int

const (
	FormatUnknown Format = iota
	// FormatAIFF is the big-endian chunked PCM container (AIFF / AIFC "NONE" and "sowt").
	FormatAIFF
	// FormatWAV is the little-endian RIFF/WAVE PCM container.
	FormatWAV
	// FormatVorbis is an Ogg bitstream carrying Vorbis packets.
	FormatVorbis
	// FormatMP3 is an MPEG-1/2 Layer III elementary stream.
	FormatMP3
	// FormatFLAC is a native FLAC stream.
	FormatFLAC
)

func (f Format) String() string {
	switch f {
	case FormatAIFF:
		return "aiff"
	case FormatWAV:
		return "wav"
	case FormatVorbis:
		return "ogg vorbis"
	case FormatMP3:
		return "mp3"
	case FormatFLAC:
		return "flac"
	default:
		return "unknown"
	}
}

// Compressed reports whether the format is transform or entropy coded, in
// which case decoded output is always normalized to 16-bit samples.
func (f Format) Compressed() bool {
	switch f {
	case FormatVorbis, FormatMP3:
		return true
	default:
		return false
	}
}

// Info describes an open stream.
type Info struct {
	Format        Format
	Channels      int
	SampleRate    int
	BitsPerSample int
	// TotalSamples counts samples over all channels (frames * channels).
	TotalSamples int
}

func (i Info) BytesPerSample() int { return i.BitsPerSample / 8 }

// FrameSize is the number of bytes one frame occupies in decoded output.
func (i Info) FrameSize() int { return i.BytesPerSample() * i.Channels }

// Frames is the number of sample frames (samples per channel).
func (i Info) Frames() int {
	if i.Channels <= 0 {
		return 0
	}
	return i.TotalSamples / i.Channels
}

// BytesPerSecond is the decoded data rate, roughly one second of output.
func (i Info) BytesPerSecond() int {
	return i.SampleRate * i.BytesPerSample() * i.Channels
}

func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(i.Frames()) / float64(i.SampleRate) * float64(time.Second))
}

// Validate checks the invariants every decoder must establish on open.
func (i Info) Validate() error {
	if i.Channels < 1 {
		return fmt.Errorf("%w: %d channels", ErrInvalidInfo, i.Channels)
	}
	if i.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidInfo, i.SampleRate)
	}
	switch i.BitsPerSample {
	case 8, 16, 24:
	default:
		return fmt.Errorf("%w: %d bits per sample", ErrInvalidInfo, i.BitsPerSample)
	}
	if i.TotalSamples < 0 {
		return fmt.Errorf("%w: %d total samples", ErrInvalidInfo, i.TotalSamples)
	}
	return nil
}

func (i Info) String() string {
	return fmt.Sprintf("%s: %d Hz, %d ch, %d bit, %d frames (%s)",
		i.Format, i.SampleRate, i.Channels, i.BitsPerSample, i.Frames(), i.Duration().Round(time.Millisecond))
}
