// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/audpeak/audio"
)

// MockStream is an audio.Stream that serves a fixed sample slice.
type MockStream struct {
	info    audio.Info
	samples []int
	total   int
	served  int
	closed  bool

	// FailAt makes Read return Err once this many samples were served.
	// Zero disables the failure.
	FailAt int
	Err    error

	// Reads counts Read calls.
	Reads int
}

// NewMockStream serves samples (interleaved, native range) described by
// the given layout. TotalSamples is derived from len(samples).
func NewMockStream(format audio.Format, rate, channels, bits int, samples []int) *MockStream {
	total := len(samples) / channels * channels

	return &MockStream{
		info: audio.Info{
			Format:        format,
			Channels:      channels,
			SampleRate:    rate,
			BitsPerSample: bits,
			TotalSamples:  total,
		},
		samples: samples,
		total:   total,
	}
}

// HideLength makes Info report an unknown length (TotalSamples 0), the way
// decoders over unseekable input do. Every sample is still served.
func (m *MockStream) HideLength() { m.info.TotalSamples = 0 }

func (m *MockStream) Info() audio.Info { return m.info }

func (m *MockStream) Close() error {
	m.closed = true
	return nil
}

func (m *MockStream) Closed() bool { return m.closed }

func (m *MockStream) Read(dst *audio.ByteStream, budget int) (int, error) {
	m.Reads++

	if m.served >= m.total {
		return 0, nil
	}

	frameSize := m.info.FrameSize()
	if budget < frameSize {
		return 0, audio.ErrBudgetTooSmall
	}

	end := min(m.served+budget/frameSize*m.info.Channels, m.total)
	var failing bool
	if m.FailAt > 0 && end >= m.FailAt {
		end = m.FailAt - m.FailAt%m.info.Channels
		failing = true
	}

	bps := m.info.BytesPerSample()
	for _, v := range m.samples[m.served:end] {
		dst.PutSample(v, bps)
	}
	n := (end - m.served) * bps
	m.served = end

	if failing {
		return n, &audio.DecodeError{Format: m.info.Format, Err: m.Err}
	}

	return n, nil
}
