// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// mockStream produces a fixed number of silent frames.
type mockStream struct {
	info   Info
	served int
}

func newSilentStream(rate, channels, bits, frames int) *mockStream {
	return &mockStream{info: Info{
		Format:        FormatWAV,
		Channels:      channels,
		SampleRate:    rate,
		BitsPerSample: bits,
		TotalSamples:  frames * channels,
	}}
}

func (m *mockStream) Info() Info   { return m.info }
func (m *mockStream) Close() error { return nil }

func (m *mockStream) Read(dst *ByteStream, budget int) (int, error) {
	frame := m.info.FrameSize()
	if budget < frame {
		return 0, ErrBudgetTooSmall
	}
	left := (m.info.TotalSamples - m.served) / m.info.Channels
	frames := min(budget/frame, left)
	dst.Put(make([]byte, frames*frame))
	m.served += frames * m.info.Channels
	return frames * frame, nil
}

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.ReadSeeker) (Stream, error) {
	return newSilentStream(44100, 2, 16, 100), nil
}
