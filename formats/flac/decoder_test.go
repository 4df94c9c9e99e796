// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audpeak/audio"
	"github.com/mewkiz/flac/frame"
)

// mockFrameReader hands out prepared frames, like flac.Stream.ParseNext
type mockFrameReader struct {
	frames []*frame.Frame
	err    error
	reads  int
	closed bool
}

func (m *mockFrameReader) ParseNext() (*frame.Frame, error) {
	m.reads++

	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}

	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func (m *mockFrameReader) Close() error {
	m.closed = true
	return nil
}

func mockFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	for _, c := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: c, NSamples: len(c)})
	}
	return f
}

func mockInfo(channels, bits, total int) audio.Info {
	return audio.Info{
		Format:        audio.FormatFLAC,
		Channels:      channels,
		SampleRate:    8000,
		BitsPerSample: bits,
		TotalSamples:  total,
	}
}

func readAll(t *testing.T, s audio.Stream, budget int) []int {
	t.Helper()

	bs := audio.NewByteStream(0)
	for range 1 << 20 {
		n, err := s.Read(bs, budget)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if n == 0 {
			return decodeLE(bs.Bytes(), s.Info().BytesPerSample())
		}
	}
	t.Fatal("Read() never reported end of stream")
	return nil
}

func decodeLE(p []byte, bps int) []int {
	out := make([]int, 0, len(p)/bps)
	for i := 0; i+bps <= len(p); i += bps {
		switch bps {
		case 1:
			out = append(out, int(int8(p[i])))
		case 2:
			out = append(out, int(int16(binary.LittleEndian.Uint16(p[i:]))))
		case 3:
			out = append(out, int(goaudio.Int24LETo32(p[i:i+3])))
		}
	}
	return out
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not FLAC data")))
	if !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_Fixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want audio.Info
	}{
		{"testdata/input-SCVA.flac", audio.Info{Format: audio.FormatFLAC, Channels: 2, SampleRate: 44100, BitsPerSample: 16, TotalSamples: 5880 * 2}},
		{"testdata/243749.flac", audio.Info{Format: audio.FormatFLAC, Channels: 1, SampleRate: 8000, BitsPerSample: 24, TotalSamples: 402}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			f, err := os.Open(tt.file)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			s, err := Decoder{}.Decode(f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer s.Close()

			if got := s.Info(); got != tt.want {
				t.Fatalf("Info() = %+v, want %+v", got, tt.want)
			}

			got := readAll(t, s, s.Info().BytesPerSecond()/10)
			if len(got) != tt.want.TotalSamples {
				t.Errorf("decoded %d samples, want %d", len(got), tt.want.TotalSamples)
			}
		})
	}
}

func TestDecoder_FixtureChunkedMatchesWhole(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/input-SCVA.flac")
	if err != nil {
		t.Fatal(err)
	}

	whole, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	chunked, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !slices.Equal(readAll(t, whole, 1<<20), readAll(t, chunked, 4*13)) {
		t.Error("chunked reads differ from a single read")
	}
}

func TestStream_Interleaves(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{frames: []*frame.Frame{
		mockFrame([]int32{1, 2, 3}, []int32{-1, -2, -3}),
		mockFrame([]int32{4}, []int32{-4}),
	}}
	s := &stream{dec: m, info: mockInfo(2, 16, 8)}

	want := []int{1, -1, 2, -2, 3, -3, 4, -4}
	if got := readAll(t, s, 1024); !slices.Equal(got, want) {
		t.Errorf("samples = %v, want %v", got, want)
	}
}

func TestStream_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bits    int
		samples []int32
	}{
		{"8bit", 8, []int32{0, 127, -128, -1}},
		{"16bit", 16, []int32{32767, -32768, 0, 1}},
		{"24bit", 24, []int32{8388607, -8388608, 123456, -654321}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &mockFrameReader{frames: []*frame.Frame{mockFrame(tt.samples)}}
			s := &stream{dec: m, info: mockInfo(1, tt.bits, len(tt.samples))}

			got := readAll(t, s, 1024)
			want := make([]int, len(tt.samples))
			for i, v := range tt.samples {
				want[i] = int(v)
			}
			if !slices.Equal(got, want) {
				t.Errorf("samples = %v, want %v", got, want)
			}
		})
	}
}

func TestStream_FrameRemainderCarriedOver(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{frames: []*frame.Frame{
		mockFrame([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
	}}
	s := &stream{dec: m, info: mockInfo(1, 16, 10)}
	bs := audio.NewByteStream(0)

	// one frame serves five calls
	for i := range 5 {
		n, err := s.Read(bs, 4)
		if err != nil || n != 4 {
			t.Fatalf("Read() #%d = %d, %v, want 4, nil", i, n, err)
		}
	}
	if m.reads != 1 {
		t.Errorf("decoder reads = %d, want 1", m.reads)
	}

	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := decodeLE(bs.Bytes(), 2); !slices.Equal(got, want) {
		t.Errorf("samples = %v, want %v", got, want)
	}
}

func TestStream_NeverExceedsTotalSamples(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{frames: []*frame.Frame{mockFrame(make([]int32, 50))}}
	s := &stream{dec: m, info: mockInfo(1, 16, 20)}

	if got := readAll(t, s, 1000); len(got) != 20 {
		t.Errorf("decoded %d samples, want 20", len(got))
	}
}

func TestStream_UnknownLength(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{frames: []*frame.Frame{mockFrame(make([]int32, 30)), mockFrame(make([]int32, 20))}}
	s := &stream{dec: m, info: mockInfo(1, 16, 0)}

	if got := readAll(t, s, 1000); len(got) != 50 {
		t.Errorf("decoded %d samples, want 50", len(got))
	}
}

func TestStream_ChannelMismatch(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{frames: []*frame.Frame{mockFrame([]int32{1, 2})}}
	s := &stream{dec: m, info: mockInfo(2, 16, 4)}

	_, err := s.Read(audio.NewByteStream(0), 100)
	if !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("Read() error = %v, want ErrChannelMismatch", err)
	}
}

func TestStream_DecodeErrorKeepsProducedBytes(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{
		frames: []*frame.Frame{mockFrame([]int32{1, 2, 3})},
		err:    frame.ErrInvalidSync,
	}
	s := &stream{dec: m, info: mockInfo(1, 16, 100)}
	bs := audio.NewByteStream(0)

	n, err := s.Read(bs, 100)

	var de *audio.DecodeError
	if !errors.As(err, &de) || de.Format != audio.FormatFLAC {
		t.Fatalf("Read() error = %v, want flac *audio.DecodeError", err)
	}
	if !errors.Is(err, frame.ErrInvalidSync) {
		t.Errorf("Read() error = %v, want it to wrap frame.ErrInvalidSync", err)
	}
	if n != 6 || bs.Len() != 6 {
		t.Errorf("Read() = %d (buffered %d), want the 6 bytes decoded before the failure", n, bs.Len())
	}
}

func TestStream_ReadAfterEOF(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{frames: []*frame.Frame{mockFrame([]int32{1, 2})}}
	s := &stream{dec: m, info: mockInfo(1, 16, 2)}
	bs := audio.NewByteStream(0)

	if n, err := s.Read(bs, 100); n != 4 || err != nil {
		t.Fatalf("Read() = %d, %v, want 4, nil", n, err)
	}
	for range 3 {
		if n, err := s.Read(bs, 100); n != 0 || err != nil {
			t.Errorf("Read() after EOF = %d, %v, want 0, nil", n, err)
		}
	}
}

func TestStream_BudgetTooSmall(t *testing.T) {
	t.Parallel()

	s := &stream{dec: &mockFrameReader{}, info: mockInfo(2, 24, 100)}

	if _, err := s.Read(audio.NewByteStream(0), 5); !errors.Is(err, audio.ErrBudgetTooSmall) {
		t.Errorf("Read() error = %v, want ErrBudgetTooSmall", err)
	}
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	m := &mockFrameReader{}
	s := &stream{dec: m, info: mockInfo(1, 16, 0)}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if !m.closed {
		t.Error("Close() did not close the frame reader")
	}
}

func BenchmarkStream_Read(b *testing.B) {
	data, err := os.ReadFile("testdata/input-SCVA.flac")
	if err != nil {
		b.Fatal(err)
	}
	bs := audio.NewByteStream(1 << 16)

	b.ReportAllocs()

	for b.Loop() {
		s, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			n, _ := s.Read(bs, 1<<16)
			bs.Clear()
			if n == 0 {
				break
			}
		}
	}
}
