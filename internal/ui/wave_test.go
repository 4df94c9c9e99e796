// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"testing"

	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/peaks"
)

// envelopeOf builds a mono envelope with one column per value. A column
// spans two frames, so each value is fed twice and the last one once.
func envelopeOf(t *testing.T, values ...int) *peaks.Envelope {
	t.Helper()

	frames := 2*len(values) - 1
	info := audio.Info{Format: audio.FormatWAV, Channels: 1, SampleRate: 8000, BitsPerSample: 16, TotalSamples: frames}
	r, err := peaks.NewReducer(info, len(values))
	if err != nil {
		t.Fatalf("NewReducer() error = %v", err)
	}

	bs := audio.NewByteStream(0)
	for i := range frames {
		bs.PutSample(values[i/2], 2)
	}
	r.Consume(bs)
	r.Flush()

	if r.Envelope().Len() != len(values) {
		t.Fatalf("envelope has %d columns, want %d", r.Envelope().Len(), len(values))
	}
	return r.Envelope()
}

func TestRenderWave(t *testing.T) {
	t.Parallel()

	env := envelopeOf(t, 0, 32767, 16384, -32768)

	tests := []struct {
		width int
		want  string
	}{
		{4, " █▄█"},
		{10, " █▄█"},
		{2, "██"},
		{1, "█"},
		{0, ""},
	}

	for _, tt := range tests {
		if got := RenderWave(env, tt.width); got != tt.want {
			t.Errorf("RenderWave(width %d) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestRenderWave_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderWave(nil, 10); got != "" {
		t.Errorf("RenderWave(nil) = %q, want empty", got)
	}
	if got := RenderWave(&peaks.Envelope{}, 10); got != "" {
		t.Errorf("RenderWave(empty) = %q, want empty", got)
	}
}
