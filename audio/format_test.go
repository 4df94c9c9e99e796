// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
	"time"
)

func TestFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    Format
		want string
	}{
		{FormatAIFF, "aiff"},
		{FormatWAV, "wav"},
		{FormatVorbis, "ogg vorbis"},
		{FormatMP3, "mp3"},
		{FormatFLAC, "flac"},
		{FormatUnknown, "unknown"},
		{Format(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestInfo_Derived(t *testing.T) {
	t.Parallel()

	info := Info{
		Format:        FormatWAV,
		Channels:      2,
		SampleRate:    44100,
		BitsPerSample: 24,
		TotalSamples:  88200,
	}

	if got := info.BytesPerSample(); got != 3 {
		t.Errorf("BytesPerSample() = %d, want 3", got)
	}
	if got := info.FrameSize(); got != 6 {
		t.Errorf("FrameSize() = %d, want 6", got)
	}
	if got := info.Frames(); got != 44100 {
		t.Errorf("Frames() = %d, want 44100", got)
	}
	if got := info.BytesPerSecond(); got != 264600 {
		t.Errorf("BytesPerSecond() = %d, want 264600", got)
	}
	if got := info.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}
}

func TestInfo_Validate(t *testing.T) {
	t.Parallel()

	valid := Info{Channels: 1, SampleRate: 8000, BitsPerSample: 16}

	tests := []struct {
		name    string
		mutate  func(*Info)
		wantErr bool
	}{
		{"valid", func(*Info) {}, false},
		{"8 bit", func(i *Info) { i.BitsPerSample = 8 }, false},
		{"24 bit", func(i *Info) { i.BitsPerSample = 24 }, false},
		{"no channels", func(i *Info) { i.Channels = 0 }, true},
		{"zero rate", func(i *Info) { i.SampleRate = 0 }, true},
		{"32 bit", func(i *Info) { i.BitsPerSample = 32 }, true},
		{"12 bit", func(i *Info) { i.BitsPerSample = 12 }, true},
		{"negative samples", func(i *Info) { i.TotalSamples = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := valid
			tt.mutate(&info)
			err := info.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInfo) {
				t.Errorf("Validate() error = %v, want wrapping %v", err, ErrInvalidInfo)
			}
		})
	}
}
