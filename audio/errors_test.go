// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audpeak/storage"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrUnknownFormat, "unknown audio format"},
		{ErrNotOpen, "audio source is not open"},
		{ErrStreamEmpty, "byte stream is empty"},
		{ErrBudgetTooSmall, "byte budget is smaller than one frame"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestOpenError(t *testing.T) {
	t.Parallel()

	err := error(&OpenError{Path: "song.xyz", Err: ErrUnknownFormat})

	if got, want := err.Error(), "error opening 'song.xyz': unknown audio format"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnknownFormat) {
		t.Error("errors.Is(OpenError, ErrUnknownFormat) = false")
	}

	var oe *OpenError
	if !errors.As(err, &oe) || oe.Path != "song.xyz" {
		t.Errorf("errors.As() did not recover the path, got %+v", oe)
	}
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	err := error(&DecodeError{Format: FormatVorbis, Err: io.ErrUnexpectedEOF})

	if got, want := err.Error(), "ogg vorbis decode: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is(DecodeError, io.ErrUnexpectedEOF) = false")
	}
}

func TestBackendError_IsStorageError(t *testing.T) {
	t.Parallel()

	err := error(&BackendError{Op: "read", Path: "a.wav", Err: storage.ErrClosed})

	var se *storage.Error
	if !errors.As(err, &se) {
		t.Fatal("errors.As(BackendError, *storage.Error) = false")
	}
	if !errors.Is(err, storage.ErrClosed) {
		t.Error("errors.Is(BackendError, storage.ErrClosed) = false")
	}
}
