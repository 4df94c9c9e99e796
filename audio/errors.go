// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"

	"github.com/ik5/audpeak/storage"
)

var (
	ErrUnknownFormat  = errors.New("unknown audio format")
	ErrNotOpen        = errors.New("audio source is not open")
	ErrStreamEmpty    = errors.New("byte stream is empty")
	ErrBudgetTooSmall = errors.New("byte budget is smaller than one frame")
	ErrInvalidInfo    = errors.New("invalid stream info")
)

// OpenError reports that a source could not be opened: the backend could
// not provide the resource, the header failed validation, or the format is
// not recognized. The host is expected to log it and drop the source.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("error opening '%s': %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// DecodeError reports a malformed packet or frame found mid-stream.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BackendError is a failed storage operation (read, seek, tell, close).
type BackendError = storage.Error
