// SPDX-License-Identifier: EPL-2.0

package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when a handle was not produced by the backend it is given to.
	ErrInvalidHandle = errors.New("invalid storage handle")

	// ErrClosed is returned when operating on a handle or file that was already closed.
	ErrClosed = errors.New("storage handle is closed")

	// ErrNotFound is returned by MemoryBackend when no data is registered for a path.
	ErrNotFound = errors.New("no such resource")

	// ErrInvalidWhence is returned for a seek origin other than io.SeekStart, io.SeekCurrent or io.SeekEnd.
	ErrInvalidWhence = errors.New("invalid whence")

	// ErrNegativeOffset is returned when a seek would move before the start of the resource.
	ErrNegativeOffset = errors.New("negative position")
)

// Error records a failed backend operation and the resource it was
// performed on.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
