// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/audpeak/storage"
)

// FaultyBackend wraps a storage.Backend and injects failures.
type FaultyBackend struct {
	storage.Backend

	// StallAfter makes Read report 0 elements once this many bytes were
	// delivered for a handle. Zero disables it.
	StallAfter int64
	// ReadErr is returned by Read once ReadErrAfter bytes were delivered.
	ReadErr      error
	ReadErrAfter int64
	// CloseErr is returned by Close after the wrapped backend closed the handle.
	CloseErr error
	// OpenErr is returned by Open without touching the wrapped backend.
	OpenErr error

	Reads int
	Opens int
}

func (b *FaultyBackend) Open(path string) (storage.Handle, error) {
	b.Opens++
	if b.OpenErr != nil {
		return nil, b.OpenErr
	}
	return b.Backend.Open(path)
}

func (b *FaultyBackend) Read(h storage.Handle, buf []byte, elemSize int) (int, error) {
	b.Reads++

	pos, err := b.Backend.Tell(h)
	if err != nil {
		return 0, err
	}

	if b.ReadErr != nil && pos >= b.ReadErrAfter {
		return 0, b.ReadErr
	}
	if b.StallAfter > 0 && pos >= b.StallAfter {
		return 0, nil
	}

	limit := int64(len(buf))
	if b.StallAfter > 0 {
		limit = min(limit, b.StallAfter-pos)
	}
	if b.ReadErr != nil {
		limit = min(limit, b.ReadErrAfter-pos)
	}
	limit -= limit % int64(elemSize)
	if limit <= 0 {
		return 0, nil
	}

	return b.Backend.Read(h, buf[:limit], elemSize)
}

func (b *FaultyBackend) Close(h storage.Handle) error {
	if err := b.Backend.Close(h); err != nil {
		return err
	}
	return b.CloseErr
}
