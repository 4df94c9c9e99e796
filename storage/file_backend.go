// SPDX-License-Identifier: EPL-2.0

package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// FileBackend is the default Backend, backed by ordinary synchronous file
// I/O on the local file system.
type FileBackend struct{}

func (FileBackend) Open(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return f, nil
}

func (FileBackend) Read(h Handle, buf []byte, elemSize int) (int, error) {
	f, err := asFile(h)
	if err != nil {
		return 0, err
	}
	if elemSize <= 0 {
		return 0, nil
	}

	want := len(buf) / elemSize * elemSize
	n, err := io.ReadFull(f, buf[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n / elemSize, fmt.Errorf("%w", err)
	}

	// a trailing partial element is not reported, so leave the cursor before it
	if rem := n % elemSize; rem > 0 {
		if _, err := f.Seek(int64(-rem), io.SeekCurrent); err != nil {
			return n / elemSize, fmt.Errorf("%w", err)
		}
	}

	return n / elemSize, nil
}

func (FileBackend) Seek(h Handle, offset int64, whence int) error {
	f, err := asFile(h)
	if err != nil {
		return err
	}
	if _, err := f.Seek(offset, whence); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (FileBackend) Tell(h Handle) (int64, error) {
	f, err := asFile(h)
	if err != nil {
		return -1, err
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1, fmt.Errorf("%w", err)
	}
	return pos, nil
}

func (FileBackend) Close(h Handle) error {
	f, err := asFile(h)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func asFile(h Handle) (*os.File, error) {
	f, ok := h.(*os.File)
	if !ok || f == nil {
		return nil, ErrInvalidHandle
	}
	return f, nil
}
