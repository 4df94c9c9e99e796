// SPDX-License-Identifier: EPL-2.0

package storage

import (
	"io"
)

// File adapts a Backend handle to the io.ReadSeeker shape the decoding
// libraries expect. It owns the handle and releases it exactly once.
type File struct {
	backend Backend
	handle  Handle
	path    string
	closed  bool
}

var (
	_ io.ReadSeeker = (*File)(nil)
	_ io.Closer     = (*File)(nil)
)

// Open opens path through b.
func Open(b Backend, path string) (*File, error) {
	h, err := b.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	return &File{backend: b, handle: h, path: path}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.path }

// Read fills p as far as the backend allows. A short count is only
// returned at the end of the data, so sample boundaries survive backends
// that deliver data in small pieces.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, &Error{Op: "read", Path: f.path, Err: ErrClosed}
	}
	if len(p) == 0 {
		return 0, nil
	}

	total := 0
	for total < len(p) {
		n, err := f.backend.Read(f.handle, p[total:], 1)
		total += n
		if err != nil {
			return total, &Error{Op: "read", Path: f.path, Err: err}
		}
		if n == 0 {
			break
		}
	}

	if total == 0 {
		return 0, io.EOF
	}
	return total, nil
}

// Seek moves the cursor and returns the new offset as reported by the
// backend's tell operation.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, &Error{Op: "seek", Path: f.path, Err: ErrClosed}
	}
	if err := f.backend.Seek(f.handle, offset, whence); err != nil {
		return 0, &Error{Op: "seek", Path: f.path, Err: err}
	}
	return f.Tell()
}

// Tell returns the current byte offset.
func (f *File) Tell() (int64, error) {
	if f.closed {
		return -1, &Error{Op: "tell", Path: f.path, Err: ErrClosed}
	}
	pos, err := f.backend.Tell(f.handle)
	if err != nil {
		return -1, &Error{Op: "tell", Path: f.path, Err: err}
	}
	return pos, nil
}

// Close releases the handle. Further calls are no-ops.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if err := f.backend.Close(f.handle); err != nil {
		return &Error{Op: "close", Path: f.path, Err: err}
	}
	return nil
}
