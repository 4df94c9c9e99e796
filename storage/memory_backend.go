// SPDX-License-Identifier: EPL-2.0

package storage

import (
	"io"
	"sync"
)

// MemoryBackend serves resources from memory. It keeps count of the handles
// it has open so callers can verify that every handle was released.
// It is safe for concurrent use, including on the same handle.
type MemoryBackend struct {
	mtx   sync.Mutex
	files map[string][]byte
	open  int
	opens int
}

type memHandle struct {
	path   string
	data   []byte
	offset int64
	closed bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		files: make(map[string][]byte),
	}
}

// Add registers data under path, replacing any previous content.
func (m *MemoryBackend) Add(path string, data []byte) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.files[path] = data
}

// OpenHandles reports how many handles are currently open.
func (m *MemoryBackend) OpenHandles() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.open
}

// Opens reports how many Open calls were made, successful or not.
func (m *MemoryBackend) Opens() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.opens
}

func (m *MemoryBackend) Open(path string) (Handle, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.opens++
	data, ok := m.files[path]
	if !ok {
		return nil, ErrNotFound
	}
	m.open++

	return &memHandle{path: path, data: data}, nil
}

func (m *MemoryBackend) Read(h Handle, buf []byte, elemSize int) (int, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	mh, err := m.handle(h)
	if err != nil {
		return 0, err
	}
	if elemSize <= 0 || mh.offset >= int64(len(mh.data)) {
		return 0, nil
	}

	count := len(buf) / elemSize
	avail := (int64(len(mh.data)) - mh.offset) / int64(elemSize)
	if int64(count) > avail {
		count = int(avail)
	}
	n := copy(buf[:count*elemSize], mh.data[mh.offset:])
	mh.offset += int64(n)

	return count, nil
}

func (m *MemoryBackend) Seek(h Handle, offset int64, whence int) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	mh, err := m.handle(h)
	if err != nil {
		return err
	}

	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = mh.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(mh.data)) + offset
	default:
		return ErrInvalidWhence
	}

	if newOffset < 0 {
		return ErrNegativeOffset
	}

	mh.offset = newOffset
	return nil
}

func (m *MemoryBackend) Tell(h Handle) (int64, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	mh, err := m.handle(h)
	if err != nil {
		return -1, err
	}
	return mh.offset, nil
}

func (m *MemoryBackend) Close(h Handle) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	mh, err := m.handle(h)
	if err != nil {
		return err
	}

	mh.closed = true
	m.open--
	return nil
}

// handle must be called with m.mtx held.
func (m *MemoryBackend) handle(h Handle) (*memHandle, error) {
	mh, ok := h.(*memHandle)
	if !ok || mh == nil {
		return nil, ErrInvalidHandle
	}
	if mh.closed {
		return nil, ErrClosed
	}
	return mh, nil
}
