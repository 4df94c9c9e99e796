// SPDX-License-Identifier: EPL-2.0

package storage

// Handle is an opaque reference to a resource opened by a Backend.
// Only the Backend that returned it knows what it points to.
type Handle any

// Backend is the set of operations a decoder needs from the host to reach
// raw bytes. It mirrors the classic stdio callback set (open, read, seek,
// tell, close) so archive, network or in-memory sources can be plugged in
// without touching the decoders.
type Backend interface {
	// Open returns a handle for path.
	Open(path string) (Handle, error)
	// Read fills buf with up to len(buf)/elemSize elements of elemSize bytes
	// and returns the number of whole elements read. Zero elements with a nil
	// error means end of data.
	Read(h Handle, buf []byte, elemSize int) (int, error)
	// Seek moves the cursor of h. whence follows io.SeekStart,
	// io.SeekCurrent and io.SeekEnd.
	Seek(h Handle, offset int64, whence int) error
	// Tell reports the current byte offset of h.
	Tell(h Handle) (int64, error)
	// Close releases h. Using h afterwards is an error.
	Close(h Handle) error
}
