// SPDX-License-Identifier: EPL-2.0

package audio

import "encoding/binary"

// ByteStream is a growable FIFO of decoded bytes with independent read and
// write cursors. A producer appends with Put and a consumer drains with Get
// or Next; the consumer can never read past the write cursor.
type ByteStream struct {
	buf []byte
	r   int
}

func NewByteStream(capacity int) *ByteStream {
	return &ByteStream{buf: make([]byte, 0, max(capacity, 0))}
}

// Len is the number of unread bytes.
func (s *ByteStream) Len() int { return len(s.buf) - s.r }

func (s *ByteStream) ReadPos() int  { return s.r }
func (s *ByteStream) WritePos() int { return len(s.buf) }

// Put appends p.
func (s *ByteStream) Put(p []byte) {
	s.rewindIfDrained()
	s.buf = append(s.buf, p...)
}

// PutSample appends v as a little-endian signed integer of the given width
// (1, 2 or 3 bytes).
func (s *ByteStream) PutSample(v int, bytesPerSample int) {
	s.rewindIfDrained()
	switch bytesPerSample {
	case 1:
		s.buf = append(s.buf, byte(int8(v)))
	case 2:
		s.buf = binary.LittleEndian.AppendUint16(s.buf, uint16(int16(v)))
	case 3:
		u := uint32(int32(v))
		s.buf = append(s.buf, byte(u), byte(u>>8), byte(u>>16))
	}
}

// Get consumes one byte.
func (s *ByteStream) Get() (byte, error) {
	if s.r >= len(s.buf) {
		return 0, ErrStreamEmpty
	}
	b := s.buf[s.r]
	s.r++
	return b, nil
}

// Next consumes up to n bytes and returns them. The slice is only valid
// until the next Put or Clear.
func (s *ByteStream) Next(n int) []byte {
	n = min(max(n, 0), s.Len())
	p := s.buf[s.r : s.r+n]
	s.r += n
	return p
}

// Bytes returns the unread bytes without consuming them.
func (s *ByteStream) Bytes() []byte { return s.buf[s.r:] }

// Clear drops all data and resets both cursors to zero.
func (s *ByteStream) Clear() {
	s.buf = s.buf[:0]
	s.r = 0
}

// Compact moves the unread bytes to the front of the buffer so the space
// already consumed can be reused. Cursor positions change; the unread
// content does not.
func (s *ByteStream) Compact() {
	if s.r == 0 {
		return
	}
	n := copy(s.buf, s.buf[s.r:])
	s.buf = s.buf[:n]
	s.r = 0
}

// once everything was consumed the storage can be reused from the start
func (s *ByteStream) rewindIfDrained() {
	if s.r > 0 && s.r == len(s.buf) {
		s.Clear()
	}
}
