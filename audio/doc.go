// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contracts shared by every container decoder and
// the consumers that turn decoded PCM into peaks.
//
// # Streams
//
// A Stream is an open decoder positioned somewhere in a file:
//
//	type Stream interface {
//	    Info() Info
//	    Read(dst *ByteStream, budget int) (int, error)
//	    Close() error
//	}
//
// Read is incremental. Each call appends at most budget bytes of
// little-endian signed PCM to dst and returns how many it produced, so a
// caller can spread the decode of a long file across many short slices of
// work. Only whole frames are written. A budget smaller than one frame is
// rejected with ErrBudgetTooSmall. Once the stream is exhausted every
// further call returns 0 and a nil error.
//
// Compressed formats (Ogg Vorbis, MP3) always produce 16-bit samples. PCM
// containers (WAV, AIFF, FLAC) produce samples at their native width, 8, 16
// or 24 bits.
//
// # Byte streams
//
// ByteStream is the FIFO between a decoder and its consumer:
//
//	bs := audio.NewByteStream(4096)
//	n, err := stream.Read(bs, 4096)
//	for bs.Len() >= frameSize {
//	    frame := bs.Next(frameSize)
//	    // ...
//	}
//
// # Registry
//
// The registry maps file suffixes to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", audio.FormatWAV, wav.Decoder{})
//	format, decoder, ok := registry.Lookup("drums.wav")
//
// Suffixes are matched exactly and case-sensitively; "x.WAV" does not match
// "wav".
//
// # Errors
//
// OpenError wraps anything that prevents a stream from being opened, with
// ErrUnknownFormat for unregistered suffixes. DecodeError wraps malformed
// data found after a successful open. BackendError is a failed storage
// operation.
package audio
