// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1 and
// MPEG-2 Layer III files. The decoder always produces interleaved stereo
// 16-bit little-endian PCM; mono files are duplicated to both channels.
// The stream reports that layout in its Info regardless of how the file
// was encoded.
//
//	stream, err := mp3.Decoder{}.Decode(file)
//	n, err := stream.Read(bs, stream.Info().BytesPerSecond())
//
// The total length is known only when the reader can seek; go-mp3 scans
// the frame headers once to find it. Without it TotalSamples is zero and
// the stream simply runs until the decoder reports the end.
//
// Bytes decoded past the budget are kept and handed out first on the
// next call, so chunked reads produce exactly the same PCM as a single
// large read.
//
// # Limitations
//
// MPEG-2.5 and layers other than III are rejected by go-mp3 and surface
// as decode errors.
package mp3
