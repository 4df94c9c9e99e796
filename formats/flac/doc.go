// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac. Frames are parsed one at a
// time and their subframes interleaved into little-endian signed PCM of
// the width recorded in StreamInfo. 8, 16 and 24 bit streams are
// supported.
//
//	stream, err := flac.Decoder{}.Decode(file)
//	n, err := stream.Read(bs, stream.Info().BytesPerSecond())
//
// A FLAC frame usually holds a few thousand samples per channel, more
// than a small budget allows. The rest of the frame is kept and handed
// out first on the next call, so chunked reads produce exactly the same
// PCM as a single large read.
package flac
