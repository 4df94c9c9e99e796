// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. The decoder works on
// float samples; they are converted to 16-bit PCM, so a vorbis stream
// always reports 16 bits per sample whatever the encoder used.
//
//	stream, err := vorbis.Decoder{}.Decode(file)
//	n, err := stream.Read(bs, stream.Info().BytesPerSecond())
//
// The reader must be seekable for the total length to be known up front;
// the decoder seeks to the last page to find it and then rewinds.
//
// Packets are decoded until the byte budget is met. Samples decoded past
// the budget are kept and handed out first on the next call, so chunked
// reads produce exactly the same PCM as a single large read.
package vorbis
