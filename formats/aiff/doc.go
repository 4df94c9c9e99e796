// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container. AIFF
// and uncompressed AIFF-C (compression type "NONE" or the little-endian
// "sowt") are accepted at 8, 16 or 24 bits. Compressed AIFF-C variants are
// rejected with ErrUnsupportedEncoding.
//
//	stream, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedEncoding, ErrPCMNotFound
//	}
//	bs := audio.NewByteStream(0)
//	n, err := stream.Read(bs, 4096)
//
// The big-endian payload is handed out as little-endian signed PCM, so
// consumers never see the container's byte order. The sample count comes
// from the COMM chunk.
package aiff
