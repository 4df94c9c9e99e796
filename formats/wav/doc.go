// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding into audio.Stream and a PCM WAV writer.
//
// Decoding is backed by github.com/go-audio/wav. Integer PCM at 8, 16 and
// 24 bits is supported, mono or multi-channel, at any sample rate. Float,
// 32-bit and WAVE_FORMAT_EXTENSIBLE files are rejected with
// ErrUnsupportedEncoding.
//
//	stream, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedEncoding, ErrPCMNotFound
//	}
//	n, err := stream.Read(bs, stream.Info().BytesPerSecond())
//
// Decoded output is little-endian signed PCM at the file's bit depth;
// 8-bit data, which WAV stores unsigned, is re-centred around zero.
//
// WritePCM does the reverse: it writes a canonical 44-byte header followed
// by the samples, so anything read from an audio.Stream can be saved as a
// WAV file.
package wav
