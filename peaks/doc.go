// SPDX-License-Identifier: EPL-2.0

// Package peaks reduces decoded PCM into a waveform overview.
//
// A Reducer is created once the stream layout is known. It splits the
// stream into columns of SamplesPerPixel+1 frames and keeps, per column, the
// largest magnitude seen on the left and right channel. Samples of any
// supported width are normalized to a 16-bit magnitude first, so envelopes
// of 8, 16 and 24 bit sources share the same [0, 32767] range.
//
//	r, err := peaks.NewReducer(info, peaks.DisplayWidth(info))
//	for {
//		n, err := src.Read(bs, info.BytesPerSecond())
//		r.Consume(bs)
//		if n == 0 {
//			break
//		}
//	}
//	r.Flush()
//	left, right := r.Envelope().Snapshot()
//
// Memory use is bounded by the number of columns, not by the length of
// the audio. Streams of unknown length get one column per 100ms.
package peaks
