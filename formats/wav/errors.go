// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the RIFF/WAVE header could not be parsed.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding indicates a WAV that is not 8, 16 or 24-bit integer PCM.
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")

	// ErrPCMNotFound indicates the file has no data chunk.
	ErrPCMNotFound = errors.New("WAV data chunk not found")

	// ErrMisalignedPCM indicates PCM bytes that do not form whole frames.
	ErrMisalignedPCM = errors.New("PCM data is not frame aligned")
)
