// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the Ogg headers could not be parsed as Vorbis
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrNoProgress indicates the decoder returned no samples without reporting an end of stream
	ErrNoProgress = errors.New("vorbis decoder made no progress")
)
