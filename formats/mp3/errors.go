// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNotMP3File indicates no MPEG audio frame could be found
	ErrNotMP3File = errors.New("not an MP3 file")

	// ErrNoProgress indicates the decoder returned no bytes without reporting an end of stream
	ErrNoProgress = errors.New("mp3 decoder made no progress")
)
