// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the signature or StreamInfo block could not be parsed
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedEncoding indicates a sample size other than 8, 16 or 24 bits
	ErrUnsupportedEncoding = errors.New("unsupported FLAC encoding")

	// ErrChannelMismatch indicates a frame whose subframes disagree with StreamInfo
	ErrChannelMismatch = errors.New("frame channel count differs from stream info")
)
