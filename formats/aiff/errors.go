// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF or AIFF-C file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedEncoding indicates a compressed AIFF-C or a bit depth other than 8, 16 or 24
	ErrUnsupportedEncoding = errors.New("unsupported AIFF encoding")

	// ErrPCMNotFound indicates the file has no SSND chunk
	ErrPCMNotFound = errors.New("AIFF sound data chunk not found")
)
