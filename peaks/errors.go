// SPDX-License-Identifier: EPL-2.0

package peaks

import "errors"

var (
	// ErrInvalidWidth indicates a display width of zero or less
	ErrInvalidWidth = errors.New("display width must be positive")
)
