// SPDX-License-Identifier: EPL-2.0

package progressive

import "errors"

var (
	// ErrNotIdle is returned by Attach on a loop that already has a source
	ErrNotIdle = errors.New("decode loop is not idle")

	// ErrNotAttached is returned by Run before a successful Attach
	ErrNotAttached = errors.New("decode loop has no source attached")

	// ErrClosed is the failure recorded when a loop is closed before the end of the stream
	ErrClosed = errors.New("decode loop closed")
)
