// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"slices"
	"sync"
)

// Envelope is the per-column peak output of a Reducer. Entries are only
// ever appended, in time order, so a renderer may read a prefix from
// another goroutine while decoding continues.
type Envelope struct {
	left  []int
	right []int
	mtx   sync.RWMutex
}

func (e *Envelope) Len() int {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	return len(e.left)
}

// At returns the peak pair of column i. It panics if i is out of range.
func (e *Envelope) At(i int) (left, right int) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	return e.left[i], e.right[i]
}

// Left returns a copy of the left channel peaks.
func (e *Envelope) Left() []int {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	return slices.Clone(e.left)
}

// Right returns a copy of the right channel peaks.
func (e *Envelope) Right() []int {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	return slices.Clone(e.right)
}

// Snapshot copies both channels under a single lock so they have the same
// length.
func (e *Envelope) Snapshot() (left, right []int) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	return slices.Clone(e.left), slices.Clone(e.right)
}

func (e *Envelope) append(left, right int) {
	e.mtx.Lock()
	e.left = append(e.left, left)
	e.right = append(e.right, right)
	e.mtx.Unlock()
}
