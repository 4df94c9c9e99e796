// SPDX-License-Identifier: EPL-2.0

package audpeak

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ErrTrackNotFound is returned when no track has the requested ID
var ErrTrackNotFound = errors.New("track not found")

// Tracks is an ordered set of tracks keyed by ID.
type Tracks struct {
	order []uuid.UUID
	byID  map[uuid.UUID]*Track
	mtx   sync.RWMutex
}

func NewTracks() *Tracks {
	return &Tracks{byID: make(map[uuid.UUID]*Track)}
}

// Add appends t. Adding a track twice keeps its first position.
func (ts *Tracks) Add(t *Track) {
	ts.mtx.Lock()
	defer ts.mtx.Unlock()

	if _, ok := ts.byID[t.ID]; !ok {
		ts.order = append(ts.order, t.ID)
	}
	ts.byID[t.ID] = t
}

func (ts *Tracks) Get(id uuid.UUID) (*Track, bool) {
	ts.mtx.RLock()
	defer ts.mtx.RUnlock()

	t, ok := ts.byID[id]
	return t, ok
}

// Remove closes the track and forgets it.
func (ts *Tracks) Remove(id uuid.UUID) error {
	ts.mtx.Lock()
	t, ok := ts.byID[id]
	if ok {
		delete(ts.byID, id)
		ts.order = slices.DeleteFunc(ts.order, func(v uuid.UUID) bool { return v == id })
	}
	ts.mtx.Unlock()

	if !ok {
		return ErrTrackNotFound
	}
	return t.Close()
}

// All returns the tracks in insertion order.
func (ts *Tracks) All() []*Track {
	ts.mtx.RLock()
	defer ts.mtx.RUnlock()

	out := make([]*Track, 0, len(ts.order))
	for _, id := range ts.order {
		out = append(out, ts.byID[id])
	}
	return out
}

func (ts *Tracks) Len() int {
	ts.mtx.RLock()
	defer ts.mtx.RUnlock()

	return len(ts.order)
}

// Close closes every track and empties the set.
func (ts *Tracks) Close() error {
	ts.mtx.Lock()
	tracks := make([]*Track, 0, len(ts.order))
	for _, id := range ts.order {
		tracks = append(tracks, ts.byID[id])
	}
	ts.order = nil
	ts.byID = make(map[uuid.UUID]*Track)
	ts.mtx.Unlock()

	var errs []error
	for _, t := range tracks {
		errs = append(errs, t.Close())
	}
	return errors.Join(errs...)
}
