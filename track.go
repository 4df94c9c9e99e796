// SPDX-License-Identifier: EPL-2.0

package audpeak

import (
	"context"

	"github.com/google/uuid"
	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/peaks"
	"github.com/ik5/audpeak/progressive"
)

// Status is the short, human readable progress of a Track.
type Status int

const (
	StatusReading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReading:
		return "Reading.."
	case StatusReady:
		return "Ready"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Track is one audio file being summarized: its source, the loop that
// decodes it and the resulting envelope. Every Track owns its own
// instances, nothing is shared between tracks.
type Track struct {
	ID   uuid.UUID
	Path string

	src  progressive.Source
	loop *progressive.Loop
}

// NewTrack attaches src to path. The track takes ownership of src. If the
// file cannot be opened the error is returned together with a Failed
// track, so the caller can still show it.
func NewTrack(src progressive.Source, path string, opts ...progressive.Option) (*Track, error) {
	t := &Track{
		ID:   uuid.New(),
		Path: path,
		src:  src,
		loop: progressive.New(src, opts...),
	}

	return t, t.loop.Attach(path)
}

// Tick performs one decode pass.
func (t *Track) Tick() (progressive.State, error) { return t.loop.Tick() }

// Run decodes on every tick of tk until the end of the file or until ctx
// is done.
func (t *Track) Run(ctx context.Context, tk progressive.Ticker) error {
	return t.loop.Run(ctx, tk)
}

// Envelope is nil when the file could not be opened.
func (t *Track) Envelope() *peaks.Envelope { return t.loop.Envelope() }

func (t *Track) Info() audio.Info         { return t.src.Info() }
func (t *Track) State() progressive.State { return t.loop.State() }
func (t *Track) Err() error               { return t.loop.Err() }
func (t *Track) BytesRead() int           { return t.loop.BytesRead() }

// Progress is the decoded fraction in [0, 1]. Streams of unknown length
// report 0 until they are done.
func (t *Track) Progress() float64 {
	if t.loop.State() == progressive.Done {
		return 1
	}

	info := t.src.Info()
	total := info.TotalSamples * info.BytesPerSample()
	if total <= 0 {
		return 0
	}

	return min(float64(t.loop.BytesRead())/float64(total), 1)
}

func (t *Track) Status() Status {
	switch t.loop.State() {
	case progressive.Done:
		return StatusReady
	case progressive.Failed:
		return StatusFailed
	default:
		return StatusReading
	}
}

// Close stops decoding and releases the file. The envelope stays readable.
func (t *Track) Close() error { return t.loop.Close() }
