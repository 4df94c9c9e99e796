// SPDX-License-Identifier: EPL-2.0

package progressive

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/ik5/audpeak/audio"
	"github.com/ik5/audpeak/internal/config"
	"github.com/ik5/audpeak/peaks"
)

// Source is the decoding side of a loop. *source.Source implements it.
type Source interface {
	Open(path string) error
	Read(dst *audio.ByteStream, budget int) (int, error)
	Close() error
	Info() audio.Info
}

type Option func(*Loop)

// WithWidth fixes the number of envelope columns. By default it is derived
// from the stream length with peaks.DisplayWidth.
func WithWidth(w int) Option {
	return func(l *Loop) { l.width = w }
}

// WithBudget fixes the number of bytes decoded per tick. By default one
// second of audio is decoded per tick.
func WithBudget(b int) Option {
	return func(l *Loop) { l.budget = b }
}

func WithObserver(o Observer) Option {
	return func(l *Loop) { l.observer = o }
}

func WithLogger(lg *log.Logger) Option {
	return func(l *Loop) { l.logger = lg }
}

// Loop decodes one source a bounded step at a time and folds the result
// into a peak envelope. It is driven by Tick, directly or through Run.
//
// A Loop is not safe for concurrent use. The envelope it returns may be
// read from other goroutines while ticks append to it.
type Loop struct {
	src      Source
	observer Observer
	logger   *log.Logger

	width  int
	budget int

	state   State
	err     error
	path    string
	read    int
	stream  *audio.ByteStream
	reducer *peaks.Reducer
}

func New(src Source, opts ...Option) *Loop {
	l := &Loop{
		src:      src,
		observer: ObserverFuncs{},
		logger:   log.New(io.Discard, "", 0),
		stream:   audio.NewByteStream(config.DecodeChunk),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) State() State { return l.state }

// Err is the failure that moved the loop to Failed, if any.
func (l *Loop) Err() error { return l.err }

// BytesRead is the total PCM produced so far.
func (l *Loop) BytesRead() int { return l.read }

// Envelope is nil until Attach succeeds. It remains valid after the loop
// ends, however it ended.
func (l *Loop) Envelope() *peaks.Envelope {
	if l.reducer == nil {
		return nil
	}
	return l.reducer.Envelope()
}

// SamplesPerPixel is the column size in frames, 0 before Attach.
func (l *Loop) SamplesPerPixel() int {
	if l.reducer == nil {
		return 0
	}
	return l.reducer.SamplesPerPixel()
}

// Attach opens path and prepares the reducer. On failure the loop is
// Failed and the error, usually an *audio.OpenError, is returned.
func (l *Loop) Attach(path string) error {
	if l.state != Idle {
		return ErrNotIdle
	}

	l.state = Opening
	l.path = path

	if err := l.src.Open(path); err != nil {
		l.logger.Printf("Error opening '%s': %v", path, err)
		l.finish(Failed, err)
		return err
	}

	info := l.src.Info()

	width := l.width
	if width <= 0 {
		width = peaks.DisplayWidth(info)
	}

	r, err := peaks.NewReducer(info, width)
	if err != nil {
		err = &audio.OpenError{Path: path, Err: err}
		l.closeSource()
		l.finish(Failed, err)
		return err
	}

	budget := l.budget
	if budget <= 0 {
		budget = info.BytesPerSecond()
	}

	l.budget = max(budget, info.FrameSize())
	l.reducer = r
	l.state = Streaming

	return nil
}

// Tick performs one decode pass. Outside Streaming it does nothing.
func (l *Loop) Tick() (State, error) {
	if l.state != Streaming {
		return l.state, nil
	}

	n, err := l.src.Read(l.stream, l.budget)
	l.read += n
	l.reducer.Consume(l.stream)
	l.stream.Compact()

	if err != nil {
		l.logger.Printf("Error decoding '%s': %v", l.path, err)
		l.observer.OnProgress(l.reducer.Envelope(), n)
		l.closeSource()
		l.finish(Failed, err)
		return l.state, err
	}

	if n > 0 {
		l.observer.OnProgress(l.reducer.Envelope(), n)
		return l.state, nil
	}

	l.reducer.Flush()
	l.observer.OnProgress(l.reducer.Envelope(), 0)

	cerr := l.closeSource()
	l.finish(Done, cerr)

	return l.state, cerr
}

// Run ticks on every signal from t until the stream ends or ctx is done.
// t is stopped on return. Cancellation closes the source and leaves the
// loop Failed with ctx's error; the envelope built so far stays valid.
func (l *Loop) Run(ctx context.Context, t Ticker) error {
	defer t.Stop()

	switch l.state {
	case Idle, Opening:
		return ErrNotAttached
	case Done:
		return nil
	case Failed:
		return l.err
	}

	for {
		select {
		case <-ctx.Done():
			l.stop(ctx.Err())
			return ctx.Err()
		case <-t.C():
			state, err := l.Tick()
			if err != nil {
				return err
			}
			if state.Terminal() {
				return nil
			}
		}
	}
}

// Close stops the loop at any point. A loop that has not finished ends
// Failed with ErrClosed. Closing a finished loop does nothing.
func (l *Loop) Close() error {
	return l.stop(ErrClosed)
}

func (l *Loop) stop(reason error) error {
	if l.state.Terminal() {
		return nil
	}

	var cerr error
	if l.state == Streaming {
		cerr = l.closeSource()
	}
	l.finish(Failed, reason)

	return cerr
}

func (l *Loop) closeSource() error {
	if err := l.src.Close(); err != nil {
		l.logger.Printf("Error closing '%s': %v", l.path, err)
		return fmt.Errorf("close %s: %w", l.path, err)
	}
	return nil
}

func (l *Loop) finish(state State, err error) {
	l.state = state
	l.err = err
	l.observer.OnFinished(state, err)
}
