// SPDX-License-Identifier: EPL-2.0

package audpeak

import (
	"github.com/ik5/audpeak/peaks"
	"github.com/ik5/audpeak/progressive"
)

// BuildEnvelope opens path through src and decodes it to the end without
// waiting between passes. It is the synchronous counterpart of a Track,
// for callers that only want the finished overview.
//
// src is closed before BuildEnvelope returns. On a decode failure the
// envelope built so far is returned together with the error.
//
// Example:
//
//	src := source.New(storage.FileBackend{})
//	env, err := audpeak.BuildEnvelope(src, "kick.wav", progressive.WithWidth(800))
//	if err != nil {
//	    return err
//	}
//	left, right := env.Snapshot()
func BuildEnvelope(src progressive.Source, path string, opts ...progressive.Option) (*peaks.Envelope, error) {
	l := progressive.New(src, opts...)
	if err := l.Attach(path); err != nil {
		return nil, err
	}

	for {
		state, err := l.Tick()
		if err != nil {
			return l.Envelope(), err
		}
		if state.Terminal() {
			return l.Envelope(), nil
		}
	}
}
