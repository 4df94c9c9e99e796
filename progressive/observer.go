// SPDX-License-Identifier: EPL-2.0

package progressive

import "github.com/ik5/audpeak/peaks"

// Observer is told about every decode pass and, once, about the end of
// the stream. Calls happen on the goroutine that drives the loop.
type Observer interface {
	// OnProgress follows every pass. read is the number of PCM bytes the
	// pass produced; it is 0 on the last one.
	OnProgress(env *peaks.Envelope, read int)
	// OnFinished is called when the loop reaches Done or Failed.
	OnFinished(state State, err error)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Progress func(env *peaks.Envelope, read int)
	Finished func(state State, err error)
}

func (o ObserverFuncs) OnProgress(env *peaks.Envelope, read int) {
	if o.Progress != nil {
		o.Progress(env, read)
	}
}

func (o ObserverFuncs) OnFinished(state State, err error) {
	if o.Finished != nil {
		o.Finished(state, err)
	}
}
