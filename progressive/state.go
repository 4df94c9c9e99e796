// SPDX-License-Identifier: EPL-2.0

package progressive

type State int

const (
	Idle State = iota
	Opening
	Streaming
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Opening:
		return "opening"
	case Streaming:
		return "streaming"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further reads will happen.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}
