// SPDX-License-Identifier: EPL-2.0

package progressive

import (
	"time"

	"github.com/ik5/audpeak/internal/config"
)

// Ticker delivers the periodic signal that drives a Loop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker wraps a time.Ticker. A non-positive d uses the default
// tick interval.
func NewTimeTicker(d time.Duration) Ticker {
	if d <= 0 {
		d = config.TickInterval
	}
	return &timeTicker{t: time.NewTicker(d)}
}

func (t *timeTicker) C() <-chan time.Time { return t.t.C }
func (t *timeTicker) Stop()               { t.t.Stop() }
