// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"strings"

	"github.com/ik5/audpeak/peaks"
)

// Block characters from silence to full scale
var levels = []rune(" ▁▂▃▄▅▆▇█")

// RenderWave draws env as one row of block characters, at most width
// cells wide. Each cell shows the loudest of the columns it covers, the
// louder channel winning. Envelopes narrower than width are not stretched.
func RenderWave(env *peaks.Envelope, width int) string {
	if env == nil || width <= 0 {
		return ""
	}

	left, right := env.Snapshot()
	n := len(left)
	if n == 0 {
		return ""
	}

	cells := min(width, n)

	var sb strings.Builder
	for c := range cells {
		from := c * n / cells
		to := max((c+1)*n/cells, from+1)

		peak := 0
		for i := from; i < to; i++ {
			peak = max(peak, left[i], right[i])
		}

		sb.WriteRune(levels[peak*(len(levels)-1)/peaks.MaxPeak])
	}

	return sb.String()
}
