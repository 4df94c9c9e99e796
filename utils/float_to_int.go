// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Input is
// clamped to [-1, 1], scaled by 32768 and rounded half up; +1.0 saturates at
// 32767.
func Float32ToInt16(x float32) int16 {
	v := math.Floor(float64(x)*32768 + 0.5)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Float32sToInt16s converts src into dst and returns the number converted,
// min(len(dst), len(src)).
func Float32sToInt16s(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}
