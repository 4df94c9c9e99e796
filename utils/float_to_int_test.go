// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, math.MinInt16},
		{"half positive", 0.5, 16384},
		{"half negative", -0.5, -16384},
		{"quarter positive", 0.25, 8192},
		{"small positive", 0.001, 33},
		{"small negative", -0.001, -33},
		{"one step", 1.0 / 32768, 1},
		// ties round up, toward positive infinity
		{"tie positive", 0.5 / 32768, 1},
		{"tie negative", -0.5 / 32768, 0},
		{"tie below minus one", -1.5 / 32768, -1},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp over min", -1.5, math.MinInt16},
		{"clamp way over max", 100.0, math.MaxInt16},
		{"clamp way under min", -100.0, math.MinInt16},
		{"positive infinity", float32(math.Inf(1)), math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32sToInt16s(t *testing.T) {
	t.Parallel()

	dst := make([]int16, 2)
	n := Float32sToInt16s(dst, []float32{0.5, -0.5, 1})

	if n != 2 {
		t.Fatalf("Float32sToInt16s() = %d, want 2", n)
	}
	if dst[0] != 16384 || dst[1] != -16384 {
		t.Errorf("dst = %v, want [16384 -16384]", dst)
	}
}

func BenchmarkFloat32sToInt16s(b *testing.B) {
	src := make([]float32, 8000)
	dst := make([]int16, 8000)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()

	for b.Loop() {
		Float32sToInt16s(dst, src)
	}
}
