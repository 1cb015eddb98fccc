//go:build !fastmath

package f32

import "math"

// sqrt32 computes sqrt(x) using the standard library.
func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
