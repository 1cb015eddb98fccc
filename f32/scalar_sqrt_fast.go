//go:build fastmath

package f32

import "github.com/meko-christian/algo-approx"

// sqrt32 computes sqrt(x) using fast approximation. Lengths and
// distances computed under this tag trade a few ULP for speed;
// Normalize is unaffected since it goes through the kernel layer's
// reciprocal square root.
func sqrt32(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
