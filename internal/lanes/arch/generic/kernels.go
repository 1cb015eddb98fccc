package generic

import "math"

// Add computes dst[i] = a[i] + b[i].
// This is the pure Go fallback implementation.
func Add(dst, a, b *[4]float32) {
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
}

// Sub computes dst[i] = a[i] - b[i].
func Sub(dst, a, b *[4]float32) {
	dst[0] = a[0] - b[0]
	dst[1] = a[1] - b[1]
	dst[2] = a[2] - b[2]
	dst[3] = a[3] - b[3]
}

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b *[4]float32) {
	dst[0] = a[0] * b[0]
	dst[1] = a[1] * b[1]
	dst[2] = a[2] * b[2]
	dst[3] = a[3] * b[3]
}

// Div computes dst[i] = a[i] / b[i].
func Div(dst, a, b *[4]float32) {
	dst[0] = a[0] / b[0]
	dst[1] = a[1] / b[1]
	dst[2] = a[2] / b[2]
	dst[3] = a[3] / b[3]
}

// Min computes dst[i] = min(a[i], b[i]).
//
// Matches SSE MINPS semantics: the second operand wins when either
// input is NaN or when comparing signed zeros.
func Min(dst, a, b *[4]float32) {
	for i := 0; i < 4; i++ {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Max computes dst[i] = max(a[i], b[i]), with MAXPS semantics.
func Max(dst, a, b *[4]float32) {
	for i := 0; i < 4; i++ {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Neg computes dst[i] = -a[i].
// Implemented as a sign-bit flip so -0 behaves identically to the
// XORPS-based accelerated kernel.
func Neg(dst, a *[4]float32) {
	for i := 0; i < 4; i++ {
		dst[i] = math.Float32frombits(math.Float32bits(a[i]) ^ 0x80000000)
	}
}

// Abs computes dst[i] = |a[i]| by clearing the sign bit.
func Abs(dst, a *[4]float32) {
	for i := 0; i < 4; i++ {
		dst[i] = math.Float32frombits(math.Float32bits(a[i]) &^ 0x80000000)
	}
}

// Scale computes dst[i] = a[i] * s.
func Scale(dst, a *[4]float32, s float32) {
	dst[0] = a[0] * s
	dst[1] = a[1] * s
	dst[2] = a[2] * s
	dst[3] = a[3] * s
}

// AddScaled computes dst[i] = a[i] + b[i]*s.
func AddScaled(dst, a, b *[4]float32, s float32) {
	dst[0] = a[0] + b[0]*s
	dst[1] = a[1] + b[1]*s
	dst[2] = a[2] + b[2]*s
	dst[3] = a[3] + b[3]*s
}

// Dot returns a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3].
//
// Summation order matches the accelerated kernel's pairwise horizontal
// add: (a0b0+a1b1) + (a2b2+a3b3).
func Dot(a, b *[4]float32) float32 {
	return (a[0]*b[0] + a[1]*b[1]) + (a[2]*b[2] + a[3]*b[3])
}

// Rsqrt returns 1/sqrt(x) computed in float64 and rounded once, which
// keeps the portable path within the shared 1e-6 relative error budget.
func Rsqrt(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}
