package f32

import "math"

// UnitEpsilon is the tolerance used by IsNormalized and by the
// assertion layer's default unit-length check.
const UnitEpsilon float32 = 1e-6

func sinCos32(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

func tan32(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func isNaN32(x float32) bool {
	return x != x
}
