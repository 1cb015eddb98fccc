// Package testutil provides shared tolerance helpers for kernel tests.
package testutil

import "math"

// Within reports whether got matches want within a relative tolerance.
// A NaN want matches only a NaN got. A zero want switches to absolute
// tolerance, since the relative error is undefined there.
func Within(got, want, tol float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	if got == want {
		return true
	}
	diff := math.Abs(got - want)
	if want == 0 {
		return diff < tol
	}
	return diff/math.Abs(want) < tol
}

// LanesWithin reports whether every lane of got matches want per Within.
func LanesWithin(got, want [4]float32, tol float64) bool {
	for i := range got {
		if !Within(float64(got[i]), float64(want[i]), tol) {
			return false
		}
	}
	return true
}

// MaxRelDiff returns the largest per-lane relative difference between
// got and want, using absolute difference for zero reference lanes.
func MaxRelDiff(got, want [4]float32) float64 {
	maxDiff := 0.0
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		d := math.Abs(g - w)
		if w != 0 {
			d /= math.Abs(w)
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
