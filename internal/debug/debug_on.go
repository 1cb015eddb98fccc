//go:build geomassert

package debug

import (
	"fmt"
	"math"
)

// Enabled reports whether assertions are compiled into this build.
const Enabled = true

// unitEps is the unit-length tolerance applied to |length - 1|.
var unitEps float32 = 1e-6

// AssertUnit panics if the value whose squared length is lengthSq is
// not unit length within the configured epsilon. op names the API
// operation whose contract was violated.
func AssertUnit(op string, lengthSq float32) {
	l := math.Sqrt(float64(lengthSq))
	if math.Abs(l-1) > float64(unitEps) {
		panic(fmt.Sprintf("geom: %s requires a normalized input (length %g)", op, l))
	}
}

// SetUnitEpsilon overrides the unit-length tolerance (default 1e-6).
func SetUnitEpsilon(eps float32) {
	unitEps = eps
}
