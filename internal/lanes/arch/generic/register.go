package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-geom/internal/lanes/registry"
)

// init registers the portable fallback backend.
//
// Priority 0: selected only when no SIMD backend is compatible, or when
// detection is forced generic (purego builds, tests).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Add:       Add,
		Sub:       Sub,
		Mul:       Mul,
		Div:       Div,
		Min:       Min,
		Max:       Max,
		Neg:       Neg,
		Abs:       Abs,
		Scale:     Scale,
		AddScaled: AddScaled,
		Dot:       Dot,
		Rsqrt:     Rsqrt,
	})
}
