//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-geom/internal/lanes/registry"
)

// init registers the SSE-accelerated backend.
//
// SSE is part of the x86-64 baseline, so this backend is compatible
// with every amd64 CPU. Wider variants (AVX permutes for Mat4 columns)
// would register here at a higher priority.
//
// Priority: 10 (preferred over generic).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Add:       add4,
		Sub:       sub4,
		Mul:       mul4,
		Div:       div4,
		Min:       min4,
		Max:       max4,
		Neg:       neg4,
		Abs:       abs4,
		Scale:     scale4,
		AddScaled: addScaled4,
		Dot:       dot4,
		Rsqrt:     rsqrt4,
	})
}
