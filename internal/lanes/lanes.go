package lanes

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-geom/internal/lanes/registry"
)

// The kernels load and store 16 contiguous bytes per lane group; the
// assembly backends depend on this layout.
const (
	_ = uint(unsafe.Sizeof([4]float32{}) - 16)
	_ = uint(16 - unsafe.Sizeof([4]float32{}))
)

var (
	impl     *registry.OpEntry
	implOnce sync.Once
)

func kernels() *registry.OpEntry {
	implOnce.Do(func() {
		impl = registry.Global.Lookup(cpu.DetectFeatures())
		if impl == nil {
			panic("lanes: no kernel backend registered (missing generic fallback?)")
		}
	})
	return impl
}

// resetImplForTest clears the cached backend so dispatch tests can
// force different CPU features.
func resetImplForTest() {
	impl = nil
	implOnce = sync.Once{}
}

// Implementation returns the name of the active backend ("sse2",
// "generic", ...).
func Implementation() string {
	return kernels().Name
}

// Add computes dst[i] = a[i] + b[i].
func Add(dst, a, b *[4]float32) { kernels().Add(dst, a, b) }

// Sub computes dst[i] = a[i] - b[i].
func Sub(dst, a, b *[4]float32) { kernels().Sub(dst, a, b) }

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b *[4]float32) { kernels().Mul(dst, a, b) }

// Div computes dst[i] = a[i] / b[i].
func Div(dst, a, b *[4]float32) { kernels().Div(dst, a, b) }

// Min computes dst[i] = min(a[i], b[i]) with MINPS tie/NaN semantics.
func Min(dst, a, b *[4]float32) { kernels().Min(dst, a, b) }

// Max computes dst[i] = max(a[i], b[i]) with MAXPS tie/NaN semantics.
func Max(dst, a, b *[4]float32) { kernels().Max(dst, a, b) }

// Neg computes dst[i] = -a[i].
func Neg(dst, a *[4]float32) { kernels().Neg(dst, a) }

// Abs computes dst[i] = |a[i]|.
func Abs(dst, a *[4]float32) { kernels().Abs(dst, a) }

// Scale computes dst[i] = a[i] * s.
func Scale(dst, a *[4]float32, s float32) { kernels().Scale(dst, a, s) }

// AddScaled computes dst[i] = a[i] + b[i]*s.
func AddScaled(dst, a, b *[4]float32, s float32) { kernels().AddScaled(dst, a, b, s) }

// Dot returns the 4-lane dot product of a and b.
func Dot(a, b *[4]float32) float32 { return kernels().Dot(a, b) }

// Rsqrt returns 1/sqrt(x) within 1e-6 relative error of the exact
// value, for normal positive x. Zero and denormal inputs produce
// backend-defined non-finite or saturated results.
func Rsqrt(x float32) float32 { return kernels().Rsqrt(x) }
