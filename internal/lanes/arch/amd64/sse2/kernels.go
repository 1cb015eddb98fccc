//go:build amd64 && !purego

package sse2

// Assembly kernel declarations (implemented in kernels.s).
//
// All 4-lane kernels load and store through MOVUPS, so the pointed-to
// arrays only need Go's natural 4-byte alignment.

//go:noescape
func add4(dst, a, b *[4]float32)

//go:noescape
func sub4(dst, a, b *[4]float32)

//go:noescape
func mul4(dst, a, b *[4]float32)

//go:noescape
func div4(dst, a, b *[4]float32)

//go:noescape
func min4(dst, a, b *[4]float32)

//go:noescape
func max4(dst, a, b *[4]float32)

//go:noescape
func neg4(dst, a *[4]float32)

//go:noescape
func abs4(dst, a *[4]float32)

//go:noescape
func scale4(dst, a *[4]float32, s float32)

//go:noescape
func addScaled4(dst, a, b *[4]float32, s float32)

//go:noescape
func dot4(a, b *[4]float32) float32

// rsqrt4 computes 1/sqrt(x) as RSQRTSS refined by one Newton-Raphson
// step, which lands at roughly 2e-7 relative error, well inside the
// shared 1e-6 budget. Defined for normal positive inputs; zero and
// denormals propagate non-finite values.
//
//go:noescape
func rsqrt4(x float32) float32
