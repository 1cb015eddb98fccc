// Package f32 provides fixed-width float32 vectors, matrices and
// quaternions for real-time graphics and simulation code.
//
// All types are plain value types: Vec2/Vec3/Vec4 are float32 arrays,
// Mat2/Mat3/Mat4 are arrays of column vectors (column-major, column
// vectors multiply on the right), Quat is an (x, y, z, w) array. No
// operation allocates, blocks, or mutates its receiver; every value can
// be shared freely across goroutines.
//
// The 4-lane shapes (Vec4, Quat, Mat4 columns) execute on the kernel
// layer in internal/lanes, which selects between an SSE assembly
// backend and a portable Go backend once at startup. Both backends
// agree within 1e-6 relative error on every operation and share the
// exact memory layout, so results are reproducible across paths.
// Vec2/Vec3/Mat2/Mat3 use portable arithmetic on every path but share
// the kernel layer's reciprocal square root, keeping normalization
// under one error budget everywhere. The purego build tag forces the
// portable backend.
//
// Degenerate inputs never panic in default builds: normalizing a zero
// vector or inverting a singular matrix propagates non-finite values
// per ordinary floating-point rules. Building with -tags geomassert
// compiles in development assertions that panic when an operation
// documented to require a unit-length input or output sees a violation;
// the default build contains no trace of these checks. The fastmath tag
// swaps scalar square roots for the algo-approx approximations.
package f32
