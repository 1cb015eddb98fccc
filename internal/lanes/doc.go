// Package lanes provides the 4-lane float32 kernels underneath the f32
// package.
//
// Two interchangeable backends exist: a portable pure-Go implementation
// and an SSE assembly implementation on amd64. Both operate on the same
// *[4]float32 layout and agree within 1e-6 relative error on every
// operation, so code built on top behaves identically on either path.
//
// Backend selection happens once, at first use: architecture init files
// blank-import the backend packages, each backend registers itself with
// the registry, and the highest-priority entry compatible with the
// detected CPU wins. Hot operations never branch on CPU features.
//
// The purego build tag forces the portable backend.
package lanes
