//go:build !geomassert

// Package debug is the correctness-assertion layer of algo-geom.
//
// By default every assertion is an empty function behind a false
// constant: the compiler inlines and eliminates the calls, so release
// builds carry no check, no branch, and no message strings. Building
// with -tags geomassert compiles the checks in; a violated assertion
// panics with the name of the offending operation.
package debug

// Enabled reports whether assertions are compiled into this build.
const Enabled = false

// AssertUnit checks that a value whose squared length is lengthSq is
// unit length within the configured epsilon. No-op in this build.
func AssertUnit(op string, lengthSq float32) {}

// SetUnitEpsilon overrides the unit-length tolerance. No-op in this
// build; present so callers need no build-tag split of their own.
func SetUnitEpsilon(eps float32) {}
