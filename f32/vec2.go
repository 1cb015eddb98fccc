package f32

import (
	"github.com/cwbudde/algo-geom/internal/debug"
	"github.com/cwbudde/algo-geom/internal/lanes"
)

// Vec2 is a 2-element vector: two consecutive float32 lanes.
type Vec2 [2]float32

// X returns the first lane.
func (v Vec2) X() float32 { return v[0] }

// Y returns the second lane.
func (v Vec2) Y() float32 { return v[1] }

// Add returns the componentwise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns the componentwise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Mul returns the componentwise product v * o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v[0] * o[0], v[1] * o[1]} }

// Div returns the componentwise quotient v / o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v[0] / o[0], v[1] / o[1]} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Abs returns the componentwise absolute value.
func (v Vec2) Abs() Vec2 { return Vec2{abs32(v[0]), abs32(v[1])} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v[0]*o[0] + v[1]*o[1] }

// LengthSquared returns the squared Euclidean length of v.
func (v Vec2) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 { return sqrt32(v.LengthSquared()) }

// RecipLength returns 1/Length within the library's 1e-6 budget.
func (v Vec2) RecipLength() float32 { return lanes.Rsqrt(v.LengthSquared()) }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float32 { return v.Sub(o).Length() }

// DistanceSquared returns the squared distance between v and o.
func (v Vec2) DistanceSquared(o Vec2) float32 { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length. For a zero-length input
// the lanes are non-finite per floating-point rules.
func (v Vec2) Normalize() Vec2 {
	out := v.Scale(lanes.Rsqrt(v.LengthSquared()))
	debug.AssertUnit("Vec2.Normalize", out.LengthSquared())
	return out
}

// IsNormalized reports whether v is unit length within UnitEpsilon.
func (v Vec2) IsNormalized() bool { return abs32(v.Length()-1) <= UnitEpsilon }

// IsNaN reports whether any lane is NaN.
func (v Vec2) IsNaN() bool { return isNaN32(v[0]) || isNaN32(v[1]) }

// Lerp linearly interpolates from v to o by t. The factor is not
// clamped; values outside [0, 1] extrapolate.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 { return v.Add(o.Sub(v).Scale(t)) }

// Min returns the componentwise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{min32(v[0], o[0]), min32(v[1], o[1])}
}

// Max returns the componentwise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{max32(v[0], o[0]), max32(v[1], o[1])}
}

// Clamp returns v with each lane limited to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 { return v.Max(lo).Min(hi) }

// MinElement returns the smallest lane value.
func (v Vec2) MinElement() float32 { return min32(v[0], v[1]) }

// MaxElement returns the largest lane value.
func (v Vec2) MaxElement() float32 { return max32(v[0], v[1]) }

// CmpEq compares lanes for equality.
func (v Vec2) CmpEq(o Vec2) Vec2Mask { return Vec2MaskFromBools(v[0] == o[0], v[1] == o[1]) }

// CmpNe compares lanes for inequality.
func (v Vec2) CmpNe(o Vec2) Vec2Mask { return Vec2MaskFromBools(v[0] != o[0], v[1] != o[1]) }

// CmpLt compares lanes with <.
func (v Vec2) CmpLt(o Vec2) Vec2Mask { return Vec2MaskFromBools(v[0] < o[0], v[1] < o[1]) }

// CmpLe compares lanes with <=.
func (v Vec2) CmpLe(o Vec2) Vec2Mask { return Vec2MaskFromBools(v[0] <= o[0], v[1] <= o[1]) }

// CmpGt compares lanes with >.
func (v Vec2) CmpGt(o Vec2) Vec2Mask { return Vec2MaskFromBools(v[0] > o[0], v[1] > o[1]) }

// CmpGe compares lanes with >=.
func (v Vec2) CmpGe(o Vec2) Vec2Mask { return Vec2MaskFromBools(v[0] >= o[0], v[1] >= o[1]) }

// min32/max32 follow MINPS/MAXPS semantics: the second operand wins on
// NaN and signed-zero ties, matching the kernel layer.
func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
