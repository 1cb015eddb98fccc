package f32

import (
	"github.com/cwbudde/algo-geom/internal/debug"
	"github.com/cwbudde/algo-geom/internal/lanes"
)

// Vec3 is a 3-element vector: three consecutive float32 lanes.
type Vec3 [3]float32

// Vec3FromVec2 widens v with the given z lane.
func Vec3FromVec2(v Vec2, z float32) Vec3 { return Vec3{v[0], v[1], z} }

// X returns the first lane.
func (v Vec3) X() float32 { return v[0] }

// Y returns the second lane.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the third lane.
func (v Vec3) Z() float32 { return v[2] }

// Vec2 truncates v to its first two lanes.
func (v Vec3) Vec2() Vec2 { return Vec2{v[0], v[1]} }

// Add returns the componentwise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns the componentwise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Mul returns the componentwise product v * o.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

// Div returns the componentwise quotient v / o.
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v[0] / o[0], v[1] / o[1], v[2] / o[2]} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Abs returns the componentwise absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{abs32(v[0]), abs32(v[1]), abs32(v[2])} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vec3) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 { return sqrt32(v.LengthSquared()) }

// RecipLength returns 1/Length within the library's 1e-6 budget.
func (v Vec3) RecipLength() float32 { return lanes.Rsqrt(v.LengthSquared()) }

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float32 { return v.Sub(o).Length() }

// DistanceSquared returns the squared distance between v and o.
func (v Vec3) DistanceSquared(o Vec3) float32 { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length. For a zero-length input
// the lanes are non-finite per floating-point rules.
func (v Vec3) Normalize() Vec3 {
	out := v.Scale(lanes.Rsqrt(v.LengthSquared()))
	debug.AssertUnit("Vec3.Normalize", out.LengthSquared())
	return out
}

// IsNormalized reports whether v is unit length within UnitEpsilon.
func (v Vec3) IsNormalized() bool { return abs32(v.Length()-1) <= UnitEpsilon }

// IsNaN reports whether any lane is NaN.
func (v Vec3) IsNaN() bool { return isNaN32(v[0]) || isNaN32(v[1]) || isNaN32(v[2]) }

// Lerp linearly interpolates from v to o by t. The factor is not
// clamped; values outside [0, 1] extrapolate.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 { return v.Add(o.Sub(v).Scale(t)) }

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{min32(v[0], o[0]), min32(v[1], o[1]), min32(v[2], o[2])}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{max32(v[0], o[0]), max32(v[1], o[1]), max32(v[2], o[2])}
}

// Clamp returns v with each lane limited to [lo, hi].
func (v Vec3) Clamp(lo, hi Vec3) Vec3 { return v.Max(lo).Min(hi) }

// MinElement returns the smallest lane value.
func (v Vec3) MinElement() float32 { return min32(v[0], min32(v[1], v[2])) }

// MaxElement returns the largest lane value.
func (v Vec3) MaxElement() float32 { return max32(v[0], max32(v[1], v[2])) }

// CmpEq compares lanes for equality.
func (v Vec3) CmpEq(o Vec3) Vec3Mask {
	return Vec3MaskFromBools(v[0] == o[0], v[1] == o[1], v[2] == o[2])
}

// CmpNe compares lanes for inequality.
func (v Vec3) CmpNe(o Vec3) Vec3Mask {
	return Vec3MaskFromBools(v[0] != o[0], v[1] != o[1], v[2] != o[2])
}

// CmpLt compares lanes with <.
func (v Vec3) CmpLt(o Vec3) Vec3Mask {
	return Vec3MaskFromBools(v[0] < o[0], v[1] < o[1], v[2] < o[2])
}

// CmpLe compares lanes with <=.
func (v Vec3) CmpLe(o Vec3) Vec3Mask {
	return Vec3MaskFromBools(v[0] <= o[0], v[1] <= o[1], v[2] <= o[2])
}

// CmpGt compares lanes with >.
func (v Vec3) CmpGt(o Vec3) Vec3Mask {
	return Vec3MaskFromBools(v[0] > o[0], v[1] > o[1], v[2] > o[2])
}

// CmpGe compares lanes with >=.
func (v Vec3) CmpGe(o Vec3) Vec3Mask {
	return Vec3MaskFromBools(v[0] >= o[0], v[1] >= o[1], v[2] >= o[2])
}
