package f32

import (
	"github.com/cwbudde/algo-geom/internal/debug"
	"github.com/cwbudde/algo-geom/internal/lanes"
)

// Vec4 is a 4-element vector: four consecutive float32 lanes. Its
// arithmetic runs on the kernel layer's active backend.
type Vec4 [4]float32

// Vec4FromVec3 widens v with the given w lane.
func Vec4FromVec3(v Vec3, w float32) Vec4 { return Vec4{v[0], v[1], v[2], w} }

func (v *Vec4) ptr() *[4]float32 { return (*[4]float32)(v) }

// X returns the first lane.
func (v Vec4) X() float32 { return v[0] }

// Y returns the second lane.
func (v Vec4) Y() float32 { return v[1] }

// Z returns the third lane.
func (v Vec4) Z() float32 { return v[2] }

// W returns the fourth lane.
func (v Vec4) W() float32 { return v[3] }

// Vec3 truncates v to its first three lanes.
func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// Add returns the componentwise sum v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	var out Vec4
	lanes.Add(out.ptr(), v.ptr(), o.ptr())
	return out
}

// Sub returns the componentwise difference v - o.
func (v Vec4) Sub(o Vec4) Vec4 {
	var out Vec4
	lanes.Sub(out.ptr(), v.ptr(), o.ptr())
	return out
}

// Mul returns the componentwise product v * o.
func (v Vec4) Mul(o Vec4) Vec4 {
	var out Vec4
	lanes.Mul(out.ptr(), v.ptr(), o.ptr())
	return out
}

// Div returns the componentwise quotient v / o.
func (v Vec4) Div(o Vec4) Vec4 {
	var out Vec4
	lanes.Div(out.ptr(), v.ptr(), o.ptr())
	return out
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	var out Vec4
	lanes.Neg(out.ptr(), v.ptr())
	return out
}

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 {
	var out Vec4
	lanes.Scale(out.ptr(), v.ptr(), s)
	return out
}

// Abs returns the componentwise absolute value.
func (v Vec4) Abs() Vec4 {
	var out Vec4
	lanes.Abs(out.ptr(), v.ptr())
	return out
}

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) float32 { return lanes.Dot(v.ptr(), o.ptr()) }

// LengthSquared returns the squared Euclidean length of v.
func (v Vec4) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vec4) Length() float32 { return sqrt32(v.LengthSquared()) }

// RecipLength returns 1/Length within the library's 1e-6 budget.
func (v Vec4) RecipLength() float32 { return lanes.Rsqrt(v.LengthSquared()) }

// Distance returns the Euclidean distance between v and o.
func (v Vec4) Distance(o Vec4) float32 { return v.Sub(o).Length() }

// DistanceSquared returns the squared distance between v and o.
func (v Vec4) DistanceSquared(o Vec4) float32 { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length. For a zero-length input
// the lanes are non-finite per floating-point rules.
func (v Vec4) Normalize() Vec4 {
	out := v.Scale(lanes.Rsqrt(v.LengthSquared()))
	debug.AssertUnit("Vec4.Normalize", out.LengthSquared())
	return out
}

// IsNormalized reports whether v is unit length within UnitEpsilon.
func (v Vec4) IsNormalized() bool { return abs32(v.Length()-1) <= UnitEpsilon }

// IsNaN reports whether any lane is NaN.
func (v Vec4) IsNaN() bool {
	return isNaN32(v[0]) || isNaN32(v[1]) || isNaN32(v[2]) || isNaN32(v[3])
}

// Lerp linearly interpolates from v to o by t. The factor is not
// clamped; values outside [0, 1] extrapolate.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	var out Vec4
	lanes.Sub(out.ptr(), o.ptr(), v.ptr())
	lanes.AddScaled(out.ptr(), v.ptr(), out.ptr(), t)
	return out
}

// Min returns the componentwise minimum of v and o.
func (v Vec4) Min(o Vec4) Vec4 {
	var out Vec4
	lanes.Min(out.ptr(), v.ptr(), o.ptr())
	return out
}

// Max returns the componentwise maximum of v and o.
func (v Vec4) Max(o Vec4) Vec4 {
	var out Vec4
	lanes.Max(out.ptr(), v.ptr(), o.ptr())
	return out
}

// Clamp returns v with each lane limited to [lo, hi].
func (v Vec4) Clamp(lo, hi Vec4) Vec4 { return v.Max(lo).Min(hi) }

// MinElement returns the smallest lane value.
func (v Vec4) MinElement() float32 {
	return min32(min32(v[0], v[1]), min32(v[2], v[3]))
}

// MaxElement returns the largest lane value.
func (v Vec4) MaxElement() float32 {
	return max32(max32(v[0], v[1]), max32(v[2], v[3]))
}

// CmpEq compares lanes for equality.
func (v Vec4) CmpEq(o Vec4) Vec4Mask {
	return Vec4MaskFromBools(v[0] == o[0], v[1] == o[1], v[2] == o[2], v[3] == o[3])
}

// CmpNe compares lanes for inequality.
func (v Vec4) CmpNe(o Vec4) Vec4Mask {
	return Vec4MaskFromBools(v[0] != o[0], v[1] != o[1], v[2] != o[2], v[3] != o[3])
}

// CmpLt compares lanes with <.
func (v Vec4) CmpLt(o Vec4) Vec4Mask {
	return Vec4MaskFromBools(v[0] < o[0], v[1] < o[1], v[2] < o[2], v[3] < o[3])
}

// CmpLe compares lanes with <=.
func (v Vec4) CmpLe(o Vec4) Vec4Mask {
	return Vec4MaskFromBools(v[0] <= o[0], v[1] <= o[1], v[2] <= o[2], v[3] <= o[3])
}

// CmpGt compares lanes with >.
func (v Vec4) CmpGt(o Vec4) Vec4Mask {
	return Vec4MaskFromBools(v[0] > o[0], v[1] > o[1], v[2] > o[2], v[3] > o[3])
}

// CmpGe compares lanes with >=.
func (v Vec4) CmpGe(o Vec4) Vec4Mask {
	return Vec4MaskFromBools(v[0] >= o[0], v[1] >= o[1], v[2] >= o[2], v[3] >= o[3])
}
