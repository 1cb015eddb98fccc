package f32

import (
	"github.com/cwbudde/algo-geom/internal/debug"
	"github.com/cwbudde/algo-geom/internal/lanes"
)

// Quat is a rotation quaternion stored as four consecutive float32
// lanes in (x, y, z, w) order. Only unit-length quaternions represent
// rotations; non-unit values are valid transients and must be
// normalized explicitly before use as a rotation. Operations that
// assume a unit input (RotateVec3, matrix conversion, Inverse) do not
// re-normalize; assertion builds verify the contract at entry.
type Quat [4]float32

func (q *Quat) ptr() *[4]float32 { return (*[4]float32)(q) }

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

// QuatFromXYZW builds a quaternion from raw lanes.
func QuatFromXYZW(x, y, z, w float32) Quat { return Quat{x, y, z, w} }

// X returns the first imaginary lane.
func (q Quat) X() float32 { return q[0] }

// Y returns the second imaginary lane.
func (q Quat) Y() float32 { return q[1] }

// Z returns the third imaginary lane.
func (q Quat) Z() float32 { return q[2] }

// W returns the real lane.
func (q Quat) W() float32 { return q[3] }

// Vec4 returns the lanes as a plain vector.
func (q Quat) Vec4() Vec4 { return Vec4(q) }

// QuatFromAxisAngle builds a rotation of angle radians around axis.
// The axis must be normalized; assertion builds verify this.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	debug.AssertUnit("QuatFromAxisAngle", axis.LengthSquared())

	sin, cos := sinCos32(angle * 0.5)
	return Quat{axis[0] * sin, axis[1] * sin, axis[2] * sin, cos}
}

// QuatFromRotationX builds a rotation of angle radians around the x
// axis.
func QuatFromRotationX(angle float32) Quat {
	sin, cos := sinCos32(angle * 0.5)
	return Quat{sin, 0, 0, cos}
}

// QuatFromRotationY builds a rotation of angle radians around the y
// axis.
func QuatFromRotationY(angle float32) Quat {
	sin, cos := sinCos32(angle * 0.5)
	return Quat{0, sin, 0, cos}
}

// QuatFromRotationZ builds a rotation of angle radians around the z
// axis.
func QuatFromRotationZ(angle float32) Quat {
	sin, cos := sinCos32(angle * 0.5)
	return Quat{0, 0, sin, cos}
}

// QuatFromYawPitchRoll builds a rotation from Euler angles applied as
// yaw around y, then pitch around x, then roll around z (right to
// left: q = yaw * pitch * roll).
func QuatFromYawPitchRoll(yaw, pitch, roll float32) Quat {
	return QuatFromRotationY(yaw).Mul(QuatFromRotationX(pitch)).Mul(QuatFromRotationZ(roll))
}

// QuatFromMat3 extracts the rotation of a rotation matrix. The four
// sign branches of the trace-based algorithm are selected by largest
// magnitude so the division below is never degenerate.
func QuatFromMat3(m Mat3) Quat {
	m00, m01, m02 := m[0][0], m[0][1], m[0][2]
	m10, m11, m12 := m[1][0], m[1][1], m[1][2]
	m20, m21, m22 := m[2][0], m[2][1], m[2][2]

	if m22 <= 0 {
		// x^2 + y^2 >= z^2 + w^2
		dif10 := m11 - m00
		omm22 := 1 - m22
		if dif10 <= 0 {
			// x^2 >= y^2
			fourXSq := omm22 - dif10
			inv4x := 0.5 / sqrt32(fourXSq)
			return Quat{fourXSq * inv4x, (m01 + m10) * inv4x, (m02 + m20) * inv4x, (m12 - m21) * inv4x}
		}
		fourYSq := omm22 + dif10
		inv4y := 0.5 / sqrt32(fourYSq)
		return Quat{(m01 + m10) * inv4y, fourYSq * inv4y, (m12 + m21) * inv4y, (m20 - m02) * inv4y}
	}

	// z^2 + w^2 >= x^2 + y^2
	sum10 := m11 + m00
	opm22 := 1 + m22
	if sum10 <= 0 {
		// z^2 >= w^2
		fourZSq := opm22 - sum10
		inv4z := 0.5 / sqrt32(fourZSq)
		return Quat{(m02 + m20) * inv4z, (m12 + m21) * inv4z, fourZSq * inv4z, (m01 - m10) * inv4z}
	}
	fourWSq := opm22 + sum10
	inv4w := 0.5 / sqrt32(fourWSq)
	return Quat{(m12 - m21) * inv4w, (m20 - m02) * inv4w, (m01 - m10) * inv4w, fourWSq * inv4w}
}

// QuatFromMat4 extracts the rotation of the upper-left 3x3 block.
func QuatFromMat4(m Mat4) Quat { return QuatFromMat3(m.Mat3()) }

// Mat3 returns the rotation matrix of q. See Mat3FromQuat.
func (q Quat) Mat3() Mat3 { return Mat3FromQuat(q) }

// Mat4 returns the rotation transform of q. See Mat4FromQuat.
func (q Quat) Mat4() Mat4 { return Mat4FromQuat(q) }

// Mul returns the Hamilton product q * o: the rotation o followed by q,
// consistent with the column-vector convention.
func (q Quat) Mul(o Quat) Quat {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	ox, oy, oz, ow := o[0], o[1], o[2], o[3]
	return Quat{
		qw*ox + qx*ow + qy*oz - qz*oy,
		qw*oy - qx*oz + qy*ow + qz*ox,
		qw*oz + qx*oy - qy*ox + qz*ow,
		qw*ow - qx*ox - qy*oy - qz*oz,
	}
}

// Dot returns the 4-lane dot product of q and o.
func (q Quat) Dot(o Quat) float32 { return lanes.Dot(q.ptr(), o.ptr()) }

// LengthSquared returns the squared length of q.
func (q Quat) LengthSquared() float32 { return q.Dot(q) }

// Length returns the length of q.
func (q Quat) Length() float32 { return sqrt32(q.LengthSquared()) }

// Normalize returns q scaled to unit length. A zero quaternion
// propagates non-finite lanes.
func (q Quat) Normalize() Quat {
	r := lanes.Rsqrt(q.LengthSquared())
	var out Quat
	lanes.Scale(out.ptr(), q.ptr(), r)
	debug.AssertUnit("Quat.Normalize", out.LengthSquared())
	return out
}

// IsNormalized reports whether q is unit length within UnitEpsilon.
func (q Quat) IsNormalized() bool { return abs32(q.Length()-1) <= UnitEpsilon }

// Conjugate returns q with the imaginary lanes negated.
func (q Quat) Conjugate() Quat { return Quat{-q[0], -q[1], -q[2], q[3]} }

// Inverse returns the rotation undoing q. q must be a unit quaternion,
// for which the inverse is the conjugate; assertion builds verify this.
func (q Quat) Inverse() Quat {
	debug.AssertUnit("Quat.Inverse", q.LengthSquared())
	return q.Conjugate()
}

// Neg returns q with every lane negated. -q encodes the same rotation
// as q (double cover).
func (q Quat) Neg() Quat {
	var out Quat
	lanes.Neg(out.ptr(), q.ptr())
	return out
}

// RotateVec3 rotates v by the unit quaternion q, using the double-cross
// expansion of q * v * q^-1 rather than two Hamilton products.
// Assertion builds verify that q is normalized.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	debug.AssertUnit("Quat.RotateVec3", q.LengthSquared())

	b := Vec3{q[0], q[1], q[2]}
	w := q[3]
	b2 := b.Dot(b)
	return v.Scale(w*w - b2).
		Add(b.Scale(v.Dot(b) * 2)).
		Add(b.Cross(v).Scale(w * 2))
}

// Lerp linearly interpolates the lanes from q to o by t and normalizes
// the result. The factor is not clamped.
func (q Quat) Lerp(o Quat, t float32) Quat {
	var out Quat
	lanes.Sub(out.ptr(), o.ptr(), q.ptr())
	lanes.AddScaled(out.ptr(), q.ptr(), out.ptr(), t)
	return out.Normalize()
}

// Slerp interpolates along the great arc from q to o by t, taking the
// shorter path. Falls back to Lerp when the inputs are nearly parallel,
// where the sin terms lose precision.
func (q Quat) Slerp(o Quat, t float32) Quat {
	const dotThreshold = 0.9995

	d := q.Dot(o)
	if d < 0 {
		o = o.Neg()
		d = -d
	}
	if d > dotThreshold {
		return q.Lerp(o, t)
	}

	theta := acos32(d)
	sinTheta, _ := sinCos32(theta)
	sa, _ := sinCos32(theta * (1 - t))
	sb, _ := sinCos32(theta * t)

	var out Quat
	lanes.Scale(out.ptr(), q.ptr(), sa/sinTheta)
	lanes.AddScaled(out.ptr(), out.ptr(), o.ptr(), sb/sinTheta)
	return out
}
