package f32

import (
	"github.com/cwbudde/algo-geom/internal/debug"
	"github.com/cwbudde/algo-geom/internal/lanes"
)

// Mat4 is a 4x4 column-major matrix: m[c] is column c, m[c][r] the
// element in row r of that column. Column vectors multiply on the
// right, so composed transforms apply right to left.
type Mat4 [4]Vec4

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Mat4FromCols builds a matrix from four column vectors.
func Mat4FromCols(x, y, z, w Vec4) Mat4 { return Mat4{x, y, z, w} }

// Mat4FromRows builds a matrix from four row vectors.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4FromCols(r0, r1, r2, r3).Transpose()
}

// Mat4FromColsArray builds a matrix from a [16]float32 in column-major
// order. Row-major data must be transposed after conversion.
func Mat4FromColsArray(a [16]float32) Mat4 {
	return Mat4{
		{a[0], a[1], a[2], a[3]},
		{a[4], a[5], a[6], a[7]},
		{a[8], a[9], a[10], a[11]},
		{a[12], a[13], a[14], a[15]},
	}
}

// ColsArray returns the matrix as a [16]float32 in column-major order.
func (m Mat4) ColsArray() [16]float32 {
	return [16]float32{
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3],
	}
}

// Mat4FromDiagonal builds a matrix with d on the diagonal.
func Mat4FromDiagonal(d Vec4) Mat4 {
	return Mat4{{d[0], 0, 0, 0}, {0, d[1], 0, 0}, {0, 0, d[2], 0}, {0, 0, 0, d[3]}}
}

// Mat4FromScale builds a non-uniform scale transform.
func Mat4FromScale(scale Vec3) Mat4 {
	return Mat4FromDiagonal(Vec4{scale[0], scale[1], scale[2], 1})
}

// Mat4FromTranslation builds a translation transform.
func Mat4FromTranslation(t Vec3) Mat4 {
	return Mat4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {t[0], t[1], t[2], 1}}
}

// Mat4FromQuat builds the rotation transform of a unit quaternion.
func Mat4FromQuat(q Quat) Mat4 {
	return mat4FromMat3Translation(Mat3FromQuat(q), Vec3{})
}

// Mat4FromAxisAngle builds a rotation of angle radians around axis.
// The axis must be normalized; assertion builds verify this.
func Mat4FromAxisAngle(axis Vec3, angle float32) Mat4 {
	return mat4FromMat3Translation(Mat3FromAxisAngle(axis, angle), Vec3{})
}

// Mat4FromRotationX builds a rotation of angle radians around the x
// axis.
func Mat4FromRotationX(angle float32) Mat4 {
	return mat4FromMat3Translation(Mat3FromRotationX(angle), Vec3{})
}

// Mat4FromRotationY builds a rotation of angle radians around the y
// axis.
func Mat4FromRotationY(angle float32) Mat4 {
	return mat4FromMat3Translation(Mat3FromRotationY(angle), Vec3{})
}

// Mat4FromRotationZ builds a rotation of angle radians around the z
// axis.
func Mat4FromRotationZ(angle float32) Mat4 {
	return mat4FromMat3Translation(Mat3FromRotationZ(angle), Vec3{})
}

// Mat4FromScaleRotationTranslation composes scale, then rotation, then
// translation. A near-zero scale lane is accepted as-is and produces a
// degenerate (non-invertible) transform.
func Mat4FromScaleRotationTranslation(scale Vec3, rot Quat, t Vec3) Mat4 {
	r := Mat3FromQuat(rot)
	return Mat4{
		Vec4FromVec3(r[0].Scale(scale[0]), 0),
		Vec4FromVec3(r[1].Scale(scale[1]), 0),
		Vec4FromVec3(r[2].Scale(scale[2]), 0),
		Vec4FromVec3(t, 1),
	}
}

func mat4FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		Vec4FromVec3(r[0], 0),
		Vec4FromVec3(r[1], 0),
		Vec4FromVec3(r[2], 0),
		Vec4FromVec3(t, 1),
	}
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{m[0].Vec3(), m[1].Vec3(), m[2].Vec3()}
}

// XAxis returns column 0.
func (m Mat4) XAxis() Vec4 { return m[0] }

// YAxis returns column 1.
func (m Mat4) YAxis() Vec4 { return m[1] }

// ZAxis returns column 2.
func (m Mat4) ZAxis() Vec4 { return m[2] }

// WAxis returns column 3.
func (m Mat4) WAxis() Vec4 { return m[3] }

// Mul returns the matrix product m * o (o applied first under the
// column-vector convention).
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{m.MulVec4(o[0]), m.MulVec4(o[1]), m.MulVec4(o[2]), m.MulVec4(o[3])}
}

// MulVec4 returns m * v with v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	lanes.Scale(out.ptr(), m[0].ptr(), v[0])
	lanes.AddScaled(out.ptr(), out.ptr(), m[1].ptr(), v[1])
	lanes.AddScaled(out.ptr(), out.ptr(), m[2].ptr(), v[2])
	lanes.AddScaled(out.ptr(), out.ptr(), m[3].ptr(), v[3])
	return out
}

// MulScalar returns m with every element scaled by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// TransformPoint3 applies m to a position (w = 1) and returns the xyz
// lanes. The matrix is assumed affine; no perspective divide happens.
func (m Mat4) TransformPoint3(p Vec3) Vec3 {
	return m.MulVec4(Vec4FromVec3(p, 1)).Vec3()
}

// TransformVector3 applies m to a direction (w = 0), ignoring
// translation, and returns the xyz lanes.
func (m Mat4) TransformVector3(v Vec3) Vec3 {
	return m.MulVec4(Vec4FromVec3(v, 0)).Vec3()
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float32 {
	b00 := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	b01 := m[0][0]*m[1][2] - m[0][2]*m[1][0]
	b02 := m[0][0]*m[1][3] - m[0][3]*m[1][0]
	b03 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	b04 := m[0][1]*m[1][3] - m[0][3]*m[1][1]
	b05 := m[0][2]*m[1][3] - m[0][3]*m[1][2]
	b06 := m[2][0]*m[3][1] - m[2][1]*m[3][0]
	b07 := m[2][0]*m[3][2] - m[2][2]*m[3][0]
	b08 := m[2][0]*m[3][3] - m[2][3]*m[3][0]
	b09 := m[2][1]*m[3][2] - m[2][2]*m[3][1]
	b10 := m[2][1]*m[3][3] - m[2][3]*m[3][1]
	b11 := m[2][2]*m[3][3] - m[2][3]*m[3][2]

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse returns the inverse of m, computed from 2x2 sub-determinants.
// A singular input propagates non-finite values instead of failing.
func (m Mat4) Inverse() Mat4 {
	a00, a01, a02, a03 := m[0][0], m[0][1], m[0][2], m[0][3]
	a10, a11, a12, a13 := m[1][0], m[1][1], m[1][2], m[1][3]
	a20, a21, a22, a23 := m[2][0], m[2][1], m[2][2], m[2][3]
	a30, a31, a32, a33 := m[3][0], m[3][1], m[3][2], m[3][3]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	inv := 1 / det

	return Mat4{
		{
			(a11*b11 - a12*b10 + a13*b09) * inv,
			(a02*b10 - a01*b11 - a03*b09) * inv,
			(a31*b05 - a32*b04 + a33*b03) * inv,
			(a22*b04 - a21*b05 - a23*b03) * inv,
		},
		{
			(a12*b08 - a10*b11 - a13*b07) * inv,
			(a00*b11 - a02*b08 + a03*b07) * inv,
			(a32*b02 - a30*b05 - a33*b01) * inv,
			(a20*b05 - a22*b02 + a23*b01) * inv,
		},
		{
			(a10*b10 - a11*b08 + a13*b06) * inv,
			(a01*b08 - a00*b10 - a03*b06) * inv,
			(a30*b04 - a31*b02 + a33*b00) * inv,
			(a21*b02 - a20*b04 - a23*b00) * inv,
		},
		{
			(a11*b07 - a10*b09 - a12*b06) * inv,
			(a00*b09 - a01*b07 + a02*b06) * inv,
			(a31*b01 - a30*b03 - a32*b00) * inv,
			(a20*b03 - a21*b01 + a22*b00) * inv,
		},
	}
}

// Mat4LookAtRH builds a right-handed view matrix looking from eye
// toward center, with up defining the vertical. up must be normalized;
// assertion builds verify this.
func Mat4LookAtRH(eye, center, up Vec3) Mat4 {
	debug.AssertUnit("Mat4LookAtRH", up.LengthSquared())

	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Mat4LookAtLH builds a left-handed view matrix looking from eye toward
// center, with up defining the vertical. up must be normalized;
// assertion builds verify this.
func Mat4LookAtLH(eye, center, up Vec3) Mat4 {
	debug.AssertUnit("Mat4LookAtLH", up.LengthSquared())

	f := center.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	return Mat4{
		{s[0], u[0], f[0], 0},
		{s[1], u[1], f[1], 0},
		{s[2], u[2], f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1},
	}
}

// Projection builders map depth to [0, 1].

// Mat4PerspectiveRH builds a right-handed perspective projection with a
// finite far plane. fovY is the vertical field of view in radians.
func Mat4PerspectiveRH(fovY, aspect, zNear, zFar float32) Mat4 {
	f := 1 / tan32(fovY*0.5)
	r := zFar / (zNear - zFar)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, r, -1},
		{0, 0, r * zNear, 0},
	}
}

// Mat4PerspectiveLH builds a left-handed perspective projection with a
// finite far plane.
func Mat4PerspectiveLH(fovY, aspect, zNear, zFar float32) Mat4 {
	f := 1 / tan32(fovY*0.5)
	r := zFar / (zFar - zNear)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, r, 1},
		{0, 0, -r * zNear, 0},
	}
}

// Mat4PerspectiveInfiniteRH builds a right-handed perspective
// projection with the far plane at infinity.
func Mat4PerspectiveInfiniteRH(fovY, aspect, zNear float32) Mat4 {
	f := 1 / tan32(fovY*0.5)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -1, -1},
		{0, 0, -zNear, 0},
	}
}

// Mat4PerspectiveInfiniteReverseRH builds a right-handed reverse-depth
// perspective projection with the far plane at infinity: depth 1 at the
// near plane falling to 0 at infinity, which distributes float
// precision evenly across the view distance.
func Mat4PerspectiveInfiniteReverseRH(fovY, aspect, zNear float32) Mat4 {
	f := 1 / tan32(fovY*0.5)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, 0, -1},
		{0, 0, zNear, 0},
	}
}

// Mat4OrthographicRH builds a right-handed orthographic projection.
func Mat4OrthographicRH(left, right, bottom, top, zNear, zFar float32) Mat4 {
	a := 2 / (right - left)
	b := 2 / (top - bottom)
	c := 1 / (zNear - zFar)
	return Mat4{
		{a, 0, 0, 0},
		{0, b, 0, 0},
		{0, 0, c, 0},
		{-(right + left) / (right - left), -(top + bottom) / (top - bottom), zNear * c, 1},
	}
}

// Mat4OrthographicLH builds a left-handed orthographic projection.
func Mat4OrthographicLH(left, right, bottom, top, zNear, zFar float32) Mat4 {
	a := 2 / (right - left)
	b := 2 / (top - bottom)
	c := 1 / (zFar - zNear)
	return Mat4{
		{a, 0, 0, 0},
		{0, b, 0, 0},
		{0, 0, c, 0},
		{-(right + left) / (right - left), -(top + bottom) / (top - bottom), -zNear * c, 1},
	}
}
