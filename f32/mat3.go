package f32

import "github.com/cwbudde/algo-geom/internal/debug"

// Mat3 is a 3x3 column-major matrix: m[c] is column c, m[c][r] the
// element in row r of that column.
type Mat3 [3]Vec3

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mat3FromCols builds a matrix from three column vectors.
func Mat3FromCols(x, y, z Vec3) Mat3 { return Mat3{x, y, z} }

// Mat3FromRows builds a matrix from three row vectors.
func Mat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		{r0[0], r1[0], r2[0]},
		{r0[1], r1[1], r2[1]},
		{r0[2], r1[2], r2[2]},
	}
}

// Mat3FromColsArray builds a matrix from a [9]float32 in column-major
// order. Row-major data must be transposed after conversion.
func Mat3FromColsArray(a [9]float32) Mat3 {
	return Mat3{
		{a[0], a[1], a[2]},
		{a[3], a[4], a[5]},
		{a[6], a[7], a[8]},
	}
}

// ColsArray returns the matrix as a [9]float32 in column-major order.
func (m Mat3) ColsArray() [9]float32 {
	return [9]float32{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

// Mat3FromDiagonal builds a matrix with d on the diagonal.
func Mat3FromDiagonal(d Vec3) Mat3 {
	return Mat3{{d[0], 0, 0}, {0, d[1], 0}, {0, 0, d[2]}}
}

// Mat3FromAxisAngle builds a rotation of angle radians around axis.
// The axis must be normalized; assertion builds verify this.
func Mat3FromAxisAngle(axis Vec3, angle float32) Mat3 {
	debug.AssertUnit("Mat3FromAxisAngle", axis.LengthSquared())

	sin, cos := sinCos32(angle)
	omc := 1 - cos
	x, y, z := axis[0], axis[1], axis[2]
	return Mat3{
		{x*x*omc + cos, y*x*omc + z*sin, z*x*omc - y*sin},
		{x*y*omc - z*sin, y*y*omc + cos, z*y*omc + x*sin},
		{x*z*omc + y*sin, y*z*omc - x*sin, z*z*omc + cos},
	}
}

// Mat3FromRotationX builds a rotation of angle radians around the x
// axis.
func Mat3FromRotationX(angle float32) Mat3 {
	sin, cos := sinCos32(angle)
	return Mat3{{1, 0, 0}, {0, cos, sin}, {0, -sin, cos}}
}

// Mat3FromRotationY builds a rotation of angle radians around the y
// axis.
func Mat3FromRotationY(angle float32) Mat3 {
	sin, cos := sinCos32(angle)
	return Mat3{{cos, 0, -sin}, {0, 1, 0}, {sin, 0, cos}}
}

// Mat3FromRotationZ builds a rotation of angle radians around the z
// axis.
func Mat3FromRotationZ(angle float32) Mat3 {
	sin, cos := sinCos32(angle)
	return Mat3{{cos, sin, 0}, {-sin, cos, 0}, {0, 0, 1}}
}

// Mat3FromQuat builds the rotation matrix of a unit quaternion.
// Assertion builds verify the input is normalized; the operation does
// not re-normalize.
func Mat3FromQuat(q Quat) Mat3 {
	debug.AssertUnit("Mat3FromQuat", q.LengthSquared())

	x2, y2, z2 := q[0]+q[0], q[1]+q[1], q[2]+q[2]
	xx, xy, xz := q[0]*x2, q[0]*y2, q[0]*z2
	yy, yz, zz := q[1]*y2, q[1]*z2, q[2]*z2
	wx, wy, wz := q[3]*x2, q[3]*y2, q[3]*z2

	return Mat3{
		{1 - (yy + zz), xy + wz, xz - wy},
		{xy - wz, 1 - (xx + zz), yz + wx},
		{xz + wy, yz - wx, 1 - (xx + yy)},
	}
}

// XAxis returns column 0.
func (m Mat3) XAxis() Vec3 { return m[0] }

// YAxis returns column 1.
func (m Mat3) YAxis() Vec3 { return m[1] }

// ZAxis returns column 2.
func (m Mat3) ZAxis() Vec3 { return m[2] }

// Mul returns the matrix product m * o (o applied first under the
// column-vector convention).
func (m Mat3) Mul(o Mat3) Mat3 {
	return Mat3{m.MulVec3(o[0]), m.MulVec3(o[1]), m.MulVec3(o[2])}
}

// MulVec3 returns m * v with v as a column vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// MulScalar returns m with every element scaled by s.
func (m Mat3) MulScalar(s float32) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float32 {
	return m[2].Dot(m[0].Cross(m[1]))
}

// Inverse returns the inverse of m, built from the adjugate. A singular
// input propagates non-finite values instead of failing.
func (m Mat3) Inverse() Mat3 {
	tmp0 := m[1].Cross(m[2])
	tmp1 := m[2].Cross(m[0])
	tmp2 := m[0].Cross(m[1])
	invDet := 1 / m[2].Dot(tmp2)

	return Mat3FromCols(tmp0.Scale(invDet), tmp1.Scale(invDet), tmp2.Scale(invDet)).Transpose()
}
