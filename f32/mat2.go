package f32

// Mat2 is a 2x2 column-major matrix: m[c] is column c, m[c][r] the
// element in row r of that column.
type Mat2 [2]Vec2

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// Mat2FromCols builds a matrix from two column vectors.
func Mat2FromCols(x, y Vec2) Mat2 { return Mat2{x, y} }

// Mat2FromRows builds a matrix from two row vectors.
func Mat2FromRows(r0, r1 Vec2) Mat2 {
	return Mat2{{r0[0], r1[0]}, {r0[1], r1[1]}}
}

// Mat2FromColsArray builds a matrix from a [4]float32 in column-major
// order. Row-major data must be transposed after conversion.
func Mat2FromColsArray(a [4]float32) Mat2 {
	return Mat2{{a[0], a[1]}, {a[2], a[3]}}
}

// ColsArray returns the matrix as a [4]float32 in column-major order.
func (m Mat2) ColsArray() [4]float32 {
	return [4]float32{m[0][0], m[0][1], m[1][0], m[1][1]}
}

// Mat2FromDiagonal builds a matrix with d on the diagonal.
func Mat2FromDiagonal(d Vec2) Mat2 {
	return Mat2{{d[0], 0}, {0, d[1]}}
}

// Mat2FromScaleAngle builds a matrix applying scale followed by a
// rotation of angle radians.
func Mat2FromScaleAngle(scale Vec2, angle float32) Mat2 {
	sin, cos := sinCos32(angle)
	return Mat2{
		{cos * scale[0], sin * scale[0]},
		{-sin * scale[1], cos * scale[1]},
	}
}

// Mat2FromAngle builds a rotation of angle radians.
func Mat2FromAngle(angle float32) Mat2 {
	sin, cos := sinCos32(angle)
	return Mat2{{cos, sin}, {-sin, cos}}
}

// XAxis returns column 0.
func (m Mat2) XAxis() Vec2 { return m[0] }

// YAxis returns column 1.
func (m Mat2) YAxis() Vec2 { return m[1] }

// Mul returns the matrix product m * o (o applied first under the
// column-vector convention).
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{m.MulVec2(o[0]), m.MulVec2(o[1])}
}

// MulVec2 returns m * v with v as a column vector.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1]))
}

// MulScalar returns m with every element scaled by s.
func (m Mat2) MulScalar(s float32) Mat2 {
	return Mat2{m[0].Scale(s), m[1].Scale(s)}
}

// Transpose returns the transposed matrix.
func (m Mat2) Transpose() Mat2 {
	return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Determinant returns the determinant of m.
func (m Mat2) Determinant() float32 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inverse returns the inverse of m. A singular input propagates
// non-finite values instead of failing.
func (m Mat2) Inverse() Mat2 {
	invDet := 1 / m.Determinant()
	return Mat2{
		{m[1][1] * invDet, -m[0][1] * invDet},
		{-m[1][0] * invDet, m[0][0] * invDet},
	}
}
