package f32_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-geom/f32"
)

func randomMat4(rng *rand.Rand) f32.Mat4 {
	var a [16]float32
	for i := range a {
		a[i] = float32(rng.Float64()*4 - 2)
	}
	return f32.Mat4FromColsArray(a)
}

func requireMat4InDelta(t *testing.T, want, got f32.Mat4, tol float64) {
	t.Helper()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			require.InDelta(t, want[c][r], got[c][r], tol, "col %d row %d", c, r)
		}
	}
}

func TestMat2(t *testing.T) {
	id := f32.Mat2Identity()
	v := f32.Vec2{3, -4}
	require.Equal(t, v, id.MulVec2(v))

	rot := f32.Mat2FromAngle(math.Pi / 2)
	got := rot.MulVec2(f32.Vec2{1, 0})
	require.InDelta(t, 0, float64(got[0]), 1e-6)
	require.InDelta(t, 1, float64(got[1]), 1e-6)

	m := f32.Mat2FromCols(f32.Vec2{1, 2}, f32.Vec2{3, 4})
	require.Equal(t, float32(1*4-2*3), m.Determinant())
	require.Equal(t, m, f32.Mat2FromRows(f32.Vec2{1, 3}, f32.Vec2{2, 4}))
	require.Equal(t, m, f32.Mat2FromColsArray(m.ColsArray()))
	require.Equal(t, m, m.Transpose().Transpose())

	inv := m.Inverse()
	prod := inv.Mul(m)
	require.InDelta(t, 1, float64(prod[0][0]), 1e-5)
	require.InDelta(t, 0, float64(prod[0][1]), 1e-5)
	require.InDelta(t, 0, float64(prod[1][0]), 1e-5)
	require.InDelta(t, 1, float64(prod[1][1]), 1e-5)

	scaled := f32.Mat2FromScaleAngle(f32.Vec2{2, 3}, 0)
	require.Equal(t, f32.Mat2FromDiagonal(f32.Vec2{2, 3}), scaled)
}

func TestMat3RotationsAndInverse(t *testing.T) {
	rx := f32.Mat3FromRotationX(math.Pi / 2)
	got := rx.MulVec3(f32.Vec3{0, 1, 0})
	requireVec3InDelta(t, f32.Vec3{0, 0, 1}, got, 1e-6)

	ry := f32.Mat3FromRotationY(math.Pi / 2)
	requireVec3InDelta(t, f32.Vec3{0, 0, -1}, ry.MulVec3(f32.Vec3{1, 0, 0}), 1e-6)

	rz := f32.Mat3FromRotationZ(math.Pi / 2)
	requireVec3InDelta(t, f32.Vec3{0, 1, 0}, rz.MulVec3(f32.Vec3{1, 0, 0}), 1e-6)

	// Axis-angle around y must agree with the dedicated constructor.
	aa := f32.Mat3FromAxisAngle(f32.Vec3{0, 1, 0}, 1.1)
	for c := 0; c < 3; c++ {
		requireVec3InDelta(t, f32.Mat3FromRotationY(1.1)[c], aa[c], 1e-6)
	}

	m := f32.Mat3FromCols(f32.Vec3{2, 0, 1}, f32.Vec3{-1, 3, 0}, f32.Vec3{0, 1, 4})
	inv := m.Inverse()
	prod := inv.Mul(m)
	id := f32.Mat3Identity()
	for c := 0; c < 3; c++ {
		requireVec3InDelta(t, id[c], prod[c], 1e-5)
	}

	require.Equal(t, m, m.Transpose().Transpose())
	require.Equal(t, m, f32.Mat3FromColsArray(m.ColsArray()))

	// Rotations have determinant 1.
	require.InDelta(t, 1, float64(aa.Determinant()), 1e-6)
}

func TestMat4TransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		m := randomMat4(rng)
		require.Equal(t, m, m.Transpose().Transpose())
	}
}

func TestMat4MulAssociatesWithVec(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		a := randomMat4(rng)
		b := randomMat4(rng)
		v := f32.Vec4{
			float32(rng.Float64()*2 - 1),
			float32(rng.Float64()*2 - 1),
			float32(rng.Float64()*2 - 1),
			float32(rng.Float64()*2 - 1),
		}

		left := a.Mul(b).MulVec4(v)
		right := a.MulVec4(b.MulVec4(v))
		requireVec4InDelta(t, left, right, 1e-4)
	}
}

func TestMat4Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	id := f32.Mat4Identity()

	for i := 0; i < 100; i++ {
		m := randomMat4(rng)
		// Skip ill-conditioned draws; the singular path has its own test.
		if math.Abs(float64(m.Determinant())) < 1 {
			continue
		}
		requireMat4InDelta(t, id, m.Inverse().Mul(m), 1e-3)
	}

	// Affine transform with a known closed-form inverse.
	tr := f32.Mat4FromTranslation(f32.Vec3{1, -2, 3})
	requireMat4InDelta(t, id, tr.Inverse().Mul(tr), 1e-6)
}

func TestMat4SingularInverseDoesNotPanic(t *testing.T) {
	var zero f32.Mat4
	inv := zero.Inverse()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			f := float64(inv[c][r])
			require.True(t, math.IsNaN(f) || math.IsInf(f, 0) || f == 0,
				"col %d row %d = %v", c, r, inv[c][r])
		}
	}

	require.Equal(t, float32(0), zero.Determinant())
}

func TestMat4Determinant(t *testing.T) {
	require.Equal(t, float32(1), f32.Mat4Identity().Determinant())
	require.Equal(t, float32(24), f32.Mat4FromDiagonal(f32.Vec4{1, 2, 3, 4}).Determinant())

	// det(A*B) = det(A)*det(B)
	rng := rand.New(rand.NewSource(17))
	a := randomMat4(rng)
	b := randomMat4(rng)
	require.InEpsilon(t, float64(a.Determinant())*float64(b.Determinant()),
		float64(a.Mul(b).Determinant()), 1e-3)
}

func TestMat4FromRowsMatchesTransposedCols(t *testing.T) {
	r0 := f32.Vec4{1, 2, 3, 4}
	r1 := f32.Vec4{5, 6, 7, 8}
	r2 := f32.Vec4{9, 10, 11, 12}
	r3 := f32.Vec4{13, 14, 15, 16}

	require.Equal(t,
		f32.Mat4FromCols(r0, r1, r2, r3).Transpose(),
		f32.Mat4FromRows(r0, r1, r2, r3))
}

func TestMat4TranslationScaleComposition(t *testing.T) {
	s := f32.Mat4FromScale(f32.Vec3{2, 3, 4})
	tr := f32.Mat4FromTranslation(f32.Vec3{1, 1, 1})

	// Column-vector convention: right-to-left, scale first.
	p := tr.Mul(s).TransformPoint3(f32.Vec3{1, 1, 1})
	require.Equal(t, f32.Vec3{3, 4, 5}, p)

	// Directions ignore translation.
	d := tr.Mul(s).TransformVector3(f32.Vec3{1, 1, 1})
	require.Equal(t, f32.Vec3{2, 3, 4}, d)
}

func TestMat4LookAtRH(t *testing.T) {
	view := f32.Mat4LookAtRH(f32.Vec3{0, 0, 5}, f32.Vec3{}, f32.Vec3{0, 1, 0})

	// A point at the origin sits 5 units in front of the camera.
	requireVec3InDelta(t, f32.Vec3{0, 0, -5}, view.TransformPoint3(f32.Vec3{}), 1e-6)

	// The eye maps to the view-space origin.
	requireVec3InDelta(t, f32.Vec3{}, view.TransformPoint3(f32.Vec3{0, 0, 5}), 1e-6)

	// +x stays +x for a camera looking down -z.
	requireVec3InDelta(t, f32.Vec3{1, 0, -5}, view.TransformPoint3(f32.Vec3{1, 0, 0}), 1e-6)
}

func TestMat4LookAtLH(t *testing.T) {
	view := f32.Mat4LookAtLH(f32.Vec3{0, 0, -5}, f32.Vec3{}, f32.Vec3{0, 1, 0})

	// Left-handed: forward is +z.
	requireVec3InDelta(t, f32.Vec3{0, 0, 5}, view.TransformPoint3(f32.Vec3{}), 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 100.0

	project := func(m f32.Mat4, z float32) float32 {
		clip := m.MulVec4(f32.Vec4{0, 0, z, 1})
		return clip[2] / clip[3]
	}

	rh := f32.Mat4PerspectiveRH(math.Pi/2, 16.0/9.0, near, far)
	require.InDelta(t, 0, float64(project(rh, -near)), 1e-6)
	require.InDelta(t, 1, float64(project(rh, -far)), 1e-6)

	lh := f32.Mat4PerspectiveLH(math.Pi/2, 16.0/9.0, near, far)
	require.InDelta(t, 0, float64(project(lh, near)), 1e-6)
	require.InDelta(t, 1, float64(project(lh, far)), 1e-6)

	inf := f32.Mat4PerspectiveInfiniteRH(math.Pi/2, 1, near)
	require.InDelta(t, 0, float64(project(inf, -near)), 1e-6)
	require.InDelta(t, 1, float64(project(inf, -1e7)), 1e-4)

	rev := f32.Mat4PerspectiveInfiniteReverseRH(math.Pi/2, 1, near)
	require.InDelta(t, 1, float64(project(rev, -near)), 1e-6)
	require.InDelta(t, 0, float64(project(rev, -1e7)), 1e-4)
}

func TestOrthographicDepthRange(t *testing.T) {
	const near, far = 1.0, 10.0

	rh := f32.Mat4OrthographicRH(-2, 2, -1, 1, near, far)
	require.InDelta(t, 0, float64(rh.TransformPoint3(f32.Vec3{0, 0, -near})[2]), 1e-6)
	require.InDelta(t, 1, float64(rh.TransformPoint3(f32.Vec3{0, 0, -far})[2]), 1e-6)

	// Corners of the box map to the edges of NDC.
	require.InDelta(t, 1, float64(rh.TransformPoint3(f32.Vec3{2, 0, -near})[0]), 1e-6)
	require.InDelta(t, -1, float64(rh.TransformPoint3(f32.Vec3{0, -1, -near})[1]), 1e-6)

	lh := f32.Mat4OrthographicLH(-2, 2, -1, 1, near, far)
	require.InDelta(t, 0, float64(lh.TransformPoint3(f32.Vec3{0, 0, near})[2]), 1e-6)
	require.InDelta(t, 1, float64(lh.TransformPoint3(f32.Vec3{0, 0, far})[2]), 1e-6)
}

func TestMat4FromScaleRotationTranslation(t *testing.T) {
	scale := f32.Vec3{2, 2, 2}
	rot := f32.QuatFromRotationZ(math.Pi / 2)
	trans := f32.Vec3{1, 0, 0}

	m := f32.Mat4FromScaleRotationTranslation(scale, rot, trans)

	// (1,0,0): scaled to (2,0,0), rotated to (0,2,0), translated to (1,2,0).
	requireVec3InDelta(t, f32.Vec3{1, 2, 0}, m.TransformPoint3(f32.Vec3{1, 0, 0}), 1e-6)

	// Degenerate zero scale is accepted silently.
	flat := f32.Mat4FromScaleRotationTranslation(f32.Vec3{}, rot, trans)
	require.Equal(t, float32(0), flat.Determinant())
}
