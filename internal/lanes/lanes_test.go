package lanes

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-geom/internal/testutil"
)

var binaryInputs = []struct {
	name string
	a, b [4]float32
}{
	{"simple", [4]float32{1, 2, 3, 4}, [4]float32{10, 20, 30, 40}},
	{"negative", [4]float32{-1.5, 2.5, -3.5, 4.5}, [4]float32{0.5, -0.25, 8, -16}},
	{"zeros", [4]float32{0, -0, 1, -1}, [4]float32{0, 1, 0, -0}},
	{"axis", [4]float32{1, 0, 0, 0}, [4]float32{0, 0, 1, 0}},
	{"tiny", [4]float32{1e-30, -1e-30, 1e30, -1e30}, [4]float32{1e-30, 1e30, -1e-30, 1}},
	{"pi", [4]float32{math.Pi, math.E, math.Sqrt2, math.Ln2}, [4]float32{1.5, -2.25, 0.125, 7}},
}

func TestBinaryOps(t *testing.T) {
	ops := []struct {
		name string
		op   func(dst, a, b *[4]float32)
		ref  func(a, b float64) float64
	}{
		{"Add", Add, func(a, b float64) float64 { return a + b }},
		{"Sub", Sub, func(a, b float64) float64 { return a - b }},
		{"Mul", Mul, func(a, b float64) float64 { return a * b }},
	}

	for _, op := range ops {
		for _, in := range binaryInputs {
			t.Run(op.name+"/"+in.name, func(t *testing.T) {
				var dst [4]float32
				a, b := in.a, in.b
				op.op(&dst, &a, &b)
				for i := range dst {
					want := float32(op.ref(float64(in.a[i]), float64(in.b[i])))
					if dst[i] != want && !(math.IsNaN(float64(dst[i])) && math.IsNaN(float64(want))) {
						t.Errorf("%s[%d]: got %v, want %v", op.name, i, dst[i], want)
					}
				}
			})
		}
	}
}

func TestDiv(t *testing.T) {
	a := [4]float32{1, -6, 0, 5}
	b := [4]float32{4, 3, 2, 0.5}
	var dst [4]float32
	Div(&dst, &a, &b)
	want := [4]float32{0.25, -2, 0, 10}
	if dst != want {
		t.Errorf("Div: got %v, want %v", dst, want)
	}
}

func TestMinMax(t *testing.T) {
	a := [4]float32{1, -2, 3, -4}
	b := [4]float32{-1, 2, 3, 4}

	var lo, hi [4]float32
	Min(&lo, &a, &b)
	Max(&hi, &a, &b)

	wantLo := [4]float32{-1, -2, 3, -4}
	wantHi := [4]float32{1, 2, 3, 4}
	if lo != wantLo {
		t.Errorf("Min: got %v, want %v", lo, wantLo)
	}
	if hi != wantHi {
		t.Errorf("Max: got %v, want %v", hi, wantHi)
	}
}

// Min/Max must return the second operand when the comparison involves
// NaN; that is what MINPS/MAXPS do and the generic kernel mirrors it.
func TestMinMaxNaNSemantics(t *testing.T) {
	nan := float32(math.NaN())

	a := [4]float32{nan, 5, nan, 1}
	b := [4]float32{5, nan, nan, 2}
	var lo [4]float32
	Min(&lo, &a, &b)

	if lo[0] != 5 {
		t.Errorf("Min(NaN, 5) = %v, want 5", lo[0])
	}
	if !math.IsNaN(float64(lo[1])) {
		t.Errorf("Min(5, NaN) = %v, want NaN", lo[1])
	}
	if !math.IsNaN(float64(lo[2])) {
		t.Errorf("Min(NaN, NaN) = %v, want NaN", lo[2])
	}
	if lo[3] != 1 {
		t.Errorf("Min(1, 2) = %v, want 1", lo[3])
	}
}

func TestNegAbs(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	a := [4]float32{1.5, -2, 0, negZero}
	var n, ab [4]float32
	Neg(&n, &a)
	Abs(&ab, &a)

	if n[0] != -1.5 || n[1] != 2 {
		t.Errorf("Neg: got %v", n)
	}
	// Sign-bit flip: -(+0) must be -0 and vice versa.
	if math.Float32bits(n[2]) != 0x80000000 {
		t.Errorf("Neg(+0): got bits %#08x, want 0x80000000", math.Float32bits(n[2]))
	}
	if ab != ([4]float32{1.5, 2, 0, 0}) {
		t.Errorf("Abs: got %v", ab)
	}
	if math.Float32bits(ab[3]) != 0 {
		t.Errorf("Abs(-0): got bits %#08x, want 0", math.Float32bits(ab[3]))
	}
}

func TestScaleAddScaled(t *testing.T) {
	a := [4]float32{1, 2, 3, 4}
	b := [4]float32{10, 20, 30, 40}

	var dst [4]float32
	Scale(&dst, &a, 2.5)
	if dst != ([4]float32{2.5, 5, 7.5, 10}) {
		t.Errorf("Scale: got %v", dst)
	}

	AddScaled(&dst, &a, &b, 0.5)
	if dst != ([4]float32{6, 12, 18, 24}) {
		t.Errorf("AddScaled: got %v", dst)
	}
}

func TestDot(t *testing.T) {
	for _, in := range binaryInputs {
		t.Run(in.name, func(t *testing.T) {
			a, b := in.a, in.b
			got := Dot(&a, &b)

			// Reference uses the same pairwise summation tree.
			want := float32((in.a[0]*in.b[0] + in.a[1]*in.b[1]) +
				(in.a[2]*in.b[2] + in.a[3]*in.b[3]))
			if !testutil.Within(float64(got), float64(want), 1e-6) {
				t.Errorf("Dot: got %v, want %v", got, want)
			}
		})
	}
}

func TestRsqrtAccuracy(t *testing.T) {
	inputs := []float32{
		1, 2, 3, 4, 0.25, 0.0625, 100, 1e-6, 1e6, 1e-30, 1e30,
		math.Pi, 1.0000001, 0.9999999,
	}

	for _, x := range inputs {
		got := float64(Rsqrt(x))
		want := 1 / math.Sqrt(float64(x))
		if !testutil.Within(got, want, 1e-6) {
			t.Errorf("Rsqrt(%v) = %v, want %v (rel err %v)",
				x, got, want, math.Abs(got-want)/want)
		}
	}
}
