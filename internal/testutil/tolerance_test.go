package testutil

import (
	"math"
	"testing"
)

func TestWithin(t *testing.T) {
	if !Within(1.0000001, 1, 1e-6) {
		t.Error("relative tolerance should accept 1e-7 error")
	}
	if Within(1.001, 1, 1e-6) {
		t.Error("relative tolerance should reject 1e-3 error")
	}
	if !Within(5e-7, 0, 1e-6) {
		t.Error("zero reference should use absolute tolerance")
	}
	if Within(2e-6, 0, 1e-6) {
		t.Error("absolute tolerance should reject 2e-6 against zero")
	}
}

func TestWithinNaN(t *testing.T) {
	nan := math.NaN()
	if !Within(nan, nan, 1e-6) {
		t.Error("NaN reference should match a NaN value")
	}
	if Within(1, nan, 1e-6) {
		t.Error("NaN reference should reject a finite value")
	}
}

func TestLanesWithin(t *testing.T) {
	a := [4]float32{1, 2, 3, 4}
	b := [4]float32{1, 2, 3, 4.001}

	if !LanesWithin(a, a, 1e-6) {
		t.Error("identical lanes should match")
	}
	if LanesWithin(b, a, 1e-6) {
		t.Error("lane 3 error should be rejected")
	}
}

func TestMaxRelDiff(t *testing.T) {
	got := [4]float32{1, 2, 3, 4.4}
	want := [4]float32{1, 2, 3, 4}

	d := MaxRelDiff(got, want)
	if math.Abs(d-0.1) > 1e-6 {
		t.Errorf("MaxRelDiff = %v, want 0.1", d)
	}

	if MaxRelDiff(want, want) != 0 {
		t.Error("identical lanes should have zero diff")
	}
}
