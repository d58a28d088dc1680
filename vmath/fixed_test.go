package vmath

import "testing"

func TestFixedIntRoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, -1, 42, -1000, 1 << 20} {
		if got := ToInt(FromInt(i)); got != i {
			t.Errorf("FromInt/ToInt(%d) = %d", i, got)
		}
	}
}

func TestFixedMul(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{2, 3, 6},
		{0.5, 0.5, 0.25},
		{-2, 3, -6},
		{-2, -3, 6},
		{0, 100, 0},
		{1.5, 4, 6},
	}
	for _, tc := range tests {
		got := ToFloat(Mul(FromFloat(tc.a), FromFloat(tc.b)))
		if diff := got - tc.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("Mul(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(FromInt(-5)) != FromInt(5) || Abs(FromInt(5)) != FromInt(5) || Abs(0) != 0 {
		t.Error("Abs mismatch")
	}
}

func TestClamp(t *testing.T) {
	lo, hi := FromInt(-10), FromInt(10)
	if Clamp(FromInt(-20), lo, hi) != lo {
		t.Error("below range must clamp to lo")
	}
	if Clamp(FromInt(20), lo, hi) != hi {
		t.Error("above range must clamp to hi")
	}
	if Clamp(FromInt(3), lo, hi) != FromInt(3) {
		t.Error("in-range value must pass through")
	}
}
