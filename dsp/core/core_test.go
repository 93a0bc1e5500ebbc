package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
	}

	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%v,%v,%v)=%v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected nearly equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected not equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero comparison with default epsilon should hold")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1)=%v, want 0", got)
	}

	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10)=%v, want 20", got)
	}

	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0)=%v, want -Inf", got)
	}

	if got := DBToLinear(20); math.Abs(got-10) > 1e-12 {
		t.Fatalf("DBToLinear(20)=%v, want 10", got)
	}

	// Round trip.
	if got := DBToLinear(LinearToDB(0.25)); math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("round trip=%v, want 0.25", got)
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	out := EnsureLen(buf, 8)
	if len(out) != 8 || cap(out) != 16 {
		t.Fatalf("expected reuse: len=%d cap=%d", len(out), cap(out))
	}

	out = EnsureLen(buf, 32)
	if len(out) != 32 {
		t.Fatalf("expected growth: len=%d", len(out))
	}

	out = EnsureLen(buf, 0)
	if len(out) != 0 {
		t.Fatalf("expected empty: len=%d", len(out))
	}
}

func TestEnsureComplexLen(t *testing.T) {
	buf := make([]complex128, 2, 8)

	out := EnsureComplexLen(buf, 8)
	if len(out) != 8 || cap(out) != 8 {
		t.Fatalf("expected reuse: len=%d cap=%d", len(out), cap(out))
	}

	out = EnsureComplexLen(nil, 3)
	if len(out) != 3 {
		t.Fatalf("expected allocation: len=%d", len(out))
	}
}

func TestZeroAndCopyInto(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d]=%v, want 0", i, v)
		}
	}

	n := CopyInto(buf, []float64{4, 5})
	if n != 2 || buf[0] != 4 || buf[1] != 5 || buf[2] != 0 {
		t.Fatalf("CopyInto result n=%d buf=%v", n, buf)
	}
}
