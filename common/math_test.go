package common

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestNormalizeOrZero(t *testing.T) {
	cases := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"zero_stays_zero", Vec3{}, Vec3{}},
		{"unit_unchanged", Vec3{X: 1}, Vec3{X: 1}},
		{"scales_down", Vec3{X: 3, Y: 4}, Vec3{X: 0.6, Y: 0.8}},
		{"diagonal", Vec3{X: 1, Z: 1}, Vec3{X: 1 / math.Sqrt2, Z: 1 / math.Sqrt2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.NormalizeOrZero()
			if !vecAlmostEqual(got, c.want) {
				t.Fatalf("NormalizeOrZero(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestHorizontalDropsY(t *testing.T) {
	v := Vec3{X: 2, Y: 5, Z: -3}
	got := v.Horizontal()
	if got.Y != 0 || got.X != 2 || got.Z != -3 {
		t.Fatalf("Horizontal(%v) = %v", v, got)
	}
}

func TestVecOps(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	if got := a.Add(b); !vecAlmostEqual(got, Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, Vec3{X: 2, Y: 1.5, Z: 1}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(2); !vecAlmostEqual(got, Vec3{X: 2, Y: 4, Z: 6}) {
		t.Fatalf("Scale = %v", got)
	}
	if got := a.Dot(b); !almostEqual(got, 6) {
		t.Fatalf("Dot = %v", got)
	}
	if got := (Vec3{X: 3, Y: 4}).Length(); !almostEqual(got, 5) {
		t.Fatalf("Length = %v", got)
	}
	if !(Vec3{}).IsZero() {
		t.Fatalf("zero vector should report IsZero")
	}
	if (Vec3{X: 1e-3}).IsZero() {
		t.Fatalf("non-zero vector should not report IsZero")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); !almostEqual(got, 2.5) {
		t.Fatalf("Lerp = %v", got)
	}
}
