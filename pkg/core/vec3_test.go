package core

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func vecAlmostEqual(a, b Vec3) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_AddSubtractRoundTrip(t *testing.T) {
	vectors := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 2, 3),
		NewVec3(-4.5, 0.25, 1e3),
		NewVec3(1e-6, -1e-6, 7),
	}

	for _, v := range vectors {
		for _, w := range vectors {
			if got := v.Add(w).Subtract(w); !vecAlmostEqual(got, v) {
				t.Errorf("(%v + %v) - %v = %v, expected %v", v, w, w, got, v)
			}
		}
	}
}

func TestVec3_ScalarDistributes(t *testing.T) {
	v := NewVec3(1, -2, 3)
	w := NewVec3(0.5, 4, -1)

	for _, s := range []float64{0, 1, -1, 2.5, 1e-3} {
		left := v.Add(w).Multiply(s)
		right := v.Multiply(s).Add(w.Multiply(s))
		if !vecAlmostEqual(left, right) {
			t.Errorf("s=%v: s*(v+w)=%v, s*v+s*w=%v", s, left, right)
		}
	}
}

func TestVec3_Operations(t *testing.T) {
	v := NewVec3(1, 2, 3)
	w := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"MultiplyVec", v.MultiplyVec(w), NewVec3(4, 10, 18)},
		{"Divide", w.Divide(2), NewVec3(2, 2.5, 3)},
		{"Negate", v.Negate(), NewVec3(-1, -2, -3)},
		{"Cross x*y", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Cross y*z", NewVec3(0, 1, 0).Cross(NewVec3(0, 0, 1)), NewVec3(1, 0, 0)},
		{"Cross", v.Cross(w), NewVec3(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if got := v.Dot(w); got != 32 {
		t.Errorf("Expected dot 32, got %v", got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Expected length 5, got %v", got)
	}
	if got := v.LengthSquared(); got != 14 {
		t.Errorf("Expected squared length 14, got %v", got)
	}
}

func TestVec3_CrossProperties(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(-2, 0.5, 7),
		NewVec3(0, 0, 1),
	}

	for _, v := range vectors {
		if got := v.Cross(v); !vecAlmostEqual(got, Vec3{}) {
			t.Errorf("%v x %v = %v, expected zero vector", v, v, got)
		}
		for _, w := range vectors {
			if !vecAlmostEqual(v.Cross(w), w.Cross(v).Negate()) {
				t.Errorf("%v x %v is not the negation of %v x %v", v, w, w, v)
			}
		}
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(3, 4, 0),
		NewVec3(-1e-3, 2e-3, 5e-4),
		NewVec3(1e6, -1e6, 1),
	}

	for _, v := range vectors {
		if got := v.Normalize().Length(); math.Abs(got-1) > tolerance {
			t.Errorf("|normalize(%v)| = %v, expected 1", v, got)
		}
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrZeroLength) {
			t.Errorf("Expected panic with ErrZeroLength, got %v", r)
		}
	}()

	Vec3{}.Normalize()
}

func TestPoint_Displacement(t *testing.T) {
	p := NewPoint(1, 2, 3)
	q := NewPoint(4, 6, 3)

	d := q.Subtract(p)
	if !vecAlmostEqual(d, NewVec3(3, 4, 0)) {
		t.Errorf("Expected displacement (3,4,0), got %v", d)
	}
	if got := p.Add(d); got != q {
		t.Errorf("Expected %v, got %v", q, got)
	}
	if got := q.Vec(); got != NewVec3(4, 6, 3) {
		t.Errorf("Expected %v, got %v", NewVec3(4, 6, 3), got)
	}
	if Origin.Vec() != (Vec3{}) {
		t.Errorf("Origin should be zero, got %v", Origin)
	}
}
