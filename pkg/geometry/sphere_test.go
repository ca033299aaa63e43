package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestSphere_Intersect_TowardsCenter(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Point
		radius    float64
		origin    core.Point
		expectedT float64
	}{
		{"unit sphere from +z", core.Origin, 1, core.NewPoint(0, 0, 5), 4},
		{"unit sphere from -x", core.Origin, 1, core.NewPoint(-3, 0, 0), 2},
		{"offset sphere", core.NewPoint(1, 2, 3), 0.5, core.NewPoint(1, 2, 10), 6.5},
		{"large sphere diagonal", core.NewPoint(0, 0, 0), 2, core.NewPoint(3, 4, 0), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, material.New(core.White))
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			hitT, ok := sphere.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hitT-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hitT)
			}
		})
	}
}

func TestSphere_Intersect_Misses(t *testing.T) {
	sphere := NewSphere(core.Origin, 1, material.New(core.White))

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vec3
	}{
		{"passes beside", core.NewPoint(2, 0, 0), core.NewVec3(0, 1, 0)},
		{"parallel offset", core.NewPoint(0, 1.5, 5), core.NewVec3(0, 0, -1)},
		{"points away", core.NewPoint(0, 0, 5), core.NewVec3(0, 0, 1)},
		{"starts inside", core.Origin, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hitT, ok := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if ok {
				t.Errorf("Expected miss, but got hit at t=%f", hitT)
			}
		})
	}
}

func TestSphere_Intersect_UnnormalizedDirection(t *testing.T) {
	sphere := NewSphere(core.Origin, 1, material.New(core.White))
	ray := core.NewRayFromPoints(core.NewPoint(0, 0, -5), core.NewPoint(0, 0, 0))

	hitT, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	// Direction has length 5, so the surface at z=-1 is reached at t=0.8
	if math.Abs(hitT-0.8) > 1e-9 {
		t.Errorf("Expected t=0.8, got t=%f", hitT)
	}
	if p := ray.At(hitT); math.Abs(p.Z+1) > 1e-9 {
		t.Errorf("Expected hit point on z=-1, got %v", p)
	}
}

func TestSphere_Intersect_Tangent(t *testing.T) {
	sphere := NewSphere(core.Origin, 1, material.New(core.White))
	ray := core.NewRay(core.NewPoint(1, 0, 2), core.NewVec3(0, 0, -1))

	hitT, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected glancing hit, but got miss")
	}
	if math.Abs(hitT-2) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hitT)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewPoint(1, 1, 1), 2, material.New(core.White))

	tests := []struct {
		point    core.Point
		expected core.Vec3
	}{
		{core.NewPoint(3, 1, 1), core.NewVec3(1, 0, 0)},
		{core.NewPoint(1, -1, 1), core.NewVec3(0, -1, 0)},
		{core.NewPoint(1, 1, 3), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		got := sphere.NormalAt(tt.point)
		if got.Subtract(tt.expected).Length() > 1e-9 {
			t.Errorf("NormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestSphere_GetMaterial(t *testing.T) {
	shared := material.New(core.Blue)
	a := NewSphere(core.Origin, 1, shared)
	b := NewSphere(core.NewPoint(3, 0, 0), 1, shared)

	if a.GetMaterial() != shared || b.GetMaterial() != shared {
		t.Error("Spheres should share the same material")
	}
}

func TestNewSphere_RejectsNonPositiveRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for radius %v", radius)
				}
			}()
			NewSphere(core.Origin, radius, material.New(core.White))
		}()
	}
}

var _ Shape = (*Sphere)(nil)

func TestSphere_Intersect_ZeroDirectionPanics(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 5), 1, material.New(core.White))

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrZeroLength) {
			t.Errorf("Expected panic with ErrZeroLength, got %v", r)
		}
	}()

	hitT, ok := sphere.Intersect(core.NewRay(core.Origin, core.Vec3{}))
	t.Errorf("Expected panic, got t=%f ok=%t", hitT, ok)
}
