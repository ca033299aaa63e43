package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the ray parameter of the first surface the ray
	// reaches in front of its origin, or false if there is none.
	Intersect(ray core.Ray) (float64, bool)

	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Point) core.Vec3

	// GetMaterial returns the surface material
	GetMaterial() *material.Material
}
