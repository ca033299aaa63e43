package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitesimal light source. Its intensity does not
// fall off with distance.
type PointLight struct {
	Position core.Point
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, color core.Color) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// DirectionFrom returns the unit direction from p towards the light
func (l *PointLight) DirectionFrom(p core.Point) core.Vec3 {
	return l.Position.Subtract(p).Normalize()
}
