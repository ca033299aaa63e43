package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates a single white unit sphere at the origin lit from
// above and in front, viewed from five units back along -z
func NewDefaultScene() *Scene {
	s := New()
	s.SetCamera(core.NewPoint(0, 0, -5))

	s.AddObjects(geometry.NewSphere(core.Origin, 1, material.New(core.White)))
	s.AddLights(lights.NewPointLight(core.NewPoint(0, 5, -5), core.White))

	return s
}

// NewRGBScene creates three overlapping red, green and blue spheres lit
// by a warm key light and a dim cool fill light
func NewRGBScene() *Scene {
	s := New()
	s.SetCamera(core.NewPoint(0, 0, -4))

	red := material.New(core.MustParseHex("#E53935"))
	green := material.New(core.MustParseHex("#43A047"))
	blue := material.New(core.MustParseHex("#1E88E5"))
	// Matte blue: weaker, broader highlight
	blue.Specular = 0.4
	blue.SpecularExponent = 10

	s.AddObjects(
		geometry.NewSphere(core.NewPoint(-0.9, 0, 1), 0.7, red),
		geometry.NewSphere(core.NewPoint(0, 0, 1.6), 0.7, green),
		geometry.NewSphere(core.NewPoint(0.9, 0, 1), 0.7, blue),
	)
	s.AddLights(
		lights.NewPointLight(core.NewPoint(-4, 4, -6), core.MustParseHex("#FFF1D6")),
		lights.NewPointLight(core.NewPoint(5, -2, -3), core.MustParseHex("#1A2433")),
	)

	return s
}
