package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(
		math.Max(0, math.Min(1, r)),
		math.Max(0, math.Min(1, g)),
		math.Max(0, math.Min(1, blue)),
	)
}

// NewSphereGridScene creates a wall of spheres whose hue varies across
// columns and whose chroma and shininess vary across rows
func NewSphereGridScene() *Scene {
	const (
		columns = 8
		rows    = 4
		spacing = 0.5
		depth   = 6.0 // z of the sphere wall
	)

	s := New()
	s.SetCamera(core.NewPoint(0, 0, -5))

	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.7
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < columns; i++ {
		for j := 0; j < rows; j++ {
			x := (float64(i) - float64(columns-1)/2) * spacing
			y := (float64(j) - float64(rows-1)/2) * spacing

			hue := float64(i) / float64(columns) * 360.0
			chroma := minChroma + float64(j)/float64(rows-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			mat := material.New(oklchToRGB(lightness, chroma, hue))
			mat.SpecularExponent = 10 + 40*float64(j)

			s.AddObjects(geometry.NewSphere(core.NewPoint(x, y, depth), sphereRadius, mat))
		}
	}

	s.AddLights(
		lights.NewPointLight(core.NewPoint(-6, 6, -4), core.NewColor(0.9, 0.85, 0.8)),
		lights.NewPointLight(core.NewPoint(6, -2, -2), core.NewColor(0.2, 0.25, 0.3)),
	)

	return s
}
