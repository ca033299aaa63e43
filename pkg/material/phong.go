package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Default reflectance coefficients used by New
const (
	DefaultAmbient          = 0.05
	DefaultDiffuse          = 1.0
	DefaultSpecular         = 1.0
	DefaultSpecularExponent = 50.0
)

// Material describes how a surface responds to light under the
// Lambert diffuse and Blinn-Phong specular model. Materials are
// shared read-only between shapes.
type Material struct {
	Color            core.Color
	Ambient          float64 // Not applied by the current shading model
	Diffuse          float64
	Specular         float64
	SpecularExponent float64 // Shininess; higher is a tighter highlight
}

// New creates a material of the given colour with default coefficients
func New(color core.Color) *Material {
	return &Material{
		Color:            color,
		Ambient:          DefaultAmbient,
		Diffuse:          DefaultDiffuse,
		Specular:         DefaultSpecular,
		SpecularExponent: DefaultSpecularExponent,
	}
}
