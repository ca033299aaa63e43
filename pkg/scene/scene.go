package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/raster"
)

var (
	// ErrNoCamera is returned when rendering a scene whose camera was never set
	ErrNoCamera = errors.New("scene has no camera")
	// ErrInvalidSize is returned for non-positive render dimensions
	ErrInvalidSize = errors.New("invalid image size")
)

// Scene contains everything needed for rendering. It is built with
// SetCamera, AddObjects and AddLights and must not be modified while a
// render is in progress.
type Scene struct {
	camera *core.Point
	Shapes []geometry.Shape     // Objects in the scene, in insertion order
	Lights []*lights.PointLight // Lights in the scene
}

// Hit describes the nearest intersection of a ray with the scene
type Hit struct {
	T     float64        // Ray parameter of the intersection
	Point core.Point     // Intersection point
	Shape geometry.Shape // Object that was hit
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		Shapes: make([]geometry.Shape, 0),
		Lights: make([]*lights.PointLight, 0),
	}
}

// SetCamera places the pinhole camera
func (s *Scene) SetCamera(camera core.Point) {
	s.camera = &camera
}

// GetCamera returns the camera position and whether one has been set
func (s *Scene) GetCamera() (core.Point, bool) {
	if s.camera == nil {
		return core.Point{}, false
	}
	return *s.camera, true
}

// AddObjects appends shapes to the scene
func (s *Scene) AddObjects(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLights appends lights to the scene
func (s *Scene) AddLights(l ...*lights.PointLight) {
	s.Lights = append(s.Lights, l...)
}

// Render traces one ray per pixel through the virtual image plane and
// returns the finished image. This is the single-threaded reference path;
// renderer.Raytracer produces bit-identical output concurrently.
func (s *Scene) Render(width, height int) (*raster.Image, error) {
	viewport, err := s.Viewport(width, height)
	if err != nil {
		return nil, err
	}

	img := raster.NewImage(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetPixel(i, j, s.Trace(viewport.PixelRay(i, j)))
		}
	}
	return img, nil
}

// Viewport validates the render size and camera and returns the ray
// generator for that size.
func (s *Scene) Viewport(width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	camera, ok := s.GetCamera()
	if !ok {
		return Viewport{}, ErrNoCamera
	}
	return NewViewport(camera, width, height), nil
}

// Trace returns the colour seen along ray
func (s *Scene) Trace(ray core.Ray) core.Color {
	color, _ := s.TraceHit(ray)
	return color
}

// TraceHit is like Trace but also reports whether an object was hit
func (s *Scene) TraceHit(ray core.Ray) (core.Color, bool) {
	hit, ok := s.FindNearest(ray)
	if !ok {
		return ray.BackgroundColor(), false
	}
	return s.ColorAt(ray, hit.Point, hit.Shape), true
}

// FindNearest scans every shape and returns the closest intersection.
// On exact ties the shape added first wins.
func (s *Scene) FindNearest(ray core.Ray) (Hit, bool) {
	var nearest Hit
	found := false

	for _, shape := range s.Shapes {
		t, ok := shape.Intersect(ray)
		if ok && (!found || t < nearest.T) {
			nearest = Hit{T: t, Shape: shape}
			found = true
		}
	}

	if !found {
		return Hit{}, false
	}
	nearest.Point = ray.At(nearest.T)
	return nearest, true
}

// ColorAt shades point on shape as seen from the ray origin. Each light adds
// a Lambert diffuse term and a Blinn-Phong specular term. There are no
// shadows, and the material's ambient coefficient is not applied.
func (s *Scene) ColorAt(ray core.Ray, point core.Point, shape geometry.Shape) core.Color {
	normal := shape.NormalAt(point)
	mat := shape.GetMaterial()
	toView := ray.Origin.Subtract(point).Normalize()

	color := core.Black
	for _, light := range s.Lights {
		toLight := light.DirectionFrom(point)

		// Diffuse shading (Lambert)
		diffuse := mat.Color.Multiply(mat.Diffuse * math.Max(0, normal.Dot(toLight)))
		color = color.Add(diffuse)

		// Specular shading (Blinn-Phong); skipped when light and view are opposite
		halfway := toLight.Add(toView)
		if halfway.LengthSquared() == 0 {
			continue
		}
		intensity := math.Pow(math.Max(0, normal.Dot(halfway.Normalize())), mat.SpecularExponent)
		color = color.Add(light.Color.Multiply(mat.Specular * intensity))
	}
	return color
}
