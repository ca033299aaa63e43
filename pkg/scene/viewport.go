package scene

import "github.com/df07/go-phong-raytracer/pkg/core"

// Viewport maps pixel coordinates onto the virtual image plane z = 0.
// x spans [-1, 1] and y spans [-1/aspect, 1/aspect], sampled once per pixel
// with the first and last samples on the plane edges.
type Viewport struct {
	Camera        core.Point
	Width, Height int
	x0, xStep     float64
	y0, yStep     float64
}

// NewViewport creates the viewport for a width x height image
func NewViewport(camera core.Point, width, height int) Viewport {
	aspect := float64(width) / float64(height)
	x0, xStep := planeAxis(-1, 1, width)
	y0, yStep := planeAxis(-1/aspect, 1/aspect, height)

	return Viewport{
		Camera: camera,
		Width:  width,
		Height: height,
		x0:     x0,
		xStep:  xStep,
		y0:     y0,
		yStep:  yStep,
	}
}

// planeAxis returns the first sample and spacing for n samples over [lo, hi].
// A single sample sits at the centre.
func planeAxis(lo, hi float64, n int) (start, step float64) {
	if n == 1 {
		return (lo + hi) / 2, 0
	}
	return lo, (hi - lo) / float64(n-1)
}

// PlanePoint returns the point on the image plane sampled by pixel (i, j)
func (v Viewport) PlanePoint(i, j int) core.Point {
	return core.NewPoint(v.x0+float64(i)*v.xStep, v.y0+float64(j)*v.yStep, 0)
}

// PixelRay returns the camera ray through pixel (i, j)
func (v Viewport) PixelRay(i, j int) core.Ray {
	return core.NewRayFromPoints(v.Camera, v.PlanePoint(i, j))
}
