package raster

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Image is a fixed-size, row-major grid of colours. Each cell starts unset
// and is filled with SetPixel. Writes to distinct cells may happen
// concurrently.
type Image struct {
	width, height int
	pixels        []core.Color
	set           []bool
}

// NewImage creates an image with every pixel unset.
// It panics if width or height is not positive.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid image size %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
		set:    make([]bool, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// SetPixel stores the colour at (x, y). Out-of-range coordinates panic.
func (img *Image) SetPixel(x, y int, c core.Color) {
	i := img.index(x, y)
	img.pixels[i] = c
	img.set[i] = true
}

// Pixel returns the colour at (x, y) and whether it has been set
func (img *Image) Pixel(x, y int) (core.Color, bool) {
	i := img.index(x, y)
	return img.pixels[i], img.set[i]
}

// Complete reports whether every pixel has been set
func (img *Image) Complete() bool {
	for _, ok := range img.set {
		if !ok {
			return false
		}
	}
	return true
}

func (img *Image) index(x, y int) int {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panic(fmt.Sprintf("raster: pixel (%d, %d) out of bounds for %dx%d image", x, y, img.width, img.height))
	}
	return y*img.width + x
}
