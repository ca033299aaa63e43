package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/raster"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose ray hit an object
	BackgroundPixels int           // Pixels that fell through to the background
	Bands            int           // Number of row bands rendered
	Workers          int           // Maximum number of concurrent workers
	Duration         time.Duration // Wall-clock render time
	AverageLuminance float64       // Mean Rec. 709 luminance of the output bytes, in [0, 1]
}

// merge adds the pixel counts of another band
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.BackgroundPixels += other.BackgroundPixels
}

// CalculateAverageLuminance returns the mean luminance of the image as it
// will be written out, i.e. after clamping to bytes
func CalculateAverageLuminance(img *raster.Image) float64 {
	total := 0.0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c, _ := img.Pixel(x, y)
			r, g, b := c.Bytes()
			total += 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
		}
	}
	return total / 255 / float64(img.Width()*img.Height())
}
