package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/raster"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config contains configuration for parallel rendering
type Config struct {
	NumWorkers  int // Number of parallel workers (0 = use CPU count)
	RowsPerTask int // Image rows rendered by each task
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers:  0,
		RowsPerTask: 8,
	}
}

// Scene is the read-only view of a scene the renderer needs
type Scene interface {
	Viewport(width, height int) (scene.Viewport, error)
	TraceHit(ray core.Ray) (core.Color, bool)
}

// Raytracer renders a scene by splitting the image into row bands and
// tracing them concurrently. The scene is only read, and each band writes
// a disjoint set of pixels.
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s Scene, config Config, logger core.Logger) *Raytracer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.RowsPerTask <= 0 {
		config.RowsPerTask = DefaultConfig().RowsPerTask
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel of a width x height image. It stops early and
// returns the context's error if ctx is cancelled.
func (rt *Raytracer) Render(ctx context.Context, width, height int) (*raster.Image, RenderStats, error) {
	viewport, err := rt.scene.Viewport(width, height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	bands := splitRows(height, rt.config.RowsPerTask)
	rt.logger.Printf("Rendering %dx%d in %d bands (using %d workers)...\n",
		width, height, len(bands), rt.config.NumWorkers)

	startTime := time.Now()
	img := raster.NewImage(width, height)
	stats, err := rt.renderBands(ctx, viewport, img, bands)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats.Duration = time.Since(startTime)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	rt.logger.Printf("Render completed in %v: %d object pixels, %d background pixels\n",
		stats.Duration, stats.HitPixels, stats.BackgroundPixels)

	return img, stats, nil
}

// renderBand traces every pixel in the band, matching the per-pixel
// order of scene.Scene.Render
func (rt *Raytracer) renderBand(viewport scene.Viewport, img *raster.Image, band rowBand) RenderStats {
	var stats RenderStats
	for j := band.minY; j < band.maxY; j++ {
		for i := 0; i < viewport.Width; i++ {
			color, hit := rt.scene.TraceHit(viewport.PixelRay(i, j))
			img.SetPixel(i, j, color)

			stats.TotalPixels++
			if hit {
				stats.HitPixels++
			} else {
				stats.BackgroundPixels++
			}
		}
	}
	return stats
}
