package renderer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-phong-raytracer/pkg/raster"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// rowBand is a half-open range of image rows [minY, maxY)
type rowBand struct {
	minY, maxY int
}

// splitRows partitions height rows into bands of at most rowsPerTask rows
func splitRows(height, rowsPerTask int) []rowBand {
	bands := make([]rowBand, 0, (height+rowsPerTask-1)/rowsPerTask)
	for y := 0; y < height; y += rowsPerTask {
		bands = append(bands, rowBand{minY: y, maxY: min(y+rowsPerTask, height)})
	}
	return bands
}

// renderBands renders every band on at most NumWorkers goroutines and
// merges the per-band statistics
func (rt *Raytracer) renderBands(ctx context.Context, viewport scene.Viewport, img *raster.Image, bands []rowBand) (RenderStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.config.NumWorkers)

	// One slot per band so workers never share a write target
	results := make([]RenderStats, len(bands))
	for i, band := range bands {
		i, band := i, band // per-iteration copies (go directive predates 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = rt.renderBand(viewport, img, band)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{
		Bands:   len(bands),
		Workers: rt.config.NumWorkers,
	}
	for _, r := range results {
		stats.merge(r)
	}
	return stats, nil
}
