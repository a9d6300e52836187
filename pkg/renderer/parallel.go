package renderer

import (
	"context"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// RenderParallel renders the image across numWorkers goroutines, each
// owning a disjoint band of rows. Scene data is read-only during the pass
// and every pixel is traced independently, so the output is identical to
// RenderPass pixel for pixel. numWorkers <= 0 uses the CPU count.
func (rt *Raytracer) RenderParallel(ctx context.Context, numWorkers int) (*image.RGBA, RenderStats, error) {
	start := time.Now()

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > rt.height {
		numWorkers = rt.height
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	rowsPerWorker := (rt.height + numWorkers - 1) / numWorkers

	g, ctx := errgroup.WithContext(ctx)
	for band := 0; band < numWorkers; band++ {
		yMin := band * rowsPerWorker
		yMax := min(yMin+rowsPerWorker, rt.height)
		if yMin >= yMax {
			break
		}

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rt.renderRows(img, yMin, yMax)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Workers:     numWorkers,
		Duration:    time.Since(start),
	}
	rt.logger.Printf("Rendered %dx%d with %d workers in %v\n", rt.width, rt.height, stats.Workers, stats.Duration)

	return img, stats, nil
}
