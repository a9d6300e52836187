package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Workers     int           // Number of goroutines that rendered the pass
	Duration    time.Duration // Wall-clock time for the pass
}
