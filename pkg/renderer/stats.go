package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	BackgroundPixels int           // Primary rays that missed every sphere
	ShadowPixels     int           // Primary hits occluded from the light
	ShadedPixels     int           // Primary hits shaded with Phong
	ReflectionRays   int           // Secondary rays spawned by reflective surfaces
	MaxDepthReached  int           // Deepest recursion level any ray reached
	Fallbacks        int           // Pixels replaced by the background after a numeric failure
	Elapsed          time.Duration // Wall-clock render time
}

// traceStats accumulates counters for a single pixel or scanline
type traceStats struct {
	reflectionRays  int
	maxDepthReached int
	fallbacks       int
}

func (ts *traceStats) reachedDepth(depth int) {
	if depth > ts.maxDepthReached {
		ts.maxDepthReached = depth
	}
}

// merge folds a scanline's counters into the frame totals
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.BackgroundPixels += other.BackgroundPixels
	rs.ShadowPixels += other.ShadowPixels
	rs.ShadedPixels += other.ShadedPixels
	rs.ReflectionRays += other.ReflectionRays
	rs.Fallbacks += other.Fallbacks
	rs.MaxDepthReached = max(rs.MaxDepthReached, other.MaxDepthReached)
}
