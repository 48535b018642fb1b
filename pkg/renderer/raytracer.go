package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Config contains rendering configuration
type Config struct {
	MaxDepth int     // Deepest recursion level allowed to spawn a reflection ray
	Epsilon  float64 // Offset along the normal for shadow and reflection ray origins
	Workers  int     // Scanline workers; 1 or less renders sequentially
}

// DefaultConfig returns the reference rendering configuration
func DefaultConfig() Config {
	return Config{
		MaxDepth: 2,
		Epsilon:  0.001,
		Workers:  1,
	}
}

// outcome classifies how a ray was resolved
type outcome int

const (
	outcomeBackground outcome = iota
	outcomeShadow
	outcomeShaded
)

// Raytracer renders a scene with recursive Phong shading, hard shadows and mirror reflection
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger *zap.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables logging.
func NewRaytracer(s *scene.Scene, config Config, logger *zap.Logger) *Raytracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s.Camera, s.Width, s.Height),
		config: config,
		logger: logger,
	}
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// TraceRay returns the color seen along ray at the given recursion depth.
// Numeric failures resolve to the background color.
func (rt *Raytracer) TraceRay(ray core.Ray, depth int) core.Color {
	var ts traceStats
	color, _, err := rt.trace(ray, depth, &ts)
	if err != nil {
		return core.Background
	}
	return color
}

// trace is the recursive core of TraceRay
func (rt *Raytracer) trace(ray core.Ray, depth int, ts *traceStats) (core.Color, outcome, error) {
	ts.reachedDepth(depth)

	hit, isHit := rt.scene.NearestHit(ray)
	if !isHit {
		return core.Background, outcomeBackground, nil
	}
	if math.IsInf(hit.T, 0) || math.IsNaN(hit.T) {
		return core.Color{}, outcomeBackground, fmt.Errorf("non-finite hit distance on sphere %d", hit.Index)
	}

	point := ray.At(hit.T)
	normal, err := hit.Sphere.NormalAt(point)
	if err != nil {
		return core.Color{}, outcomeBackground, err
	}
	toLight, err := rt.scene.Light.DirectionFrom(point)
	if err != nil {
		return core.Color{}, outcomeBackground, err
	}

	// Hard shadow: any sphere along the way to the light blocks it entirely
	offset := point.Add(normal.Multiply(rt.config.Epsilon))
	if rt.scene.Occluded(core.NewRay(offset, toLight)) {
		return core.Shadow, outcomeShadow, nil
	}

	viewDir, err := ray.Origin.Subtract(point).NormalizeChecked()
	if err != nil {
		return core.Color{}, outcomeBackground, fmt.Errorf("view direction: %w", err)
	}

	sphere := hit.Sphere
	local := shading.Phong(sphere.Color, normal, viewDir, toLight, rt.scene.Light.Intensity, sphere.Specular)

	if depth < rt.config.MaxDepth && sphere.Reflective > 0 {
		reflectRay := core.NewRay(offset, ray.Direction.Reflect(normal))
		ts.reflectionRays++

		reflected, _, err := rt.trace(reflectRay, depth+1, ts)
		if err != nil {
			return core.Color{}, outcomeBackground, err
		}
		return local.Blend(reflected, sphere.Reflective), outcomeShaded, nil
	}

	return local, outcomeShaded, nil
}

// renderRow renders scanline y into frame and returns its statistics
func (rt *Raytracer) renderRow(y int, frame *Frame) RenderStats {
	var stats RenderStats

	for x := 0; x < frame.Width; x++ {
		var ts traceStats
		color, kind, err := rt.trace(rt.camera.GetRay(x, y), 0, &ts)
		if err != nil {
			rt.logger.Debug("pixel fell back to background",
				zap.Int("x", x), zap.Int("y", y), zap.Error(err))
			color = core.Background
			ts.fallbacks++
		} else {
			switch kind {
			case outcomeBackground:
				stats.BackgroundPixels++
			case outcomeShadow:
				stats.ShadowPixels++
			case outcomeShaded:
				stats.ShadedPixels++
			}
		}

		frame.Set(x, y, color)
		stats.TotalPixels++
		stats.ReflectionRays += ts.reflectionRays
		stats.Fallbacks += ts.fallbacks
		stats.MaxDepthReached = max(stats.MaxDepthReached, ts.maxDepthReached)
	}

	return stats
}

// Render traces every pixel of the scene and returns the complete frame.
// The context is checked between scanlines; a cancelled render returns no frame.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if rt.scene.Width <= 0 || rt.scene.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: image size %dx%d", scene.ErrInvalidScene, rt.scene.Width, rt.scene.Height)
	}
	if rt.scene.Light == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: scene has no light", scene.ErrInvalidScene)
	}

	rt.logger.Info("render started",
		zap.String("scene", rt.scene.Name),
		zap.Int("width", rt.scene.Width),
		zap.Int("height", rt.scene.Height),
		zap.Int("spheres", rt.scene.GetPrimitiveCount()),
		zap.Int("workers", max(1, rt.config.Workers)),
	)

	start := time.Now()
	frame := NewFrame(rt.scene.Width, rt.scene.Height)

	var stats RenderStats
	var err error
	if rt.config.Workers > 1 {
		stats, err = rt.renderParallel(ctx, frame)
	} else {
		stats, err = rt.renderSequential(ctx, frame)
	}
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render %s: %w", rt.scene.Name, err)
	}
	stats.Elapsed = time.Since(start)

	rt.logger.Info("render completed",
		zap.Duration("elapsed", stats.Elapsed),
		zap.Int("background", stats.BackgroundPixels),
		zap.Int("shadow", stats.ShadowPixels),
		zap.Int("shaded", stats.ShadedPixels),
		zap.Int("reflectionRays", stats.ReflectionRays),
		zap.Int("fallbacks", stats.Fallbacks),
	)
	if stats.Fallbacks > 0 {
		rt.logger.Warn("some pixels fell back to the background color", zap.Int("count", stats.Fallbacks))
	}

	return frame, stats, nil
}

func (rt *Raytracer) renderSequential(ctx context.Context, frame *Frame) (RenderStats, error) {
	var stats RenderStats
	for y := 0; y < frame.Height; y++ {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		stats.merge(rt.renderRow(y, frame))
	}
	return stats, nil
}

func (rt *Raytracer) renderParallel(ctx context.Context, frame *Frame) (RenderStats, error) {
	pool := NewWorkerPool(ctx, rt, frame, rt.config.Workers)
	pool.Start()

	for y := 0; y < frame.Height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}
	pool.Stop()

	var stats RenderStats
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
	}
	if firstErr != nil {
		return RenderStats{}, firstErr
	}
	return stats, nil
}
