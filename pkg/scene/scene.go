package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	// ErrInvalidScene is returned when a scene cannot be rendered
	ErrInvalidScene = errors.New("invalid scene")
	// ErrUnknownScene is returned when a scene name is not registered
	ErrUnknownScene = errors.New("unknown scene")
)

// Scene contains all the elements needed for rendering.
// A scene is read-only while a render is in progress.
type Scene struct {
	Name    string
	Camera  core.Vec3 // Pinhole position; the image plane sits at z = camera.Z + 1
	Width   int       // Image width
	Height  int       // Image height
	Spheres []*geometry.Sphere
	Light   *lights.PointLight
}

// Hit describes the nearest intersection of a ray with the scene
type Hit struct {
	T      float64
	Sphere *geometry.Sphere
	Index  int // Position of Sphere in Scene.Spheres
}

// NearestHit scans every sphere and returns the closest intersection.
// On equal distances the sphere listed first wins.
func (s *Scene) NearestHit(ray core.Ray) (Hit, bool) {
	nearest := Hit{Index: -1}
	found := false

	for i, sphere := range s.Spheres {
		t, ok := sphere.Intersect(ray)
		if !ok {
			continue
		}
		if !found || t < nearest.T {
			nearest = Hit{T: t, Sphere: sphere, Index: i}
			found = true
		}
	}

	return nearest, found
}

// Occluded reports whether the ray hits any sphere at all.
// There is no distance limit, so spheres beyond the light also block it.
func (s *Scene) Occluded(ray core.Ray) bool {
	for _, sphere := range s.Spheres {
		if _, ok := sphere.Intersect(ray); ok {
			return true
		}
	}
	return false
}

// Validate checks the scene configuration before rendering
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if !s.Camera.IsFinite() {
		return fmt.Errorf("%w: camera position %v is not finite", ErrInvalidScene, s.Camera)
	}
	if s.Light == nil {
		return fmt.Errorf("%w: scene has no light", ErrInvalidScene)
	}
	if err := s.Light.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	for i, sphere := range s.Spheres {
		if sphere == nil {
			return fmt.Errorf("%w: sphere %d is nil", ErrInvalidScene, i)
		}
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("%w: sphere %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
