package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Default surface parameters for a sphere
const (
	DefaultSpecular   = 50.0
	DefaultReflective = 0.0
)

// ErrInvalidSphere is returned when sphere parameters are out of range
var ErrInvalidSphere = errors.New("invalid sphere")

// Sphere represents a sphere shape with its surface parameters
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	Color      core.Color
	Specular   float64 // Phong exponent
	Reflective float64 // Blend weight of the mirror reflection, 0 = fully diffuse
}

// SphereOption customizes a sphere at construction
type SphereOption func(*Sphere)

// WithSpecular sets the Phong specular exponent
func WithSpecular(exponent float64) SphereOption {
	return func(s *Sphere) { s.Specular = exponent }
}

// WithReflective sets the reflectivity in [0, 1]
func WithReflective(reflective float64) SphereOption {
	return func(s *Sphere) { s.Reflective = reflective }
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color, opts ...SphereOption) *Sphere {
	s := &Sphere{
		Center:     center,
		Radius:     radius,
		Color:      color,
		Specular:   DefaultSpecular,
		Reflective: DefaultReflective,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Intersect returns the smallest strictly positive distance along the ray at which
// it meets the sphere surface. A root of exactly zero does not count, so rays leaving
// the surface never hit their own starting point.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || math.IsNaN(discriminant) {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	// Try the closer intersection point first
	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}
	return 0, false
}

// NormalAt returns the outward unit normal for a point on the surface
func (s *Sphere) NormalAt(point core.Vec3) (core.Vec3, error) {
	normal, err := point.Subtract(s.Center).NormalizeChecked()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("sphere normal at %v: %w", point, err)
	}
	return normal, nil
}

// Validate checks that the sphere can be rendered
func (s *Sphere) Validate() error {
	switch {
	case !s.Center.IsFinite():
		return fmt.Errorf("%w: center %v is not finite", ErrInvalidSphere, s.Center)
	case !(s.Radius > 0) || math.IsInf(s.Radius, 0):
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidSphere, s.Radius)
	case !(s.Specular >= 0) || math.IsInf(s.Specular, 0):
		return fmt.Errorf("%w: specular exponent must be non-negative, got %v", ErrInvalidSphere, s.Specular)
	case !(s.Reflective >= 0 && s.Reflective <= 1):
		return fmt.Errorf("%w: reflectivity must be within [0, 1], got %v", ErrInvalidSphere, s.Reflective)
	}
	return nil
}
