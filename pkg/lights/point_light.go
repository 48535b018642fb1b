package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidLight is returned when light parameters are out of range
var ErrInvalidLight = errors.New("invalid light")

// PointLight is an infinitesimal light source with a scalar intensity
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit direction from point toward the light.
// Fails when point coincides with the light position.
func (l *PointLight) DirectionFrom(point core.Vec3) (core.Vec3, error) {
	dir, err := l.Position.Subtract(point).NormalizeChecked()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("light direction from %v: %w", point, err)
	}
	return dir, nil
}

// Validate checks that the light can be used for shading
func (l *PointLight) Validate() error {
	if !l.Position.IsFinite() {
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidLight, l.Position)
	}
	if !(l.Intensity >= 0) || math.IsInf(l.Intensity, 0) {
		return fmt.Errorf("%w: intensity must be non-negative, got %v", ErrInvalidLight, l.Intensity)
	}
	return nil
}
