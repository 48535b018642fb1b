// Package shading implements the Phong local illumination model.
package shading

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Fixed weights of the illumination terms
const (
	Ambient        = 0.1 // floor added regardless of light direction
	SpecularWeight = 0.5
)

// Phong shades a surface point. normal, viewDir and lightDir must be unit vectors;
// viewDir points toward the viewer and lightDir toward the light.
func Phong(base core.Color, normal, viewDir, lightDir core.Vec3, intensity, specular float64) core.Color {
	factor := Factor(normal, viewDir, lightDir, intensity, specular)
	return base.Scale(factor)
}

// Factor returns the scalar multiplier Phong applies to every channel of the base color
func Factor(normal, viewDir, lightDir core.Vec3, intensity, specular float64) float64 {
	diffuse := math.Max(0, normal.Dot(lightDir))

	// Light direction mirrored about the normal
	reflectDir := normal.Multiply(2 * normal.Dot(lightDir)).Subtract(lightDir)
	spec := math.Pow(math.Max(0, reflectDir.Dot(viewDir)), specular)

	return Ambient + diffuse*intensity + SpecularWeight*spec
}
