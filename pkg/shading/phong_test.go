package shading

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPhong_Terms(t *testing.T) {
	up := core.NewVec3(0, 1, 0)
	base := core.NewColor(100, 50, 20)

	tests := []struct {
		name      string
		viewDir   core.Vec3
		lightDir  core.Vec3
		intensity float64
		specular  float64
		expected  core.Color
	}{
		{
			// diffuse 1, spec 1: factor 0.1 + 1 + 0.5 = 1.6
			name:      "light and viewer along normal",
			viewDir:   up,
			lightDir:  up,
			intensity: 1,
			specular:  50,
			expected:  core.NewColor(160, 80, 32),
		},
		{
			// light behind the surface: diffuse 0, reflected light points down so spec 0
			name:      "light behind surface",
			viewDir:   up,
			lightDir:  core.NewVec3(0, -1, 0),
			intensity: 1,
			specular:  50,
			expected:  core.NewColor(10, 5, 2),
		},
		{
			// grazing light: diffuse 0, reflected light is -x so spec 0 toward a +x viewer
			name:      "grazing light",
			viewDir:   core.NewVec3(1, 0, 0),
			lightDir:  core.NewVec3(1, 0, 0),
			intensity: 2,
			specular:  10,
			expected:  core.NewColor(10, 5, 2),
		},
		{
			// zero intensity keeps the ambient floor and the specular highlight
			name:      "dark light",
			viewDir:   up,
			lightDir:  up,
			intensity: 0,
			specular:  50,
			expected:  core.NewColor(60, 30, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phong(base, up, tt.viewDir, tt.lightDir, tt.intensity, tt.specular)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPhong_SpecularExponent(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	lightDir := core.NewVec3(1, 1, 0).Normalize()
	viewDir := core.NewVec3(-1, 1, 0.6).Normalize()

	// A higher exponent tightens the highlight, so the factor can only drop
	low := Factor(normal, viewDir, lightDir, 1, 5)
	high := Factor(normal, viewDir, lightDir, 1, 200)
	if high > low {
		t.Errorf("Expected exponent 200 factor %f <= exponent 5 factor %f", high, low)
	}

	diffuse := normal.Dot(lightDir)
	if math.Abs(high-(Ambient+diffuse)) > 0.01 {
		t.Errorf("Expected highlight to vanish at exponent 200, factor %f", high)
	}
}

func TestPhong_Clamping(t *testing.T) {
	normal := core.NewVec3(0, 0, -1)
	base := core.NewColor(255, 128, 1)

	for _, intensity := range []float64{10, 1e6, math.Inf(1)} {
		got := Phong(base, normal, normal, normal, intensity, 1)
		if got.R != 255 || got.G != 255 {
			t.Errorf("Intensity %g: expected saturated R and G, got %v", intensity, got)
		}
	}

	// Channels at zero stay zero
	got := Phong(core.NewColor(0, 0, 0), normal, normal, normal, 1e6, 1)
	if got != (core.Color{}) {
		t.Errorf("Expected black, got %v", got)
	}
}
