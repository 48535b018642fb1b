package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// oklchToRGB converts OKLCH color values to 8-bit RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(
		core.ClampChannel(255*r),
		core.ClampChannel(255*g),
		core.ClampChannel(255*blue),
	)
}

// NewSphereGridScene creates a grid of spheres resting on the ground sphere.
// Hue varies across X, shininess and reflectivity across Z.
func NewSphereGridScene() *Scene {
	s := &Scene{
		Name:    "spheregrid",
		Camera:  core.NewVec3(0, 0, -1),
		Width:   600,
		Height:  400,
		Spheres: make([]*geometry.Sphere, 0),
		Light:   lights.NewPointLight(core.NewVec3(-4, 12, -6), 1.3),
	}

	groundY := -1.0
	s.Spheres = append(s.Spheres, geometry.NewSphere(
		core.NewVec3(0, groundY-5000, 0), 5000, core.NewColor(180, 180, 180),
		geometry.WithSpecular(10), geometry.WithReflective(0.15),
	))

	gridSize := 5
	spacing := 1.1
	radius := 0.4

	baseLightness := 0.7
	minChroma := 0.08
	maxChroma := 0.2

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			z := 3.5 + float64(j)*spacing
			position := core.NewVec3(x, groundY+radius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.05*math.Sin(float64(i+j)*0.5)

			sphere := geometry.NewSphere(position, radius, oklchToRGB(lightness, chroma, hue),
				geometry.WithSpecular(20+40*float64(j)),
				geometry.WithReflective(0.1*float64((i+j)%4)),
			)
			s.Spheres = append(s.Spheres, sphere)
		}
	}

	return s
}
