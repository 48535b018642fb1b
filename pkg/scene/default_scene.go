package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewReferenceScene creates the reference configuration: three spheres over a
// huge ground sphere, lit by a single point light
func NewReferenceScene() *Scene {
	return &Scene{
		Name:   "reference",
		Camera: core.NewVec3(0, 0, -1),
		Width:  600,
		Height: 400,
		Spheres: []*geometry.Sphere{
			// Red mirror-like sphere in the middle
			geometry.NewSphere(core.NewVec3(0, -0.2, 3), 1, core.NewColor(200, 50, 50),
				geometry.WithSpecular(200), geometry.WithReflective(0.6)),
			geometry.NewSphere(core.NewVec3(-1.5, 0, 4), 1, core.NewColor(50, 200, 50),
				geometry.WithSpecular(100)),
			geometry.NewSphere(core.NewVec3(2, 0, 4), 1, core.NewColor(50, 50, 200),
				geometry.WithSpecular(100)),
			// Ground
			geometry.NewSphere(core.NewVec3(0, -5001, 0), 5000, core.NewColor(200, 200, 200),
				geometry.WithSpecular(10), geometry.WithReflective(0.1)),
		},
		Light: lights.NewPointLight(core.NewVec3(5, 10, -5), 1.5),
	}
}
