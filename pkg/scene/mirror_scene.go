package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewMirrorScene creates two fully reflective spheres facing each other.
// Rays bounce between them until the depth limit cuts the recursion off.
func NewMirrorScene() *Scene {
	return &Scene{
		Name:   "mirrors",
		Camera: core.NewVec3(0, 0, -1),
		Width:  400,
		Height: 400,
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(-1.2, 0, 4), 1, core.NewColor(220, 180, 60),
				geometry.WithSpecular(300), geometry.WithReflective(1)),
			geometry.NewSphere(core.NewVec3(1.2, 0, 4), 1, core.NewColor(60, 180, 220),
				geometry.WithSpecular(300), geometry.WithReflective(1)),
		},
		Light: lights.NewPointLight(core.NewVec3(0, 0, -10), 1.2),
	}
}
