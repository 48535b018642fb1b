package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, -1), 600, 400)

	tests := []struct {
		name      string
		x, y      int
		direction core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(-1, 1, 1)},
		{"center", 300, 200, core.NewVec3(0, 0, 1)},
		{"right edge middle", 600, 200, core.NewVec3(1, 0, 1)},
		{"bottom row", 300, 400, core.NewVec3(0, -1, 1)},
		{"quarter", 150, 100, core.NewVec3(-0.5, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.x, tt.y)
			if ray.Origin != core.NewVec3(0, 0, -1) {
				t.Errorf("Expected origin at camera, got %v", ray.Origin)
			}
			expected := tt.direction.Normalize()
			if ray.Direction.Subtract(expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-12 {
				t.Errorf("Direction is not unit length: %v", ray.Direction)
			}
		})
	}
}

func TestCamera_Project(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, -1), 600, 400)

	x, y, ok := camera.Project(core.NewVec3(0, -0.2, 3))
	if !ok {
		t.Fatal("Expected point in front of camera to project")
	}
	if x != 300 || y != 210 {
		t.Errorf("Expected pixel (300, 210), got (%d, %d)", x, y)
	}

	if _, _, ok := camera.Project(core.NewVec3(0, 0, -2)); ok {
		t.Error("Expected point behind camera not to project")
	}
}
