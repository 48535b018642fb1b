package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var white = core.NewColor(255, 255, 255)

func TestNewSphere_Defaults(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	if sphere.Specular != 50 {
		t.Errorf("Expected default specular 50, got %f", sphere.Specular)
	}
	if sphere.Reflective != 0 {
		t.Errorf("Expected default reflectivity 0, got %f", sphere.Reflective)
	}

	sphere = NewSphere(core.NewVec3(0, 0, 0), 1.0, white, WithSpecular(200), WithReflective(0.6))
	if sphere.Specular != 200 || sphere.Reflective != 0.6 {
		t.Errorf("Options not applied: specular=%f reflective=%f", sphere.Specular, sphere.Reflective)
	}
}

func TestSphere_Intersect_AlongAxis(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		distance float64
	}{
		{"unit sphere", 1.0, 3.0},
		{"large sphere", 10.0, 25.0},
		{"small sphere", 0.25, 1.0},
		{"just outside", 1.0, 1.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius, white)
			for _, axis := range []core.Vec3{
				core.NewVec3(1, 0, 0),
				core.NewVec3(0, -1, 0),
				core.NewVec3(0.6, 0, 0.8),
			} {
				origin := axis.Multiply(tt.distance)
				ray := core.NewRay(origin, origin.Negate())

				hitT, isHit := sphere.Intersect(ray)
				if !isHit {
					t.Fatalf("Expected hit from %v, but got miss", origin)
				}
				if math.Abs(hitT-(tt.distance-tt.radius)) > 1e-6 {
					t.Errorf("Expected t=%f, got t=%f", tt.distance-tt.radius, hitT)
				}

				away := core.NewRay(origin, origin)
				if hitT, isHit := sphere.Intersect(away); isHit {
					t.Errorf("Expected miss pointing away from %v, got hit at t=%f", origin, hitT)
				}
			}
		})
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hitT, isHit := sphere.Intersect(ray); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hitT)
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, white)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hitT, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected exit hit from inside, but got miss")
	}
	if math.Abs(hitT-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hitT)
	}
}

func TestSphere_Intersect_ZeroRootRejected(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)

	// Origin exactly on the surface, heading outward: roots are -2 and 0
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	if hitT, isHit := sphere.Intersect(ray); isHit {
		t.Errorf("Expected zero root to be rejected, got hit at t=%f", hitT)
	}
}

func TestSphere_Intersect_OffsetShadowRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	light := core.NewVec3(5, 10, -5)

	// Lit points: the normal faces the light
	for _, dir := range []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 1, -1),
		core.NewVec3(0.2, 0.9, -0.1),
	} {
		normal := dir.Normalize()
		hit := sphere.Center.Add(normal.Multiply(sphere.Radius))
		toLight := light.Subtract(hit).Normalize()
		if normal.Dot(toLight) <= 0 {
			t.Fatalf("Test point %v is not lit", hit)
		}

		shadowRay := core.NewRay(hit.Add(normal.Multiply(0.001)), toLight)
		if hitT, isHit := sphere.Intersect(shadowRay); isHit {
			t.Errorf("Shadow ray from %v hit its own sphere at t=%g", hit, hitT)
		}
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 2.0, white)

	normal, err := sphere.NormalAt(core.NewVec3(1, 3, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if normal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected (0,1,0), got %v", normal)
	}

	if _, err := sphere.NormalAt(sphere.Center); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector at center, got %v", err)
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sphere  *Sphere
		wantErr bool
	}{
		{"valid", NewSphere(core.NewVec3(0, 0, 0), 1, white), false},
		{"valid mirror", NewSphere(core.NewVec3(0, 0, 0), 1, white, WithReflective(1), WithSpecular(0)), false},
		{"zero radius", NewSphere(core.NewVec3(0, 0, 0), 0, white), true},
		{"negative radius", NewSphere(core.NewVec3(0, 0, 0), -1, white), true},
		{"NaN radius", NewSphere(core.NewVec3(0, 0, 0), math.NaN(), white), true},
		{"infinite center", NewSphere(core.NewVec3(math.Inf(1), 0, 0), 1, white), true},
		{"negative specular", NewSphere(core.NewVec3(0, 0, 0), 1, white, WithSpecular(-1)), true},
		{"reflectivity above one", NewSphere(core.NewVec3(0, 0, 0), 1, white, WithReflective(1.5)), true},
		{"negative reflectivity", NewSphere(core.NewVec3(0, 0, 0), 1, white, WithReflective(-0.1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sphere.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSphere) {
					t.Errorf("Expected ErrInvalidSphere, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
