package loaders

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneFile is the YAML representation of a scene
type SceneFile struct {
	Name    string        `yaml:"name,omitempty"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Camera  []float64     `yaml:"camera,flow"`
	Light   LightEntry    `yaml:"light"`
	Spheres []SphereEntry `yaml:"spheres"`
}

// LightEntry describes the point light
type LightEntry struct {
	Position  []float64 `yaml:"position,flow"`
	Intensity float64   `yaml:"intensity"`
}

// SphereEntry describes one sphere. Missing specular and reflective take the sphere defaults.
type SphereEntry struct {
	Center     []float64 `yaml:"center,flow"`
	Radius     float64   `yaml:"radius"`
	Color      []int     `yaml:"color,flow"`
	Specular   *float64  `yaml:"specular,omitempty"`
	Reflective *float64  `yaml:"reflective,omitempty"`
}

// LoadSceneFile reads and validates a YAML scene file
func LoadSceneFile(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseScene decodes a YAML scene description and validates the result
func ParseScene(data []byte) (*scene.Scene, error) {
	var file SceneFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	camera, err := toVec3("camera", file.Camera)
	if err != nil {
		return nil, err
	}
	lightPos, err := toVec3("light.position", file.Light.Position)
	if err != nil {
		return nil, err
	}

	s := &scene.Scene{
		Name:    file.Name,
		Camera:  camera,
		Width:   file.Width,
		Height:  file.Height,
		Spheres: make([]*geometry.Sphere, 0, len(file.Spheres)),
		Light:   lights.NewPointLight(lightPos, file.Light.Intensity),
	}

	for i, entry := range file.Spheres {
		sphere, err := entry.toSphere()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Spheres = append(s.Spheres, sphere)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (e SphereEntry) toSphere() (*geometry.Sphere, error) {
	center, err := toVec3("center", e.Center)
	if err != nil {
		return nil, err
	}
	color, err := toColor(e.Color)
	if err != nil {
		return nil, err
	}

	var opts []geometry.SphereOption
	if e.Specular != nil {
		opts = append(opts, geometry.WithSpecular(*e.Specular))
	}
	if e.Reflective != nil {
		opts = append(opts, geometry.WithReflective(*e.Reflective))
	}
	return geometry.NewSphere(center, e.Radius, color, opts...), nil
}

// SaveSceneFile writes a scene in the format read by LoadSceneFile
func SaveSceneFile(path string, s *scene.Scene) error {
	data, err := MarshalScene(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MarshalScene encodes a scene as YAML
func MarshalScene(s *scene.Scene) ([]byte, error) {
	if s.Light == nil {
		return nil, fmt.Errorf("%w: scene has no light", scene.ErrInvalidScene)
	}

	file := SceneFile{
		Name:   s.Name,
		Width:  s.Width,
		Height: s.Height,
		Camera: fromVec3(s.Camera),
		Light: LightEntry{
			Position:  fromVec3(s.Light.Position),
			Intensity: s.Light.Intensity,
		},
		Spheres: make([]SphereEntry, len(s.Spheres)),
	}
	for i, sphere := range s.Spheres {
		specular, reflective := sphere.Specular, sphere.Reflective
		file.Spheres[i] = SphereEntry{
			Center:     fromVec3(sphere.Center),
			Radius:     sphere.Radius,
			Color:      []int{int(sphere.Color.R), int(sphere.Color.G), int(sphere.Color.B)},
			Specular:   &specular,
			Reflective: &reflective,
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(file); err != nil {
		return nil, fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toVec3(field string, v []float64) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func fromVec3(v core.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func toColor(c []int) (core.Color, error) {
	if len(c) != 3 {
		return core.Color{}, fmt.Errorf("color: expected 3 channels, got %d", len(c))
	}
	for _, channel := range c {
		if channel < 0 || channel > 255 {
			return core.Color{}, fmt.Errorf("color: channel %d outside [0, 255]", channel)
		}
	}
	return core.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2])), nil
}
