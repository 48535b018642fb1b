package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestResolveScene(t *testing.T) {
	dir := t.TempDir()
	custom := `name: custom
width: 32
height: 16
camera: [0, 0, -1]
light: {position: [5, 10, -5], intensity: 1}
spheres:
  - {center: [0, 0, 3], radius: 1, color: [200, 50, 50]}
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(custom), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	tests := []struct {
		name      string
		ref       string
		wantName  string
		wantError bool
	}{
		{"built-in", "reference", "reference", false},
		{"built-in mirrors", "mirrors", "mirrors", false},
		{"file id", "file:custom", "custom", false},
		{"bare file name", "custom", "custom", false},
		{"explicit path", filepath.Join(dir, "custom.yaml"), "custom", false},
		{"unknown", "nonexistent", "", true},
		{"unknown file id", "file:nonexistent", "", true},
		{"missing path", filepath.Join(dir, "missing.yaml"), "", true},
		{"path traversal", "file:../custom", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ResolveScene(tt.ref, dir)
			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error for %q, got scene %v", tt.ref, s.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.ref, err)
			}
			if s.Name != tt.wantName {
				t.Errorf("Expected scene %q, got %q", tt.wantName, s.Name)
			}
		})
	}
}

func TestResolveSceneUnknownIsSentinel(t *testing.T) {
	_, err := ResolveScene("nonexistent", t.TempDir())
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
