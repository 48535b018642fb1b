package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ResolveScene turns a scene reference into a scene. The reference may be a built-in
// scene name, a path to a .yaml/.yml file, a "file:<name>" id from scene discovery,
// or the bare name of a file in sceneDir.
func ResolveScene(name, sceneDir string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}

	if isSceneFilePath(name) {
		return LoadSceneFile(name)
	}

	if fileName, ok := strings.CutPrefix(name, "file:"); ok {
		path, found := findSceneFile(sceneDir, fileName)
		if !found {
			return nil, fmt.Errorf("%w: %q not found in %s", scene.ErrUnknownScene, fileName, sceneDir)
		}
		return LoadSceneFile(path)
	}

	s, err := scene.Lookup(name)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, scene.ErrUnknownScene) {
		return nil, err
	}

	// Fall back to a scene file with the same name
	if path, found := findSceneFile(sceneDir, name); found {
		return LoadSceneFile(path)
	}
	return nil, err
}

func isSceneFilePath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func findSceneFile(dir, name string) (string, bool) {
	if dir == "" || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
