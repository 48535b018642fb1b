package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit         bool           `json:"hit"`
	SphereIndex int            `json:"sphereIndex"`
	Point       [3]float64     `json:"point"`
	Normal      [3]float64     `json:"normal"`
	Distance    float64        `json:"distance"`
	Shadowed    bool           `json:"shadowed"`
	Color       [3]uint8       `json:"color"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// InspectResult contains information about the sphere seen through a pixel
type InspectResult struct {
	Hit      bool
	Record   scene.Hit
	Point    core.Vec3
	Normal   core.Vec3
	Shadowed bool
	Color    core.Color
}

// inspectPixel casts the primary ray through a pixel and reports the first sphere hit
// along with the color the renderer produces for that pixel
func inspectPixel(sceneObj *scene.Scene, rt *renderer.Raytracer, pixelX, pixelY int) InspectResult {
	ray := rt.Camera().GetRay(pixelX, pixelY)
	result := InspectResult{Color: rt.TraceRay(ray, 0)}

	hit, isHit := sceneObj.NearestHit(ray)
	if !isHit {
		return result
	}

	point := ray.At(hit.T)
	normal, err := hit.Sphere.NormalAt(point)
	if err != nil {
		return result
	}

	result.Hit = true
	result.Record = hit
	result.Point = point
	result.Normal = normal
	if toLight, err := sceneObj.Light.DirectionFrom(point); err == nil {
		offset := point.Add(normal.Multiply(renderer.DefaultConfig().Epsilon))
		result.Shadowed = sceneObj.Occluded(core.NewRay(offset, toLight))
	}
	return result
}

// sphereProperties describes the surface parameters of a sphere
func sphereProperties(sphere *geometry.Sphere) map[string]any {
	return map[string]any{
		"center":     vecArray(sphere.Center),
		"radius":     sphere.Radius,
		"color":      [3]uint8{sphere.Color.R, sphere.Color.G, sphere.Color.B},
		"specular":   sphere.Specular,
		"reflective": sphere.Reflective,
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, status, err := s.createScene(req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	if err := sceneObj.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds for %dx%d image", sceneObj.Width, sceneObj.Height))
		return
	}

	rt := renderer.NewRaytracer(sceneObj, renderer.DefaultConfig(), nil)
	result := inspectPixel(sceneObj, rt, pixelX, pixelY)

	response := InspectResponse{
		Hit:         result.Hit,
		SphereIndex: -1,
		Color:       [3]uint8{result.Color.R, result.Color.G, result.Color.B},
	}
	if result.Hit {
		response.SphereIndex = result.Record.Index
		response.Point = vecArray(result.Point)
		response.Normal = vecArray(result.Normal)
		response.Distance = result.Record.T
		response.Shadowed = result.Shadowed
		response.Properties = sphereProperties(result.Record.Sphere)
	}

	writeJSON(w, http.StatusOK, response)
}
