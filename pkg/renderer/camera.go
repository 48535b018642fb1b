package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Camera generates primary rays for image pixels
type Camera struct {
	position core.Vec3
	width    int
	height   int
}

// NewCamera creates a pinhole camera looking down +Z from position
func NewCamera(position core.Vec3, width, height int) *Camera {
	return &Camera{position: position, width: width, height: height}
}

// GetRay returns the primary ray through pixel (x, y). Row 0 is the top of the image.
// Pixel coordinates map to [-1, 1] on both axes of the image plane one unit ahead of the
// camera, so non-square images stretch the view horizontally.
func (c *Camera) GetRay(x, y int) core.Ray {
	halfW := float64(c.width) / 2
	halfH := float64(c.height) / 2

	nx := (float64(x) - halfW) / halfW
	ny := -(float64(y) - halfH) / halfH

	return core.NewRay(c.position, core.NewVec3(nx, ny, 1))
}

// Project returns the pixel whose primary ray passes closest to the world point p,
// and false when p is not in front of the camera
func (c *Camera) Project(p core.Vec3) (x, y int, ok bool) {
	rel := p.Subtract(c.position)
	if rel.Z <= 0 {
		return 0, 0, false
	}

	halfW := float64(c.width) / 2
	halfH := float64(c.height) / 2

	nx := rel.X / rel.Z
	ny := rel.Y / rel.Z
	return int(nx*halfW + halfW), int(-ny*halfH + halfH), true
}
