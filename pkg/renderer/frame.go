package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Frame is a complete grid of rendered pixels, indexed Pixels[y][x]
type Frame struct {
	Width  int
	Height int
	Pixels [][]core.Color
}

// NewFrame allocates a frame filled with zero colors
func NewFrame(width, height int) *Frame {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}
	return &Frame{Width: width, Height: height, Pixels: pixels}
}

// At returns the pixel at (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y][x]
}

// Set stores the pixel at (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y][x] = c
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y, row := range f.Pixels {
		for x, c := range row {
			img.SetRGBA(x, y, c.RGBA())
		}
	}
	return img
}
