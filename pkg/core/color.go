package core

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB pixel value
type Color struct {
	R, G, B uint8
}

// Fixed colors returned by the tracer when no shading takes place
var (
	Background = Color{20, 20, 40}
	Shadow     = Color{10, 10, 10}
)

// NewColor creates a color from channel values
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ClampChannel truncates v toward zero and clamps it to [0, 255].
// NaN maps to 0.
func ClampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Scale multiplies every channel by k and clamps the result
func (c Color) Scale(k float64) Color {
	return Color{
		R: ClampChannel(float64(c.R) * k),
		G: ClampChannel(float64(c.G) * k),
		B: ClampChannel(float64(c.B) * k),
	}
}

// Blend mixes c with other: c*(1-weight) + other*weight, truncated per channel
func (c Color) Blend(other Color, weight float64) Color {
	mix := func(a, b uint8) uint8 {
		return ClampChannel(float64(a)*(1-weight) + float64(b)*weight)
	}
	return Color{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

// RGBA converts to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
