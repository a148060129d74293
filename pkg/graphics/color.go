// Package graphics defines the color types shared by the framebuffer and widgets.
package graphics

import "math"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// RGBA implements color.Color with non-premultiplied components scaled
// to 16 bits and then premultiplied, as image/color expects.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Components()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xFFFF
	g = uint32(g8) * 0x101 * a / 0xFFFF
	b = uint32(b8) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
