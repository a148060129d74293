package graphics

import (
	"image/color"
	"math"
)

// Color15 is a packed 16-bit framebuffer color: red in bits 0-4, green in
// bits 5-9, blue in bits 10-14. Bit 15 is a hardware flag (on most
// handheld display controllers it marks the pixel as opaque) and is carried
// through untouched by interpolation.
type Color15 uint16

const (
	channelMask = 0x1F
	flagBit     = Color15(1 << 15)
)

// RGB15 packs three 5-bit channels. Inputs above 31 are masked.
func RGB15(r, g, b uint8) Color15 {
	return Color15(uint16(r&channelMask) | uint16(g&channelMask)<<5 | uint16(b&channelMask)<<10)
}

// Channels returns the red, green and blue channels, each 0-31.
func (c Color15) Channels() (r, g, b uint8) {
	return uint8(c) & channelMask, uint8(c>>5) & channelMask, uint8(c>>10) & channelMask
}

// Flag reports whether bit 15 is set.
func (c Color15) Flag() bool {
	return c&flagBit != 0
}

// WithFlag returns a copy of the color with bit 15 set or cleared.
func (c Color15) WithFlag(on bool) Color15 {
	if on {
		return c | flagBit
	}
	return c &^ flagBit
}

// ARGB expands the color to an opaque 8-bit-per-channel Color.
func (c Color15) ARGB() Color {
	r, g, b := c.Channels()
	return RGB(expand5(r), expand5(g), expand5(b))
}

// RGBA implements color.Color. The result is always opaque.
func (c Color15) RGBA() (r, g, b, a uint32) {
	return c.ARGB().RGBA()
}

// FromColor truncates an ARGB color to 5 bits per channel. Bit 15 is set
// when the source alpha is at least one half.
func FromColor(c Color) Color15 {
	r, g, b, a := c.Components()
	return RGB15(r>>3, g>>3, b>>3).WithFlag(a >= 0x80)
}

// Color15Model converts arbitrary colors to Color15.
var Color15Model = color.ModelFunc(func(c color.Color) color.Color {
	if c15, ok := c.(Color15); ok {
		return c15
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromColor(RGBA8(n.R, n.G, n.B, n.A))
})

// Lerp interpolates each channel from a toward b by t, rounding to the
// nearest 5-bit value. t is clamped to [0, 1]. Bit 15 comes from a when
// t < 0.5 and from b otherwise, so Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(a, b Color15, t float64) Color15 {
	t = clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	out := RGB15(lerpChannel(ar, br, t), lerpChannel(ag, bg, t), lerpChannel(ab, bb, t))
	if t < 0.5 {
		return out.WithFlag(a.Flag())
	}
	return out.WithFlag(b.Flag())
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a)*(1-t) + float64(b)*t))
}

// expand5 widens a 5-bit channel to 8 bits, replicating the high bits into
// the low ones so 31 maps to 255.
func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

// Common 16-bit colors.
const (
	Color15Black = Color15(0x0000)
	Color15White = Color15(0x7FFF)
	Color15Red   = Color15(0x001F)
	Color15Green = Color15(0x03E0)
	Color15Blue  = Color15(0x7C00)
)
