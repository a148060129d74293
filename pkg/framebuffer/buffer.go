// Package framebuffer provides packed 16-bit pixel buffers and the
// selector that decides which buffer widgets render into.
package framebuffer

import (
	"image"
	"image/color"

	"github.com/go-drift/pixkit/pkg/graphics"
)

// Buffer is a rectangle of Color15 pixels. Pixel (x, y) lives at
// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
type Buffer struct {
	Pix    []graphics.Color15
	Stride int
	Rect   image.Rectangle
}

// New allocates a zeroed width x height buffer with a tight stride.
func New(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]graphics.Color15, width*height),
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Wrap adopts existing pixel memory, for example a memory-mapped display.
// stride is measured in pixels and must be at least width.
func Wrap(pix []graphics.Color15, width, height, stride int) *Buffer {
	return &Buffer{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, width, height)}
}

func (b *Buffer) Bounds() image.Rectangle { return b.Rect }
func (b *Buffer) ColorModel() color.Model { return graphics.Color15Model }

// PixOffset returns the index of (x, y) in Pix.
func (b *Buffer) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x - b.Rect.Min.X)
}

func (b *Buffer) At(x, y int) color.Color {
	return b.Color15At(x, y)
}

// Color15At returns the pixel at (x, y), or zero outside the buffer.
func (b *Buffer) Color15At(x, y int) graphics.Color15 {
	if !(image.Point{x, y}.In(b.Rect)) {
		return 0
	}
	return b.Pix[b.PixOffset(x, y)]
}

func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetColor15(x, y, graphics.Color15Model.Convert(c).(graphics.Color15))
}

// SetColor15 writes a pixel. Writes outside the buffer are dropped.
func (b *Buffer) SetColor15(x, y int, c graphics.Color15) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return
	}
	b.Pix[b.PixOffset(x, y)] = c
}

// Fill sets every pixel in the buffer to c.
func (b *Buffer) Fill(c graphics.Color15) {
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := b.Pix[b.PixOffset(b.Rect.Min.X, y):b.PixOffset(b.Rect.Max.X, y)]
		for i := range row {
			row[i] = c
		}
	}
}

// Clone returns a deep copy with a tight stride.
func (b *Buffer) Clone() *Buffer {
	out := New(b.Rect.Dx(), b.Rect.Dy())
	out.Rect = b.Rect
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(b.Rect.Min.X, y):], b.Pix[b.PixOffset(b.Rect.Min.X, y):b.PixOffset(b.Rect.Max.X, y)])
	}
	return out
}
