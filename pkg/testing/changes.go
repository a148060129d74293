package testing

import (
	"image"

	"github.com/go-drift/pixkit/pkg/framebuffer"
)

// Changes returns the points whose pixels differ between before and after,
// in row-major order. Both buffers must cover the same rectangle.
func Changes(before, after *framebuffer.Buffer) []image.Point {
	var out []image.Point
	r := after.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if before.Color15At(x, y) != after.Color15At(x, y) {
				out = append(out, image.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// ChangesOutside returns the changed points that fall outside r.
func ChangesOutside(before, after *framebuffer.Buffer, r image.Rectangle) []image.Point {
	var out []image.Point
	for _, p := range Changes(before, after) {
		if !p.In(r) {
			out = append(out, p)
		}
	}
	return out
}
