package framebuffer

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/go-drift/pixkit/pkg/errors"
)

// Scaled returns an RGBA copy enlarged by an integer factor with
// nearest-neighbour sampling, so individual pixels stay crisp.
func (b *Buffer) Scaled(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Rect.Dx()*factor, b.Rect.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), b, b.Rect, draw.Src, nil)
	return dst
}

// EncodeBMP writes the buffer as a 24-bit BMP, scaled by factor.
func (b *Buffer) EncodeBMP(w io.Writer, factor int) error {
	if err := bmp.Encode(w, b.Scaled(factor)); err != nil {
		return &errors.PixError{Op: "framebuffer.EncodeBMP", Kind: errors.KindRender, Err: err}
	}
	return nil
}
