package mask

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/go-drift/pixkit/pkg/errors"
)

// FromRows builds a mask from text rows, one character per pixel.
// Digits '0'-'3' give the level; '.' and ' ' are level 0. All rows must
// have the same length.
func FromRows(rows []string) (Mask, error) {
	if len(rows) == 0 {
		return Mask{}, nil
	}
	width := len(rows[0])
	levels := make([]uint8, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Mask{}, &errors.PixError{
				Op:   "mask.FromRows",
				Kind: errors.KindMask,
				Err:  fmt.Errorf("row %d has %d pixels, want %d", y, len(row), width),
			}
		}
		for x := 0; x < len(row); x++ {
			l, err := parseLevel(row[x])
			if err != nil {
				return Mask{}, &errors.PixError{
					Op:   "mask.FromRows",
					Kind: errors.KindMask,
					Err:  fmt.Errorf("row %d column %d: %w", y, x, err),
				}
			}
			levels = append(levels, l)
		}
	}
	return Pack(levels, width, len(rows)), nil
}

func parseLevel(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '3':
		return c - '0', nil
	case c == '.' || c == ' ':
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid level %q", c)
	}
}

// Rows renders the mask back into the text form accepted by FromRows.
func (m Mask) Rows() []string {
	rows := make([]string, m.height)
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		sb.Reset()
		for x := 0; x < m.width; x++ {
			sb.WriteByte('0' + m.Level(x, y))
		}
		rows[y] = sb.String()
	}
	return rows
}

// FromImage resamples img to width x height and quantizes its luminance to
// four levels: black becomes level 0 and white level 3.
func FromImage(img image.Image, width, height int) (Mask, error) {
	if img == nil || img.Bounds().Empty() {
		return Mask{}, &errors.PixError{
			Op:   "mask.FromImage",
			Kind: errors.KindMask,
			Err:  fmt.Errorf("empty source image"),
		}
	}
	if width <= 0 || height <= 0 {
		return Mask{}, &errors.PixError{
			Op:   "mask.FromImage",
			Kind: errors.KindMask,
			Err:  fmt.Errorf("invalid size %dx%d", width, height),
		}
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(gray, gray.Bounds(), img, img.Bounds(), draw.Src, nil)

	levels := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			levels[y*width+x] = gray.GrayAt(x, y).Y >> 6
		}
	}
	return Pack(levels, width, height), nil
}
