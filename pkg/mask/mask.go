// Package mask implements 2-bit-per-pixel gradient masks.
//
// A mask is a row-major sequence of levels 0-3 packed sixteen to a 32-bit
// word. Pixel i lives in word i/16 at bit offset (i%16)*2, least significant
// bits first, which is the layout handheld tile hardware expects.
//
// Masks are views over caller-owned words. Nothing in this package mutates
// the words of an existing Mask.
package mask

import (
	"fmt"

	"github.com/go-drift/pixkit/pkg/errors"
)

const (
	// Levels is the number of distinct values a mask pixel can hold.
	Levels = 4
	// PixelsPerWord is the number of 2-bit levels packed in one uint32.
	PixelsPerWord = 16

	bitsPerPixel = 2
	levelMask    = Levels - 1
)

// Mask is a read-only view of packed levels with a fixed geometry.
type Mask struct {
	words  []uint32
	width  int
	height int
}

// New wraps words as a width x height mask. The words are not copied.
// Coverage is not checked; use Validate when the source is untrusted.
func New(words []uint32, width, height int) Mask {
	return Mask{words: words, width: width, height: height}
}

// Width returns the mask width in pixels.
func (m Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m Mask) Height() int { return m.height }

// Words returns the backing words. Callers must not modify them.
func (m Mask) Words() []uint32 { return m.words }

// Level returns the 2-bit level at (x, y).
func (m Mask) Level(x, y int) uint8 {
	return LevelAt(m.words, y*m.width+x)
}

// LevelAt returns the level of the i-th pixel of a packed word slice.
func LevelAt(words []uint32, i int) uint8 {
	shift := uint(i%PixelsPerWord) * bitsPerPixel
	return uint8(words[i/PixelsPerWord]>>shift) & levelMask
}

// WordsFor returns the number of words needed for width x height levels.
func WordsFor(width, height int) int {
	return (width*height + PixelsPerWord - 1) / PixelsPerWord
}

// Validate reports whether words cover a width x height mask.
func Validate(words []uint32, width, height int) error {
	if width < 0 || height < 0 {
		return &errors.PixError{
			Op:   "mask.Validate",
			Kind: errors.KindMask,
			Err:  fmt.Errorf("negative size %dx%d", width, height),
		}
	}
	if len(words) < WordsFor(width, height) {
		return &errors.PixError{
			Op:   "mask.Validate",
			Kind: errors.KindMask,
			Err:  &errors.GeometryError{Width: width, Height: height, Words: len(words)},
		}
	}
	return nil
}

// Pack packs one level per pixel into a new mask. levels must hold at
// least width*height entries; values above 3 keep only their low two bits.
func Pack(levels []uint8, width, height int) Mask {
	words := make([]uint32, WordsFor(width, height))
	for i, l := range levels[:width*height] {
		shift := uint(i%PixelsPerWord) * bitsPerPixel
		words[i/PixelsPerWord] |= uint32(l&levelMask) << shift
	}
	return New(words, width, height)
}

// Uniform returns a mask where every pixel has the same level.
func Uniform(level uint8, width, height int) Mask {
	levels := make([]uint8, width*height)
	for i := range levels {
		levels[i] = level
	}
	return Pack(levels, width, height)
}
