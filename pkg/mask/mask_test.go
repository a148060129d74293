package mask

import (
	stderrors "errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/go-drift/pixkit/pkg/errors"
)

func TestLevelAtBitLayout(t *testing.T) {
	// Pixel 0 in the low bits, pixel 15 in the top bits of word 0,
	// pixel 16 in the low bits of word 1.
	words := []uint32{0xC0000001, 0x00000002}
	tests := []struct {
		i    int
		want uint8
	}{
		{0, 1},
		{1, 0},
		{15, 3},
		{16, 2},
		{17, 0},
	}
	for _, tt := range tests {
		if got := LevelAt(words, tt.i); got != tt.want {
			t.Errorf("LevelAt(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
}

func TestPackRoundTrip(t *testing.T) {
	levels := []uint8{
		0, 1, 2, 3, 0,
		3, 2, 1, 0, 3,
		1, 1, 1, 1, 2,
		2, 2, 2, 2, 0,
	}
	m := Pack(levels, 5, 4)
	if len(m.Words()) != 2 {
		t.Fatalf("len(Words()) = %d, want 2", len(m.Words()))
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if got, want := m.Level(x, y), levels[y*5+x]; got != want {
				t.Errorf("Level(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPackMasksHighBits(t *testing.T) {
	m := Pack([]uint8{7, 4}, 2, 1)
	if m.Level(0, 0) != 3 || m.Level(1, 0) != 0 {
		t.Errorf("levels = %d, %d, want 3, 0", m.Level(0, 0), m.Level(1, 0))
	}
}

func TestUniform(t *testing.T) {
	m := Uniform(3, 4, 4)
	if m.Words()[0] != 0xFFFFFFFF {
		t.Errorf("word = %#08x, want 0xffffffff", m.Words()[0])
	}
	if Uniform(0, 4, 4).Words()[0] != 0 {
		t.Error("uniform level 0 should be all zero bits")
	}
}

func TestWordsFor(t *testing.T) {
	tests := []struct{ w, h, want int }{
		{0, 0, 0},
		{4, 4, 1},
		{17, 1, 2},
		{16, 16, 16},
		{3, 3, 1},
	}
	for _, tt := range tests {
		if got := WordsFor(tt.w, tt.h); got != tt.want {
			t.Errorf("WordsFor(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(make([]uint32, 1), 4, 4); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := Validate(make([]uint32, 1), 5, 4)
	var geo *errors.GeometryError
	if !stderrors.As(err, &geo) {
		t.Fatalf("Validate() = %v, want GeometryError", err)
	}
	if geo.Words != 1 || geo.Width != 5 || geo.Height != 4 {
		t.Errorf("GeometryError = %+v", geo)
	}

	var pixErr *errors.PixError
	if !stderrors.As(Validate(nil, -1, 2), &pixErr) || pixErr.Kind != errors.KindMask {
		t.Error("negative sizes should be rejected with KindMask")
	}
}

func TestRamp(t *testing.T) {
	want := [Levels]float64{0, 1.0 / 3, 2.0 / 3, 1}
	for level := uint8(0); level < Levels; level++ {
		w, draw := Linear.Weight(level)
		if !draw {
			t.Errorf("Linear level %d should be drawn", level)
		}
		if w != want[level] {
			t.Errorf("Linear weight(%d) = %v, want %v", level, w, want[level])
		}
	}

	if _, draw := Keyed.Weight(0); draw {
		t.Error("Keyed level 0 should not be drawn")
	}
	if w, draw := Keyed.Weight(3); !draw || w != 1 {
		t.Errorf("Keyed weight(3) = %v, %v", w, draw)
	}
	if w, _ := Linear.Weight(7); w != 1 {
		t.Errorf("out of range levels should wrap to two bits, got weight %v", w)
	}
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([]string{
		"0123",
		".32 ",
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", m.Width(), m.Height())
	}
	want := []string{"0123", "0320"}
	if got := m.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %q, want %q", got, want)
	}
}

func TestFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"ragged", []string{"012", "01"}},
		{"bad level", []string{"014"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			var pixErr *errors.PixError
			if !stderrors.As(err, &pixErr) {
				t.Fatalf("FromRows() error = %v, want PixError", err)
			}
			if pixErr.Op != "mask.FromRows" {
				t.Errorf("Op = %q", pixErr.Op)
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 2))
	shades := []uint8{0x00, 0x50, 0xA0, 0xFF}
	for x := 0; x < 8; x++ {
		for y := 0; y < 2; y++ {
			src.SetGray(x, y, color.Gray{Y: shades[x/2]})
		}
	}

	m, err := FromImage(src, 4, 1)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := m.Rows(); !reflect.DeepEqual(got, []string{"0123"}) {
		t.Errorf("Rows() = %q, want [\"0123\"]", got)
	}
}

func TestFromImageErrors(t *testing.T) {
	if _, err := FromImage(nil, 4, 4); err == nil {
		t.Error("expected error for nil image")
	}
	if _, err := FromImage(image.NewGray(image.Rect(0, 0, 2, 2)), 0, 4); err == nil {
		t.Error("expected error for zero width")
	}
}
