package config

import (
	stderrors "errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/go-drift/pixkit/pkg/errors"
	"github.com/go-drift/pixkit/pkg/graphics"
	"github.com/go-drift/pixkit/pkg/mask"
)

func writeScene(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const basicScene = `
version: v1.2.0
screen:
  width: 64
  height: 48
  background: "0x0000"
  buffers: 2
icons:
  - name: play
    x: 10
    y: 10
    top: 0x7fff
    bottom: "#000000"
    mask:
      - "0123"
      - "3210"
  - name: stop
    x: 20
    y: 10
    width: 2
    height: 1
    top: 31
    bottom: 0x7c00
    ramp: keyed
    hidden: true
    mask: ["03"]
`

func TestResolve(t *testing.T) {
	path := writeScene(t, t.TempDir(), basicScene)
	scene, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if scene.Width != 64 || scene.Height != 48 || scene.Buffers != 2 {
		t.Errorf("screen = %dx%d/%d", scene.Width, scene.Height, scene.Buffers)
	}
	if !scene.Clear || scene.Background != 0 {
		t.Errorf("background = %#04x clear=%v", uint16(scene.Background), scene.Clear)
	}
	if len(scene.Icons) != 2 {
		t.Fatalf("len(Icons) = %d, want 2", len(scene.Icons))
	}

	play := scene.Icons[0]
	if play.Width != 4 || play.Height != 2 {
		t.Errorf("play size = %dx%d, want size taken from the mask", play.Width, play.Height)
	}
	if play.Top != graphics.Color15White || play.Bottom != graphics.Color15Black {
		t.Errorf("play colors = %#04x, %#04x", uint16(play.Top), uint16(play.Bottom))
	}
	if !play.Visible || play.Ramp != mask.Linear {
		t.Error("play should be visible with the linear ramp")
	}
	if play.Mask.Level(3, 0) != 3 || play.Mask.Level(0, 1) != 3 {
		t.Error("play mask was not parsed")
	}

	stop := scene.Icons[1]
	if stop.Visible || stop.Ramp != mask.Keyed {
		t.Error("stop should be hidden with the keyed ramp")
	}
	if stop.Top != graphics.Color15Red || stop.Bottom != graphics.Color15Blue {
		t.Errorf("stop colors = %#04x, %#04x", uint16(stop.Top), uint16(stop.Bottom))
	}
}

func TestResolveDefaults(t *testing.T) {
	path := writeScene(t, t.TempDir(), "version: v1.0.0\n")
	scene, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if scene.Width != 256 || scene.Height != 192 || scene.Buffers != 1 || scene.Clear {
		t.Errorf("defaults = %+v", scene)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		scene   string
		wantMsg string
	}{
		{"missing version", "icons: []\n", "missing version"},
		{"bad version", "version: banana\n", "invalid version"},
		{"future version", "version: v2.0.0\n", "unsupported scene version"},
		{"bad yaml", "version: [\n", "failed to parse"},
		{"bad color", "version: v1.0.0\nicons:\n  - {name: a, top: purple, mask: ['0']}\n", "invalid color"},
		{"no mask", "version: v1.0.0\nicons:\n  - {name: a}\n", "one of mask or image"},
		{"both sources", "version: v1.0.0\nicons:\n  - {name: a, mask: ['0'], image: a.png}\n", "mutually exclusive"},
		{"size mismatch", "version: v1.0.0\nicons:\n  - {name: a, width: 3, mask: ['01']}\n", "mask is 2x1"},
		{"off screen", "version: v1.0.0\nscreen: {width: 8, height: 8}\nicons:\n  - {name: a, x: 7, mask: ['01']}\n", "does not fit"},
		{"out of range", "version: v1.0.0\nscreen: {width: 1000}\nicons:\n  - {name: a, x: 300, mask: ['01']}\n", "out of range"},
		{"duplicate", "version: v1.0.0\nicons:\n  - {name: a, mask: ['0']}\n  - {name: a, mask: ['0']}\n", "duplicate"},
		{"bad ramp", "version: v1.0.0\nicons:\n  - {name: a, ramp: cubic, mask: ['0']}\n", "unknown ramp"},
		{"bad level", "version: v1.0.0\nicons:\n  - {name: a, mask: ['09']}\n", "invalid level"},
		{"three buffers", "version: v1.0.0\nscreen: {buffers: 3}\n", "invalid screen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScene(t, t.TempDir(), tt.scene)
			_, err := Resolve(path)
			if err == nil {
				t.Fatal("Resolve() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
			var pixErr *errors.PixError
			if !stderrors.As(err, &pixErr) {
				t.Errorf("error %T should be a PixError", err)
			}
		})
	}
}

func TestResolveNamesIcon(t *testing.T) {
	path := writeScene(t, t.TempDir(), "version: v1.0.0\nicons:\n  - {name: logo, mask: ['0', '01']}\n")
	_, err := Resolve(path)
	var pixErr *errors.PixError
	if !stderrors.As(err, &pixErr) {
		t.Fatalf("error = %v, want PixError", err)
	}
	if pixErr.Widget != "logo" {
		t.Errorf("Widget = %q, want %q", pixErr.Widget, "logo")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func gradientImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 255 / (w - 1))})
		}
	}
	return img
}

func TestResolveImage(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"grad.png", "grad.bmp"} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Ext(name) == ".png" {
			err = png.Encode(f, gradientImage(4, 1))
		} else {
			err = bmp.Encode(f, gradientImage(4, 1))
		}
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
	}

	path := writeScene(t, dir, `
version: v1.0.0
icons:
  - {name: png, image: grad.png}
  - {name: bmp, y: 4, image: grad.bmp}
`)
	scene, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	for _, icon := range scene.Icons {
		if icon.Width != 4 || icon.Height != 1 {
			t.Errorf("%s size = %dx%d, want 4x1", icon.Name, icon.Width, icon.Height)
		}
		if got := icon.Mask.Rows(); got[0] != "0123" {
			t.Errorf("%s rows = %q, want 0123", icon.Name, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    graphics.Color15
		wantErr bool
	}{
		{"0x7fff", 0x7FFF, false},
		{"32768", 0x8000, false},
		{"#ffffff", graphics.Color15White, false},
		{"#ff0000", graphics.Color15Red, false},
		{"#fff", 0, true},
		{"0x10000", 0, true},
		{"red", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#04x, want %#04x", tt.in, uint16(got), uint16(tt.want))
		}
	}
}

func TestFindSceneFile(t *testing.T) {
	root := t.TempDir()
	writeScene(t, root, "version: v1.0.0\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	got, err := FindSceneFile(DefaultFile)
	if err != nil {
		t.Fatalf("FindSceneFile() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(root, DefaultFile))
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("FindSceneFile() = %q, want %q", got, want)
	}

	if _, err := FindSceneFile("does-not-exist.yaml"); err == nil {
		t.Error("expected error for a missing scene file")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
