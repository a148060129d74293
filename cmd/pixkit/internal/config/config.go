// Package config loads pixkit scene files.
package config

import (
	stderrors "errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pixkit/pkg/errors"
	"github.com/go-drift/pixkit/pkg/graphics"
	"github.com/go-drift/pixkit/pkg/mask"
)

// DefaultFile is the scene file name searched for when none is given.
const DefaultFile = "pixkit.yaml"

// supportedMajor is the only scene format major version understood.
const supportedMajor = "v1"

const (
	defaultWidth  = 256
	defaultHeight = 192
)

// Config is the raw content of a scene file.
type Config struct {
	Version string       `yaml:"version"`
	Screen  ScreenConfig `yaml:"screen"`
	Icons   []IconConfig `yaml:"icons"`
}

// ScreenConfig describes the framebuffer.
type ScreenConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Background *Color `yaml:"background,omitempty"`
	Buffers    int    `yaml:"buffers,omitempty"`
}

// IconConfig describes one gradient icon. Exactly one of Mask and Image
// must be set.
type IconConfig struct {
	Name    string   `yaml:"name"`
	X       int      `yaml:"x"`
	Y       int      `yaml:"y"`
	Width   int      `yaml:"width,omitempty"`
	Height  int      `yaml:"height,omitempty"`
	Top     Color    `yaml:"top"`
	Bottom  Color    `yaml:"bottom"`
	Ramp    string   `yaml:"ramp,omitempty"`
	Hidden  bool     `yaml:"hidden,omitempty"`
	Mask    []string `yaml:"mask,omitempty"`
	Image   string   `yaml:"image,omitempty"`
}

// Color is a Color15 that accepts YAML integers, hex strings
// ("0x7fff") and 24-bit web colors ("#ff8000").
type Color graphics.Color15

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	v, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(v)
	return nil
}

// ParseColor parses a packed 16-bit value or a "#rrggbb" web color.
func ParseColor(s string) (graphics.Color15, error) {
	s = strings.TrimSpace(s)
	if rgb, ok := strings.CutPrefix(s, "#"); ok {
		if len(rgb) != 6 {
			return 0, fmt.Errorf("invalid web color %q", s)
		}
		v, err := strconv.ParseUint(rgb, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid web color %q", s)
		}
		return graphics.FromColor(graphics.Color(0xFF000000 | uint32(v))).WithFlag(false), nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return graphics.Color15(v), nil
}

// Scene is a validated scene ready to be built.
type Scene struct {
	Path       string
	Width      int
	Height     int
	Background graphics.Color15
	Clear      bool
	Buffers    int
	Icons      []Icon
}

// Icon is a validated icon definition.
type Icon struct {
	Name          string
	X, Y          uint8
	Width, Height uint8
	Top, Bottom   graphics.Color15
	Ramp          mask.Ramp
	Visible       bool
	Mask          mask.Mask
}

// Load reads and parses a scene file without validating it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.PixError{Op: "config.Load", Kind: errors.KindConfig, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.PixError{Op: "config.Load", Kind: errors.KindConfig, Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}
	return &cfg, nil
}

// Resolve loads a scene file, fills defaults and validates every icon.
// Relative image paths are resolved against the scene file's directory.
func Resolve(path string) (*Scene, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(cfg.Version); err != nil {
		return nil, &errors.PixError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}

	scene := &Scene{
		Path:    path,
		Width:   cfg.Screen.Width,
		Height:  cfg.Screen.Height,
		Buffers: cfg.Screen.Buffers,
	}
	if scene.Width == 0 {
		scene.Width = defaultWidth
	}
	if scene.Height == 0 {
		scene.Height = defaultHeight
	}
	if scene.Buffers == 0 {
		scene.Buffers = 1
	}
	if scene.Width < 0 || scene.Height < 0 || scene.Buffers < 1 || scene.Buffers > 2 {
		return nil, &errors.PixError{
			Op:   "config.Resolve",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid screen %dx%d with %d buffers", scene.Width, scene.Height, scene.Buffers),
		}
	}
	if bg := cfg.Screen.Background; bg != nil {
		scene.Background = graphics.Color15(*bg)
		scene.Clear = true
	}

	dir := filepath.Dir(path)
	seen := make(map[string]bool, len(cfg.Icons))
	for i, ic := range cfg.Icons {
		if ic.Name == "" {
			ic.Name = fmt.Sprintf("icon%d", i)
		}
		if seen[ic.Name] {
			return nil, iconError(ic.Name, fmt.Errorf("duplicate icon name"))
		}
		seen[ic.Name] = true

		icon, err := resolveIcon(ic, dir, scene)
		if err != nil {
			return nil, iconError(ic.Name, err)
		}
		scene.Icons = append(scene.Icons, icon)
	}
	return scene, nil
}

func iconError(name string, err error) error {
	var pixErr *errors.PixError
	if stderrors.As(err, &pixErr) && pixErr.Widget == "" {
		pixErr.Widget = name
		return pixErr
	}
	return &errors.PixError{Op: "config.Resolve", Kind: errors.KindConfig, Widget: name, Err: err}
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("missing version (want %s.x.y)", supportedMajor)
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q", v)
	}
	if major := semver.Major(v); major != supportedMajor {
		return fmt.Errorf("unsupported scene version %s (want %s)", v, supportedMajor)
	}
	return nil
}

func resolveIcon(ic IconConfig, dir string, scene *Scene) (Icon, error) {
	var m mask.Mask
	var err error
	switch {
	case len(ic.Mask) > 0 && ic.Image != "":
		return Icon{}, fmt.Errorf("mask and image are mutually exclusive")
	case len(ic.Mask) > 0:
		m, err = mask.FromRows(ic.Mask)
		if err != nil {
			return Icon{}, err
		}
		if ic.Width == 0 {
			ic.Width = m.Width()
		}
		if ic.Height == 0 {
			ic.Height = m.Height()
		}
		if m.Width() != ic.Width || m.Height() != ic.Height {
			return Icon{}, fmt.Errorf("mask is %dx%d but icon is %dx%d", m.Width(), m.Height(), ic.Width, ic.Height)
		}
	case ic.Image != "":
		src, err := loadImage(resolvePath(dir, ic.Image))
		if err != nil {
			return Icon{}, err
		}
		if ic.Width == 0 {
			ic.Width = src.Bounds().Dx()
		}
		if ic.Height == 0 {
			ic.Height = src.Bounds().Dy()
		}
		m, err = mask.FromImage(src, ic.Width, ic.Height)
		if err != nil {
			return Icon{}, err
		}
	default:
		return Icon{}, fmt.Errorf("one of mask or image is required")
	}

	if err := checkGeometry(ic, scene); err != nil {
		return Icon{}, err
	}
	if err := mask.Validate(m.Words(), ic.Width, ic.Height); err != nil {
		return Icon{}, err
	}

	ramp, err := parseRamp(ic.Ramp)
	if err != nil {
		return Icon{}, err
	}

	return Icon{
		Name:    ic.Name,
		X:       uint8(ic.X),
		Y:       uint8(ic.Y),
		Width:   uint8(ic.Width),
		Height:  uint8(ic.Height),
		Top:     graphics.Color15(ic.Top),
		Bottom:  graphics.Color15(ic.Bottom),
		Ramp:    ramp,
		Visible: !ic.Hidden,
		Mask:    m,
	}, nil
}

func checkGeometry(ic IconConfig, scene *Scene) error {
	for _, v := range []struct {
		name  string
		value int
	}{
		{"x", ic.X}, {"y", ic.Y}, {"width", ic.Width}, {"height", ic.Height},
	} {
		if v.value < 0 || v.value > 255 {
			return fmt.Errorf("%s %d out of range 0-255", v.name, v.value)
		}
	}
	if ic.Width == 0 || ic.Height == 0 {
		return fmt.Errorf("icon has no area")
	}
	bounds := image.Rect(ic.X, ic.Y, ic.X+ic.Width, ic.Y+ic.Height)
	screen := image.Rect(0, 0, scene.Width, scene.Height)
	if !bounds.In(screen) {
		return fmt.Errorf("icon %v does not fit screen %v", bounds, screen)
	}
	return nil
}

func parseRamp(name string) (mask.Ramp, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return mask.Linear, nil
	case "keyed":
		return mask.Keyed, nil
	default:
		return mask.Ramp{}, fmt.Errorf("unknown ramp %q (want linear or keyed)", name)
	}
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// loadImage decodes a PNG or BMP file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return bmp.Decode(f)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// FindSceneFile walks up from the current directory looking for name.
func FindSceneFile(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in this directory or any parent", name)
		}
		dir = parent
	}
}
