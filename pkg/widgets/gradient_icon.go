package widgets

import (
	"github.com/go-drift/pixkit/pkg/errors"
	"github.com/go-drift/pixkit/pkg/framebuffer"
	"github.com/go-drift/pixkit/pkg/graphics"
	"github.com/go-drift/pixkit/pkg/mask"
)

// PushCallback is invoked when a widget is pressed.
type PushCallback func()

// GradientIcon is a 2bpp icon whose pixels blend between a top and a bottom
// color. Each pixel's mask level picks the blend weight through a
// [mask.Ramp]; the default is [mask.Linear].
//
// The mask words and the framebuffer belong to the caller. The icon reads
// the mask on every draw and never writes to it.
type GradientIcon struct {
	Base
	onPush      PushCallback
	image       []uint32
	colorTop    graphics.Color15
	colorBottom graphics.Color15
	ramp        mask.Ramp
}

// Option configures a GradientIcon at construction.
type Option func(*GradientIcon)

// WithVisible sets the initial visibility. Icons start visible.
func WithVisible(visible bool) Option {
	return func(g *GradientIcon) { g.visible = visible }
}

// WithRamp replaces the level-to-weight mapping.
func WithRamp(r mask.Ramp) Option {
	return func(g *GradientIcon) { g.ramp = r }
}

// NewGradientIcon creates an icon at (x, y) of the given size. image must
// hold at least width*height packed levels (see [mask.Validate]).
func NewGradientIcon(x, y, width, height uint8, colorTop, colorBottom graphics.Color15, image []uint32, fb *framebuffer.Selector, opts ...Option) *GradientIcon {
	g := &GradientIcon{
		Base:        newBase(x, y, width, height, fb),
		image:       image,
		colorTop:    colorTop,
		colorBottom: colorBottom,
		ramp:        mask.Linear,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterPushCallback sets the function run when the icon is pressed,
// replacing any previous one. Pass nil to clear it.
func (g *GradientIcon) RegisterPushCallback(fn PushCallback) {
	g.onPush = fn
}

// PenDown handles a pen press at screen coordinates (x, y).
func (g *GradientIcon) PenDown(x, y uint8) {
	g.HandlePress(int(x), int(y))
}

// HandlePress runs the push callback once if (x, y) is inside the icon.
// A panicking callback is reported and does not escape.
func (g *GradientIcon) HandlePress(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	if g.onPush != nil {
		g.push()
	}
	return true
}

func (g *GradientIcon) push() {
	defer errors.Recover("widgets.GradientIcon.PenDown")
	g.onPush()
}

// PleaseDraw asks the icon to draw itself now.
func (g *GradientIcon) PleaseDraw() {
	g.Draw()
}

// Draw renders the icon into the active framebuffer.
func (g *GradientIcon) Draw() {
	fb := g.target()
	if fb == nil {
		return
	}

	// Four levels means four colors; resolve them once per draw.
	var colors [mask.Levels]graphics.Color15
	var drawn [mask.Levels]bool
	for level := range colors {
		t, ok := g.ramp.Weight(uint8(level))
		colors[level] = graphics.Lerp(g.colorTop, g.colorBottom, t)
		drawn[level] = ok
	}

	w, h := int(g.width), int(g.height)
	ox, oy := int(g.x), int(g.y)
	for py := 0; py < h; py++ {
		row := py * w
		for px := 0; px < w; px++ {
			level := mask.LevelAt(g.image, row+px)
			if !drawn[level] {
				continue
			}
			fb.SetColor15(ox+px, oy+py, colors[level])
		}
	}
}

// Colors returns the top and bottom endpoint colors.
func (g *GradientIcon) Colors() (top, bottom graphics.Color15) {
	return g.colorTop, g.colorBottom
}

var _ Widget = (*GradientIcon)(nil)
