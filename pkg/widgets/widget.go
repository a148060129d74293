package widgets

import (
	"image"

	"github.com/go-drift/pixkit/pkg/framebuffer"
)

// Widget is the capability every on-screen control provides.
type Widget interface {
	// Draw renders the widget into the active framebuffer. It does
	// nothing while the widget is hidden.
	Draw()
	// HandlePress delivers a pen press at absolute screen coordinates and
	// reports whether it landed on the widget.
	HandlePress(x, y int) bool
	Bounds() image.Rectangle
	Visible() bool
	SetVisible(visible bool)
}

// Base holds the placement, visibility and target framebuffer shared by
// widgets. Geometry is fixed once the widget is built.
type Base struct {
	x, y          uint8
	width, height uint8
	visible       bool
	fb            *framebuffer.Selector
}

func newBase(x, y, width, height uint8, fb *framebuffer.Selector) Base {
	return Base{x: x, y: y, width: width, height: height, visible: true, fb: fb}
}

// Bounds returns the half-open screen rectangle the widget occupies.
func (b *Base) Bounds() image.Rectangle {
	return image.Rect(int(b.x), int(b.y), int(b.x)+int(b.width), int(b.y)+int(b.height))
}

func (b *Base) Visible() bool { return b.visible }

func (b *Base) SetVisible(visible bool) { b.visible = visible }

// Contains reports whether (x, y) is inside the widget. The left and top
// edges are inside, the right and bottom edges are not.
func (b *Base) Contains(x, y int) bool {
	return image.Point{X: x, Y: y}.In(b.Bounds())
}

// target returns the buffer to draw into, or nil when nothing should be
// drawn.
func (b *Base) target() *framebuffer.Buffer {
	if !b.visible {
		return nil
	}
	return b.fb.Active()
}
