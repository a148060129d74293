// Package engine runs a screenful of widgets: it draws them in order and
// routes pen presses to the widget on top.
package engine

import (
	"fmt"
	"image"

	"github.com/go-drift/pixkit/pkg/errors"
	"github.com/go-drift/pixkit/pkg/framebuffer"
	"github.com/go-drift/pixkit/pkg/graphics"
	"github.com/go-drift/pixkit/pkg/widgets"
)

// Screen owns the draw order of a set of widgets sharing one framebuffer
// selector. Later widgets are drawn over earlier ones and receive presses
// first. A Screen is driven from the UI loop and is not safe for
// concurrent use.
type Screen struct {
	fb         *framebuffer.Selector
	widgets    []widgets.Widget
	background graphics.Color15
	clear      bool
	flip       bool
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithBackground clears the active buffer to c before each DrawAll.
func WithBackground(c graphics.Color15) ScreenOption {
	return func(s *Screen) {
		s.background = c
		s.clear = true
	}
}

// WithPageFlip swaps the selector after each DrawAll so the next frame is
// drawn into the other buffer.
func WithPageFlip() ScreenOption {
	return func(s *Screen) { s.flip = true }
}

// NewScreen returns an empty screen drawing through fb.
func NewScreen(fb *framebuffer.Selector, opts ...ScreenOption) *Screen {
	s := &Screen{fb: fb}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Selector returns the framebuffer selector the screen draws through.
func (s *Screen) Selector() *framebuffer.Selector { return s.fb }

// Add puts w on top of the existing widgets.
func (s *Screen) Add(w widgets.Widget) {
	s.widgets = append(s.widgets, w)
}

// Remove takes w off the screen and reports whether it was present.
func (s *Screen) Remove(w widgets.Widget) bool {
	for i, existing := range s.widgets {
		if existing == w {
			s.widgets = append(s.widgets[:i], s.widgets[i+1:]...)
			return true
		}
	}
	return false
}

// Widgets returns the widgets bottom to top.
func (s *Screen) Widgets() []widgets.Widget {
	return s.widgets
}

// DrawAll draws every visible widget, bottom first, and returns the buffer
// that now holds the frame.
func (s *Screen) DrawAll() *framebuffer.Buffer {
	defer errors.Recover("engine.Screen.DrawAll")

	frame := s.fb.Active()
	if frame == nil {
		return nil
	}
	if s.clear {
		frame.Fill(s.background)
	}
	for _, w := range s.widgets {
		if w.Visible() {
			w.Draw()
		}
	}
	if s.flip {
		s.fb.Swap()
	}
	return frame
}

// HitTest returns the visible widgets containing (x, y), topmost first.
func (s *Screen) HitTest(x, y int) []widgets.Widget {
	var hits []widgets.Widget
	p := image.Point{X: x, Y: y}
	for i := len(s.widgets) - 1; i >= 0; i-- {
		w := s.widgets[i]
		if w.Visible() && p.In(w.Bounds()) {
			hits = append(hits, w)
		}
	}
	return hits
}

// PenDown delivers a press to the topmost visible widget under (x, y) and
// returns it, or nil if the press hit nothing. Presses outside the
// framebuffer are reported as input errors and dropped.
func (s *Screen) PenDown(x, y int) widgets.Widget {
	if frame := s.fb.Active(); frame != nil && !(image.Point{X: x, Y: y}).In(frame.Bounds()) {
		errors.Report(&errors.PixError{
			Op:   "engine.Screen.PenDown",
			Kind: errors.KindInput,
			Err:  fmt.Errorf("press at (%d, %d) outside screen %v", x, y, frame.Bounds()),
		})
		return nil
	}

	// Only the first widget hit gets the press; widgets below are obscured.
	for _, w := range s.HitTest(x, y) {
		if w.HandlePress(x, y) {
			return w
		}
	}
	return nil
}
