package framebuffer

// Selector holds the buffers a display cycles through and points at the one
// widgets should draw into. Widgets keep the Selector rather than a buffer
// so a page flip redirects later draws without touching the widgets.
type Selector struct {
	buffers []*Buffer
	active  int
}

// NewSelector returns a selector over buffers with the first one active.
// Pass two buffers for double buffering.
func NewSelector(buffers ...*Buffer) *Selector {
	return &Selector{buffers: buffers}
}

// Active returns the buffer currently selected for drawing, or nil if the
// selector is empty.
func (s *Selector) Active() *Buffer {
	if s == nil || len(s.buffers) == 0 {
		return nil
	}
	return s.buffers[s.active]
}

// Index returns the position of the active buffer.
func (s *Selector) Index() int { return s.active }

// Len returns the number of buffers.
func (s *Selector) Len() int { return len(s.buffers) }

// Buffer returns the i-th buffer.
func (s *Selector) Buffer(i int) *Buffer { return s.buffers[i] }

// Swap advances to the next buffer and returns the one that was active,
// which is now ready to be shown.
func (s *Selector) Swap() *Buffer {
	done := s.Active()
	if len(s.buffers) > 1 {
		s.active = (s.active + 1) % len(s.buffers)
	}
	return done
}

// Select makes the i-th buffer active. Out of range indexes are ignored.
func (s *Selector) Select(i int) {
	if i >= 0 && i < len(s.buffers) {
		s.active = i
	}
}
