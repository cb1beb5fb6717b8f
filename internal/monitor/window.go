package monitor

import "github.com/frudas24/multiscreen/internal/geom"

// FixedWindow is a shown window with a known placement, for callers that
// have a window's geometry but not the window itself.
type FixedWindow struct {
	Rect  geom.Rect
	Scale Surface
}

// Placement returns the fixed rectangle.
func (w FixedWindow) Placement() geom.Rect {
	return w.Rect
}

// Surface returns the scale, defaulting to 1 on unset axes.
func (w FixedWindow) Surface() (Surface, bool) {
	s := w.Scale
	if s.ScaleX <= 0 {
		s.ScaleX = 1
	}
	if s.ScaleY <= 0 {
		s.ScaleY = 1
	}
	return s, true
}
