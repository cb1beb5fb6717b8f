// Package testutil provides fakes shared by package tests.
package testutil

import (
	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
)

// FakeWindow implements monitor.Window and records moves for tests.
type FakeWindow struct {
	Rect   geom.Rect
	Scale  monitor.Surface
	Hidden bool
	Moves  []geom.Point
}

// Ensure FakeWindow implements the interface.
var _ monitor.Window = (*FakeWindow)(nil)

// NewWindow returns a shown window at r with unit scale.
func NewWindow(r geom.Rect) *FakeWindow {
	return &FakeWindow{Rect: r, Scale: monitor.Surface{ScaleX: 1, ScaleY: 1}}
}

// Placement returns the current rectangle.
func (f *FakeWindow) Placement() geom.Rect {
	return f.Rect
}

// Surface returns the scale unless the window is hidden.
func (f *FakeWindow) Surface() (monitor.Surface, bool) {
	if f.Hidden {
		return monitor.Surface{}, false
	}
	return f.Scale, true
}

// MoveTo records a move and updates the origin.
func (f *FakeWindow) MoveTo(p geom.Point) {
	f.Moves = append(f.Moves, p)
	f.Rect.X = p.X
	f.Rect.Y = p.Y
}
