package placement

import (
	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
)

// Placement is a persisted window position.
type Placement struct {
	Left   float64 `yaml:"left" json:"left"`
	Top    float64 `yaml:"top" json:"top"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Screen string  `yaml:"screen,omitempty" json:"screen,omitempty"`
}

// Origin returns the top-left corner.
func (p Placement) Origin() geom.Point {
	return geom.Point{X: p.Left, Y: p.Top}
}

// Movable is a window that can be repositioned.
type Movable = monitor.MovableWindow

// Margins keep restored windows away from screen edges.
type Margins struct {
	X float64
	Y float64
}

// Capture records the current position of w and the screen it resolves to.
// Windows without a surface are captured without a screen name.
func Capture(reg *monitor.Registry, w monitor.Window) Placement {
	r := w.Placement()
	p := Placement{Left: r.X, Top: r.Y, Width: r.Width, Height: r.Height}
	if info, ok := reg.InfoFor(w); ok {
		p.Screen = info.Name
	}
	return p
}

// Restore moves w to the saved origin, first clamped to the far edges of the
// whole desktop, then onto the screen the window lands on. It returns the
// final origin.
func Restore(reg *monitor.Registry, w Movable, saved Placement, m Margins) geom.Point {
	origin := reg.ClampToAllScreens(saved.Origin(), m.X, m.Y)
	w.MoveTo(origin)
	if _, ok := reg.Resolve(w); !ok {
		return origin
	}
	origin = reg.ClampToScreen(origin, m.X, m.Y)
	w.MoveTo(origin)
	return origin
}
