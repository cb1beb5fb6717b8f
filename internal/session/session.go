// Package session holds the state of the simulated demo window.
package session

import (
	"sync"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
)

// Snapshot represents a read-only view of the demo window.
type Snapshot struct {
	Placement geom.Rect `json:"placement"`
	ScaleX    float64   `json:"scaleX"`
	ScaleY    float64   `json:"scaleY"`
	Shown     bool      `json:"shown"`
}

// Window is a mutex-guarded window whose geometry is driven by the browser
// demo. It implements monitor.Window.
type Window struct {
	mu        sync.RWMutex
	placement geom.Rect
	scaleX    float64
	scaleY    float64
	shown     bool
}

// Ensure Window implements the interface.
var _ monitor.Window = (*Window)(nil)

// New returns a hidden window with the given placement and uniform scale.
func New(placement geom.Rect, scale float64) *Window {
	if scale <= 0 {
		scale = 1
	}
	return &Window{
		placement: placement,
		scaleX:    scale,
		scaleY:    scale,
	}
}

// Placement returns the window position and size.
func (w *Window) Placement() geom.Rect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.placement
}

// Surface returns the device scale once the window has been shown.
func (w *Window) Surface() (monitor.Surface, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.shown {
		return monitor.Surface{}, false
	}
	return monitor.Surface{ScaleX: w.scaleX, ScaleY: w.scaleY}, true
}

// Move sets the window position and size.
func (w *Window) Move(placement geom.Rect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.placement = placement
}

// MoveTo sets the window position, keeping its size.
func (w *Window) MoveTo(p geom.Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.placement.X = p.X
	w.placement.Y = p.Y
}

// SetScale sets the device scale factors. Non-positive values are ignored.
func (w *Window) SetScale(scaleX, scaleY float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if scaleX > 0 {
		w.scaleX = scaleX
	}
	if scaleY > 0 {
		w.scaleY = scaleY
	}
}

// SetShown toggles whether the window has a rendering surface.
func (w *Window) SetShown(shown bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shown = shown
}

// Snapshot returns a copy of the current window state.
func (w *Window) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return Snapshot{
		Placement: w.placement,
		ScaleX:    w.scaleX,
		ScaleY:    w.scaleY,
		Shown:     w.shown,
	}
}
