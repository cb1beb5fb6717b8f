package session

import (
	"testing"

	"github.com/frudas24/multiscreen/internal/geom"
)

// TestSurface_HiddenUntilShown verifies a new window has no surface.
func TestSurface_HiddenUntilShown(t *testing.T) {
	w := New(geom.Rect{Width: 100, Height: 100}, 1.25)
	if _, ok := w.Surface(); ok {
		t.Fatalf("expected no surface before SetShown")
	}
	w.SetShown(true)
	s, ok := w.Surface()
	if !ok || s.ScaleX != 1.25 || s.ScaleY != 1.25 {
		t.Fatalf("unexpected surface %+v ok=%v", s, ok)
	}
}

// TestNew_DefaultScale verifies a non-positive scale falls back to 1.
func TestNew_DefaultScale(t *testing.T) {
	w := New(geom.Rect{}, 0)
	snap := w.Snapshot()
	if snap.ScaleX != 1 || snap.ScaleY != 1 {
		t.Fatalf("expected unit scale, got %+v", snap)
	}
}

// TestMoveTo_KeepsSize verifies MoveTo only changes the origin.
func TestMoveTo_KeepsSize(t *testing.T) {
	w := New(geom.Rect{X: 1, Y: 2, Width: 300, Height: 200}, 1)
	w.MoveTo(geom.Point{X: 50, Y: 60})
	if got := w.Placement(); got != (geom.Rect{X: 50, Y: 60, Width: 300, Height: 200}) {
		t.Fatalf("unexpected placement %+v", got)
	}
}

// TestSetScale_IgnoresNonPositive verifies invalid scales are ignored.
func TestSetScale_IgnoresNonPositive(t *testing.T) {
	w := New(geom.Rect{}, 1)
	w.SetScale(2, 0)
	snap := w.Snapshot()
	if snap.ScaleX != 2 || snap.ScaleY != 1 {
		t.Fatalf("unexpected scales %+v", snap)
	}
}

// TestSnapshot verifies snapshot content.
func TestSnapshot(t *testing.T) {
	w := New(geom.Rect{}, 1)
	w.Move(geom.Rect{X: 5, Y: 6, Width: 7, Height: 8})
	w.SetShown(true)
	snap := w.Snapshot()
	if !snap.Shown || snap.Placement != (geom.Rect{X: 5, Y: 6, Width: 7, Height: 8}) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
