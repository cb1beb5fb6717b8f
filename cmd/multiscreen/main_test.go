package main

import (
	"testing"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
	"github.com/frudas24/multiscreen/internal/placement"
	"github.com/frudas24/multiscreen/internal/testutil"
)

// dualRegistry returns a registry over two side-by-side 1920x1080 monitors.
func dualRegistry(t *testing.T) *monitor.Registry {
	t.Helper()
	p, err := monitor.NewStaticPlatform("0,0,1920,1080;1920,0,1920,1080")
	if err != nil {
		t.Fatalf("NewStaticPlatform failed: %v", err)
	}
	return monitor.NewRegistry(p)
}

// TestParseWindow verifies a single window rect is parsed.
func TestParseWindow(t *testing.T) {
	r, err := parseWindow("-100,20,800,600")
	if err != nil {
		t.Fatalf("parseWindow failed: %v", err)
	}
	if r != (geom.Rect{X: -100, Y: 20, Width: 800, Height: 600}) {
		t.Fatalf("unexpected rect %+v", r)
	}
}

// TestParseWindow_RejectsMultiple verifies more than one rect is rejected.
func TestParseWindow_RejectsMultiple(t *testing.T) {
	if _, err := parseWindow("0,0,1,1;2,2,1,1"); err == nil {
		t.Fatalf("expected error")
	}
}

// TestFormatRect verifies the human readable rect format.
func TestFormatRect(t *testing.T) {
	if got := formatRect(geom.Rect{X: 1920, Width: 1280, Height: 1024}); got != "1280x1024 at (1920,0)" {
		t.Fatalf("unexpected format %q", got)
	}
}

// TestParseHandle verifies decimal and hex handles are accepted.
func TestParseHandle(t *testing.T) {
	if h, err := parseHandle("0x1f4"); err != nil || h != 500 {
		t.Fatalf("expected 500, got %d err=%v", h, err)
	}
	if h, err := parseHandle("65538"); err != nil || h != 65538 {
		t.Fatalf("expected 65538, got %d err=%v", h, err)
	}
	if _, err := parseHandle("window"); err == nil {
		t.Fatalf("expected error")
	}
}

// TestClampPoint_ResolvesWindowFirst verifies the window's screen bounds the clamp.
func TestClampPoint_ResolvesWindowFirst(t *testing.T) {
	reg := dualRegistry(t)
	w := testutil.NewWindow(geom.Rect{X: 2000, Y: 100, Width: 800, Height: 600})
	res := clampPoint(reg, w, geom.Point{X: 100, Y: 100}, clampOptions{Margins: placement.Margins{X: 10, Y: 10}})
	if res.Screen != "SCREEN-2" || res.Within || res.Moved {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Point != (geom.Point{X: 1930, Y: 100}) {
		t.Fatalf("expected (1930,100), got %+v", res.Point)
	}
	if len(w.Moves) != 0 {
		t.Fatalf("expected no moves, got %+v", w.Moves)
	}
}

// TestClampPoint_MoveRestoresWindow verifies --move places the window through a restore.
func TestClampPoint_MoveRestoresWindow(t *testing.T) {
	reg := dualRegistry(t)
	w := testutil.NewWindow(geom.Rect{X: 100, Y: 100, Width: 800, Height: 600})
	res := clampPoint(reg, w, geom.Point{X: 5000, Y: -40}, clampOptions{
		Margins: placement.Margins{X: 10, Y: 10},
		Move:    true,
	})
	if !res.Moved {
		t.Fatalf("expected window to move")
	}
	// The desktop clamp puts the origin at (3830,0), then the screen clamp adds the top margin.
	want := geom.Point{X: 3830, Y: 10}
	if res.Point != want || res.Screen != "SCREEN-2" {
		t.Fatalf("expected %+v on SCREEN-2, got %+v", want, res)
	}
	if len(w.Moves) != 2 || w.Moves[1] != want {
		t.Fatalf("unexpected moves %+v", w.Moves)
	}
}

// TestClampPoint_AllIgnoresWindowScreen verifies --all clamps to the whole desktop.
func TestClampPoint_AllIgnoresWindowScreen(t *testing.T) {
	reg := dualRegistry(t)
	w := monitor.FixedWindow{Rect: geom.Rect{X: 100, Y: 100, Width: 800, Height: 600}}
	res := clampPoint(reg, w, geom.Point{X: 4000, Y: 50}, clampOptions{
		Margins: placement.Margins{X: 10, Y: 10},
		All:     true,
		Move:    true,
	})
	if res.Moved || res.Point != (geom.Point{X: 3830, Y: 50}) || res.Screen != "SCREEN-1" {
		t.Fatalf("unexpected result %+v", res)
	}
}
