package monitor

import (
	"testing"

	"github.com/frudas24/multiscreen/internal/geom"
)

// TestParseLayout_WorkingArea verifies the optional working area is parsed.
func TestParseLayout_WorkingArea(t *testing.T) {
	list, err := ParseLayout("0,0,1920,1080|0,0,1920,1040; 1920,0,1280,1024")
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(list))
	}
	if list[0].WorkingArea != (geom.Rect{Width: 1920, Height: 1040}) {
		t.Fatalf("unexpected working area %+v", list[0].WorkingArea)
	}
	if list[1].WorkingArea != list[1].Bounds {
		t.Fatalf("expected working area to default to bounds")
	}
	if !list[0].Primary || list[1].Primary {
		t.Fatalf("expected first monitor primary only")
	}
}

// TestParseLayout_Invalid verifies malformed layouts are rejected.
func TestParseLayout_Invalid(t *testing.T) {
	for _, layout := range []string{"", "1,2,3", "a,b,c,d", "0,0,-1,10", ";"} {
		if _, err := ParseLayout(layout); err == nil {
			t.Fatalf("expected error for %q", layout)
		}
	}
}

// TestStaticPlatform_UnionSize verifies the virtual size spans offset layouts.
func TestStaticPlatform_UnionSize(t *testing.T) {
	p, err := NewStaticPlatform("-1280,0,1280,1024;0,0,1920,1080")
	if err != nil {
		t.Fatalf("NewStaticPlatform failed: %v", err)
	}
	w, h := p.VirtualSize()
	if w != 3200 || h != 1080 {
		t.Fatalf("expected 3200x1080, got %vx%v", w, h)
	}
}

// TestFindByName verifies lookups by device name.
func TestFindByName(t *testing.T) {
	list := []MonitorInfo{{Name: "A"}, {Name: VirtualScreenName}}
	if m, ok := FindByName(list, VirtualScreenName); !ok || !m.IsVirtual() {
		t.Fatalf("expected virtual screen, got ok=%v %+v", ok, m)
	}
	if _, ok := FindByName(list, "missing"); ok {
		t.Fatalf("expected not found")
	}
}

// TestOpen_Static verifies the static kind parses the layout.
func TestOpen_Static(t *testing.T) {
	p, err := Open(KindStatic, "0,0,800,600")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	list, err := p.Monitors()
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one monitor, got %d err=%v", len(list), err)
	}
}

// TestOpen_Unknown verifies unknown kinds are rejected.
func TestOpen_Unknown(t *testing.T) {
	if _, err := Open("wayland", ""); err == nil {
		t.Fatalf("expected error")
	}
}
