package monitor

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/frudas24/multiscreen/internal/geom"
)

// ErrUnsupported indicates a platform adapter is not available on this OS.
var ErrUnsupported = errors.New("monitor platform not supported on this OS")

// Platform enumerates physical monitors.
type Platform interface {
	// Monitors lists physical monitors in enumeration order.
	Monitors() ([]Info, error)
	// VirtualSize reports the total virtual desktop size.
	VirtualSize() (width, height float64)
}

// Surface carries the device transform of a realized window.
// ScaleX and ScaleY are the diagonal terms of that transform.
type Surface struct {
	ScaleX float64
	ScaleY float64
}

// Window exposes the geometry of an application window.
type Window interface {
	// Placement returns left, top, width and height in device-independent units.
	Placement() geom.Rect
	// Surface returns the device transform, or false when the window has not
	// been shown yet.
	Surface() (Surface, bool)
}

// MovableWindow is a Window whose top-left corner can be repositioned.
type MovableWindow interface {
	Window
	MoveTo(p geom.Point)
}

// Invoker runs fn synchronously on the UI thread.
type Invoker interface {
	Invoke(fn func()) error
}

// Platform kinds accepted by Open.
const (
	KindAuto   = "auto"
	KindWin32  = "win32"
	KindX11    = "x11"
	KindStatic = "static"
)

// Open returns the platform adapter for kind. Auto picks the native adapter
// for the running OS and falls back to the static layout when it fails.
func Open(kind, layout string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindWin32:
		return NewWin32Platform()
	case KindX11:
		return NewX11Platform("")
	case KindStatic:
		return openStatic(layout)
	case "", KindAuto:
		p, err := openNative()
		if err == nil {
			return p, nil
		}
		log.Printf("monitor: native platform unavailable (%v), using static layout", err)
		return openStatic(layout)
	default:
		return nil, fmt.Errorf("unknown platform %q", kind)
	}
}

// openNative selects the adapter matching the running OS.
func openNative() (Platform, error) {
	switch runtime.GOOS {
	case "windows":
		return NewWin32Platform()
	case "linux":
		return NewX11Platform("")
	default:
		return nil, ErrUnsupported
	}
}

// openStatic returns the parsed static layout as a Platform.
func openStatic(layout string) (Platform, error) {
	p, err := NewStaticPlatform(layout)
	if err != nil {
		return nil, err
	}
	return p, nil
}
