//go:build windows

package monitor

import (
	"fmt"
	"math"
	"syscall"
	"unsafe"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/lxn/win"
)

// baseDPI is the DPI at which one device-independent unit equals one pixel.
const baseDPI = 96

// NewWin32Platform returns a platform backed by WinAPI monitor enumeration.
func NewWin32Platform() (Platform, error) {
	return win32Platform{}, nil
}

type win32Platform struct{}

// Monitors returns the list of available displays using WinAPI.
func (win32Platform) Monitors() ([]Info, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

// VirtualSize returns the virtual desktop size reported by the system metrics.
func (win32Platform) VirtualSize() (float64, float64) {
	w := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	h := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	return float64(w), float64(h)
}

type enumState struct {
	list []Info
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	s.list = append(s.list, Info{
		Name:        fmt.Sprintf(`\\.\DISPLAY%d`, len(s.list)+1),
		Bounds:      rectFromWin(info.RcMonitor),
		WorkingArea: rectFromWin(info.RcWork),
		Primary:     info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}

// rectFromWin converts an edge-based RECT into origin and size.
func rectFromWin(r win.RECT) geom.Rect {
	return geom.Rect{
		X:      float64(r.Left),
		Y:      float64(r.Top),
		Width:  float64(r.Right - r.Left),
		Height: float64(r.Bottom - r.Top),
	}
}

// HWNDWindow adapts a native window handle to Window.
type HWNDWindow struct {
	HWND win.HWND
}

// NativeWindow wraps a top-level window handle. The handle must name an
// existing window.
func NativeWindow(handle uintptr) (MovableWindow, error) {
	if handle == 0 {
		return nil, fmt.Errorf("window handle is required")
	}
	hwnd := win.HWND(handle)
	var rc win.RECT
	if !win.GetWindowRect(hwnd, &rc) {
		return nil, fmt.Errorf("window 0x%x: %w", handle, syscall.GetLastError())
	}
	return HWNDWindow{HWND: hwnd}, nil
}

// Placement returns the window rectangle in device-independent units.
func (w HWNDWindow) Placement() geom.Rect {
	var rc win.RECT
	if !win.GetWindowRect(w.HWND, &rc) {
		return geom.Rect{}
	}
	scale := w.scale()
	r := rectFromWin(rc)
	return geom.Rect{X: r.X / scale, Y: r.Y / scale, Width: r.Width / scale, Height: r.Height / scale}
}

// Surface reports the window DPI scale; hidden windows have none.
func (w HWNDWindow) Surface() (Surface, bool) {
	if w.HWND == 0 || !win.IsWindowVisible(w.HWND) {
		return Surface{}, false
	}
	scale := w.scale()
	return Surface{ScaleX: scale, ScaleY: scale}, true
}

// MoveTo positions the window's top-left corner, given in device-independent
// units, keeping its size and z-order.
func (w HWNDWindow) MoveTo(p geom.Point) {
	scale := w.scale()
	x := int32(math.Round(p.X * scale))
	y := int32(math.Round(p.Y * scale))
	win.SetWindowPos(w.HWND, 0, x, y, 0, 0, win.SWP_NOSIZE|win.SWP_NOZORDER|win.SWP_NOACTIVATE)
}

// scale returns the window DPI relative to 96.
func (w HWNDWindow) scale() float64 {
	dpi := win.GetDpiForWindow(w.HWND)
	if dpi == 0 {
		return 1
	}
	return float64(dpi) / baseDPI
}
