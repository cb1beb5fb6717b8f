//go:build !windows

package monitor

// NewWin32Platform returns ErrUnsupported on non-Windows platforms.
func NewWin32Platform() (Platform, error) {
	return nil, ErrUnsupported
}

// NativeWindow returns ErrUnsupported on non-Windows platforms.
func NativeWindow(handle uintptr) (MovableWindow, error) {
	_ = handle
	return nil, ErrUnsupported
}
