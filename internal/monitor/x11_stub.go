//go:build !linux

package monitor

// NewX11Platform returns ErrUnsupported outside Linux.
func NewX11Platform(display string) (Platform, error) {
	_ = display
	return nil, ErrUnsupported
}
