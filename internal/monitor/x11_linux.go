//go:build linux

package monitor

import (
	"fmt"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xinerama"
	"github.com/jezek/xgb/xproto"
)

// NewX11Platform queries the X server's Xinerama heads once and returns them
// as a static layout. An empty display uses $DISPLAY.
func NewX11Platform(display string) (Platform, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("x11 connect: %w", err)
	}
	defer conn.Close()

	if err := xinerama.Init(conn); err != nil {
		return nil, fmt.Errorf("xinerama init: %w", err)
	}
	reply, err := xinerama.QueryScreens(conn).Reply()
	if err != nil {
		return nil, fmt.Errorf("xinerama query: %w", err)
	}
	if len(reply.ScreenInfo) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}

	list := make([]Info, 0, len(reply.ScreenInfo))
	for i, head := range reply.ScreenInfo {
		bounds := geom.Rect{
			X:      float64(head.XOrg),
			Y:      float64(head.YOrg),
			Width:  float64(head.Width),
			Height: float64(head.Height),
		}
		list = append(list, Info{
			Name:        fmt.Sprintf("HEAD-%d", i),
			Bounds:      bounds,
			WorkingArea: bounds,
			Primary:     i == 0,
		})
	}

	root := xproto.Setup(conn).DefaultScreen(conn)
	p := NewStaticPlatformFromInfos(list)
	return p.WithVirtualSize(float64(root.WidthInPixels), float64(root.HeightInPixels)), nil
}
