package main

import (
	"fmt"
	"strconv"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
	"github.com/frudas24/multiscreen/internal/placement"
	"github.com/spf13/cobra"
)

var (
	clampMarginX float64
	clampMarginY float64
	clampAll     bool
	clampWindow  string
	clampHWND    string
	clampMove    bool
)

var clampCmd = &cobra.Command{
	Use:   "clamp X Y",
	Short: "Clamp a point into screen bounds",
	Long: `Clamp a point onto the screen a window resolves to, or with --all onto the
far edges of the whole desktop. Without --window or --hwnd the first screen
is used.

With --hwnd the native window is resolved first, and --move places its
top-left corner at the clamped point.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("X must be a number: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("Y must be a number: %w", err)
		}
		if clampMove && clampHWND == "" {
			return fmt.Errorf("--move requires --hwnd")
		}

		_, reg, err := openRegistry()
		if err != nil {
			return err
		}

		var w monitor.Window
		switch {
		case clampHWND != "":
			handle, err := parseHandle(clampHWND)
			if err != nil {
				return err
			}
			native, err := monitor.NativeWindow(handle)
			if err != nil {
				return fmt.Errorf("--hwnd: %w", err)
			}
			w = native
		case clampWindow != "":
			r, err := parseWindow(clampWindow)
			if err != nil {
				return err
			}
			w = monitor.FixedWindow{Rect: r}
		}

		res := clampPoint(reg, w, geom.Point{X: x, Y: y}, clampOptions{
			Margins: placement.Margins{X: clampMarginX, Y: clampMarginY},
			All:     clampAll,
			Move:    clampMove,
		})
		fmt.Printf("screen: %s\n", res.Screen)
		fmt.Printf("within: %v\n", res.Within)
		fmt.Printf("result: %g,%g\n", res.Point.X, res.Point.Y)
		if res.Moved {
			fmt.Printf("moved: %g,%g\n", res.Point.X, res.Point.Y)
		}
		return nil
	},
}

func init() {
	clampCmd.Flags().Float64Var(&clampMarginX, "margin-x", 0, "Horizontal margin to the screen edges")
	clampCmd.Flags().Float64Var(&clampMarginY, "margin-y", 0, "Vertical margin to the screen edges")
	clampCmd.Flags().BoolVar(&clampAll, "all", false, "Clamp against the whole desktop instead of one screen")
	clampCmd.Flags().StringVar(&clampWindow, "window", "", "Window placement left,top,width,height to resolve first")
	clampCmd.Flags().StringVar(&clampHWND, "hwnd", "", "Native window handle (decimal or 0x hex) to resolve first")
	clampCmd.Flags().BoolVar(&clampMove, "move", false, "Move the --hwnd window to the clamped point")
	clampCmd.MarkFlagsMutuallyExclusive("window", "hwnd")
}

type clampOptions struct {
	Margins placement.Margins
	All     bool
	Move    bool
}

type clampResult struct {
	Screen string
	Within bool
	Point  geom.Point
	Moved  bool
}

// clampPoint resolves w when set, then clamps p. With Move and a movable
// window the window is restored to p, which clamps it to the whole desktop and
// then to the screen it lands on.
func clampPoint(reg *monitor.Registry, w monitor.Window, p geom.Point, opts clampOptions) clampResult {
	m := opts.Margins
	if w != nil {
		reg.Resolve(w)
	}
	res := clampResult{Within: reg.IsWithinScreen(p, m.X, m.Y)}
	if mw, ok := w.(placement.Movable); ok && opts.Move {
		res.Point = placement.Restore(reg, mw, placement.Placement{Left: p.X, Top: p.Y}, m)
		res.Moved = true
	} else if opts.All {
		res.Point = reg.ClampToAllScreens(p, m.X, m.Y)
	} else {
		res.Point = reg.ClampToScreen(p, m.X, m.Y)
	}
	res.Screen = reg.Last().Name
	return res
}

// parseHandle parses a window handle in decimal or 0x-prefixed hex.
func parseHandle(raw string) (uintptr, error) {
	v, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("--hwnd must be a number: %w", err)
	}
	return uintptr(v), nil
}

// parseWindow parses "left,top,width,height" using the layout rect syntax.
func parseWindow(raw string) (geom.Rect, error) {
	list, err := monitor.ParseLayout(raw)
	if err != nil {
		return geom.Rect{}, fmt.Errorf("--window: %w", err)
	}
	if len(list) != 1 {
		return geom.Rect{}, fmt.Errorf("--window takes a single rect")
	}
	return list[0].Bounds, nil
}
