package monitor

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/frudas24/multiscreen/internal/geom"
)

// Registry tracks the monitor layout and the screen a window was last
// resolved against. The zero value is not usable; call NewRegistry.
type Registry struct {
	platform Platform

	once    sync.Once
	initErr error

	mu       sync.RWMutex
	raw      []Info
	monitors []MonitorInfo
	last     int
	maxX     float64
	maxY     float64
}

// NewRegistry returns a registry reading its layout from p. Enumeration runs
// on Init or on the first query, whichever comes first.
func NewRegistry(p Platform) *Registry {
	return &Registry{platform: p}
}

// Init enumerates monitors once. Later calls return the first result.
func (r *Registry) Init() error {
	r.once.Do(func() {
		r.initErr = r.load()
	})
	return r.initErr
}

// load reads physical monitors and appends the virtual screen entry.
func (r *Registry) load() error {
	if r.platform == nil {
		return errors.New("monitor platform is required")
	}
	list, err := r.platform.Monitors()
	if err != nil {
		return fmt.Errorf("enumerate monitors: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.raw = list
	r.monitors = make([]MonitorInfo, 0, len(list)+1)
	r.maxX = -math.MaxFloat64
	r.maxY = -math.MaxFloat64
	for _, m := range list {
		br := m.Bounds.BottomRight()
		r.maxX = math.Max(r.maxX, br.X)
		r.maxY = math.Max(r.maxY, br.Y)
		r.monitors = append(r.monitors, MonitorInfo{
			Name:        m.Name,
			Bounds:      m.Bounds,
			WorkingArea: m.WorkingArea,
			Primary:     m.Primary,
		})
	}
	if len(list) == 0 {
		r.maxX, r.maxY = 0, 0
	}

	vw, vh := r.platform.VirtualSize()
	virtual := geom.Rect{Width: vw, Height: vh}
	r.monitors = append(r.monitors, MonitorInfo{
		Name:        VirtualScreenName,
		Bounds:      virtual,
		WorkingArea: virtual,
		Primary:     true,
	})
	r.last = 0
	return nil
}

// Resolve finds the monitor the window overlaps most, records it as the last
// resolved screen and rescales that screen for the window's DPI. It returns
// (-1, false) when the window has no surface yet or no screens are known; the
// resolved index is recorded regardless.
func (r *Registry) Resolve(w Window) (int, bool) {
	_ = r.Init()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(w)
}

// resolveLocked implements Resolve. Callers hold r.mu.
func (r *Registry) resolveLocked(w Window) (int, bool) {
	if w == nil {
		return -1, false
	}
	place := w.Placement()
	idx := r.indexFor(place)
	r.last = idx

	surface, ok := w.Surface()
	if !ok {
		return -1, false
	}
	if idx >= len(r.monitors) {
		return -1, false
	}
	if idx < len(r.raw) {
		r.monitors[idx].Bounds = scaleRect(r.raw[idx].Bounds, surface)
		r.monitors[idx].WorkingArea = scaleRect(r.raw[idx].WorkingArea, surface)
	}
	return idx, true
}

// indexFor runs the center match and its relaxed fallbacks against the
// physical monitors. Unmatched placements reuse the last resolved index.
func (r *Registry) indexFor(place geom.Rect) int {
	center := place.Center()
	probes := []geom.Point{
		center,
		{X: place.Left(), Y: center.Y},
		{X: center.X, Y: place.Top()},
		{X: place.Left(), Y: place.Top()},
	}
	for _, p := range probes {
		if idx := r.lastMatch(p); idx >= 0 {
			return idx
		}
	}
	if debugEnabled() {
		log.Printf("monitor: unresolved placement, keeping screen %d\n%s", r.last, r.describe(place))
	}
	return r.last
}

// lastMatch returns the highest index whose raw bounds contain p, or -1.
func (r *Registry) lastMatch(p geom.Point) int {
	match := -1
	for i, m := range r.raw {
		if m.Bounds.Contains(p) {
			match = i
		}
	}
	return match
}

// describe formats the monitor edges and the window placement for diagnostics.
func (r *Registry) describe(place geom.Rect) string {
	var sb strings.Builder
	for i, m := range r.raw {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "sbL: %v, sbT: %v, sbR: %v, sbB: %v, L: %v, T: %v, W: %v, H: %v",
			m.Bounds.Left(), m.Bounds.Top(), m.Bounds.Right(), m.Bounds.Bottom(),
			place.X, place.Y, place.Width, place.Height)
	}
	return sb.String()
}

// scaleRect divides the size by the surface scale, leaving the origin as is.
func scaleRect(r geom.Rect, s Surface) geom.Rect {
	if s.ScaleX > 0 {
		r.Width /= s.ScaleX
	}
	if s.ScaleY > 0 {
		r.Height /= s.ScaleY
	}
	return r
}

// Monitors resolves w (when non-nil) and returns a copy of every screen,
// the virtual screen last.
func (r *Registry) Monitors(w Window) []MonitorInfo {
	_ = r.Init()

	r.mu.Lock()
	defer r.mu.Unlock()
	if w != nil {
		r.resolveLocked(w)
	}
	out := make([]MonitorInfo, len(r.monitors))
	copy(out, r.monitors)
	return out
}

// Last returns the screen at the last resolved index.
func (r *Registry) Last() MonitorInfo {
	_ = r.Init()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastLocked()
}

// lastLocked returns the last resolved screen. Callers hold r.mu.
func (r *Registry) lastLocked() MonitorInfo {
	if r.last < 0 || r.last >= len(r.monitors) {
		return MonitorInfo{}
	}
	return r.monitors[r.last]
}

// LastIndex returns the last resolved index.
func (r *Registry) LastIndex() int {
	_ = r.Init()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// First returns the first enumerated screen.
func (r *Registry) First() MonitorInfo {
	_ = r.Init()

	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.monitors) == 0 {
		return MonitorInfo{}
	}
	return r.monitors[0]
}

// InfoFor resolves w and returns its screen, or false when w has no surface.
func (r *Registry) InfoFor(w Window) (MonitorInfo, bool) {
	_ = r.Init()

	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.resolveLocked(w)
	if !ok {
		return MonitorInfo{}, false
	}
	return r.monitors[idx], true
}

// InfoOn runs InfoFor on the UI thread owned by d and waits for the result.
func (r *Registry) InfoOn(d Invoker, w Window) (MonitorInfo, bool, error) {
	var (
		info MonitorInfo
		ok   bool
	)
	err := d.Invoke(func() {
		info, ok = r.InfoFor(w)
	})
	if err != nil {
		return MonitorInfo{}, false, err
	}
	return info, ok, nil
}

// ResolveOn runs Resolve on the UI thread owned by d and waits for the result.
func (r *Registry) ResolveOn(d Invoker, w Window) (int, bool, error) {
	var (
		idx int
		ok  bool
	)
	err := d.Invoke(func() {
		idx, ok = r.Resolve(w)
	})
	if err != nil {
		return -1, false, err
	}
	return idx, ok, nil
}

// Extent returns the bottom-right corner of the union of physical monitors.
func (r *Registry) Extent() (float64, float64) {
	_ = r.Init()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxX, r.maxY
}

// IsWithin reports whether p lies on the last resolved screen.
func (r *Registry) IsWithin(p geom.Point) bool {
	return r.IsWithinScreen(p, 0, 0)
}

// IsWithinScreen reports whether p keeps at least the given margins to every
// edge of the last resolved screen.
func (r *Registry) IsWithinScreen(p geom.Point, marginX, marginY float64) bool {
	_ = r.Init()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return withinMargin(r.lastLocked().Bounds, p, marginX, marginY)
}

// withinMargin probes p shifted by +margin and by -margin.
func withinMargin(b geom.Rect, p geom.Point, marginX, marginY float64) bool {
	return b.Contains(p.Offset(marginX, marginY)) && b.Contains(p.Offset(-marginX, -marginY))
}

// ClampToScreen moves p onto the last resolved screen, keeping the margins
// where the screen is large enough. Points already within are returned as is.
func (r *Registry) ClampToScreen(p geom.Point, marginX, marginY float64) geom.Point {
	_ = r.Init()

	r.mu.RLock()
	defer r.mu.RUnlock()
	b := r.lastLocked().Bounds
	if withinMargin(b, p, marginX, marginY) {
		return p
	}
	p.X = clampAxis(p.X, b.Left(), b.Right(), marginX)
	p.Y = clampAxis(p.Y, b.Top(), b.Bottom(), marginY)
	return p
}

// clampAxis clamps v into [lo+margin, hi-margin], then back above lo when the
// margin exceeds the span.
func clampAxis(v, lo, hi, margin float64) float64 {
	if v < lo+margin {
		v = lo + margin
	}
	if v > hi-margin {
		v = hi - margin
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampToAllScreens clamps p into [0, extent-margin] on both axes. Only the
// far edges honor the margin.
func (r *Registry) ClampToAllScreens(p geom.Point, marginX, marginY float64) geom.Point {
	maxX, maxY := r.Extent()
	if p.X > maxX-marginX {
		p.X = maxX - marginX
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y > maxY-marginY {
		p.Y = maxY - marginY
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}
