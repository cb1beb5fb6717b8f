package monitor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/frudas24/multiscreen/internal/geom"
)

// StaticPlatform serves a fixed monitor layout.
type StaticPlatform struct {
	list     []Info
	virtualW float64
	virtualH float64
}

// NewStaticPlatform parses a layout of the form
// "x,y,w,h[|wx,wy,ww,wh];x,y,w,h..." where the optional part after "|" is
// the working area. The first monitor is primary.
func NewStaticPlatform(layout string) (*StaticPlatform, error) {
	list, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return NewStaticPlatformFromInfos(list), nil
}

// NewStaticPlatformFromInfos wraps an already enumerated list. The virtual
// size is the extent of the union of all bounds.
func NewStaticPlatformFromInfos(list []Info) *StaticPlatform {
	w, h := unionSize(list)
	return &StaticPlatform{list: list, virtualW: w, virtualH: h}
}

// WithVirtualSize overrides the reported virtual desktop size.
func (p *StaticPlatform) WithVirtualSize(w, h float64) *StaticPlatform {
	p.virtualW = w
	p.virtualH = h
	return p
}

// Monitors returns a copy of the configured layout.
func (p *StaticPlatform) Monitors() ([]Info, error) {
	out := make([]Info, len(p.list))
	copy(out, p.list)
	return out, nil
}

// VirtualSize returns the virtual desktop size.
func (p *StaticPlatform) VirtualSize() (float64, float64) {
	return p.virtualW, p.virtualH
}

// ParseLayout parses a layout string into monitor infos.
func ParseLayout(layout string) ([]Info, error) {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return nil, errors.New("layout is empty")
	}
	var list []Info
	for i, part := range strings.Split(layout, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		boundsRaw, workRaw, hasWork := strings.Cut(part, "|")
		bounds, err := parseRect(boundsRaw)
		if err != nil {
			return nil, fmt.Errorf("monitor %d: %w", i+1, err)
		}
		work := bounds
		if hasWork {
			work, err = parseRect(workRaw)
			if err != nil {
				return nil, fmt.Errorf("monitor %d working area: %w", i+1, err)
			}
		}
		list = append(list, Info{
			Name:        fmt.Sprintf("SCREEN-%d", len(list)+1),
			Bounds:      bounds,
			WorkingArea: work,
			Primary:     len(list) == 0,
		})
	}
	if len(list) == 0 {
		return nil, errors.New("layout has no monitors")
	}
	return list, nil
}

// parseRect parses "x,y,w,h".
func parseRect(raw string) (geom.Rect, error) {
	fields := strings.Split(raw, ",")
	if len(fields) != 4 {
		return geom.Rect{}, fmt.Errorf("rect %q must have 4 fields", raw)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("rect %q: %w", raw, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rect{}, fmt.Errorf("rect %q has negative size", raw)
	}
	return geom.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// unionSize returns the width and height of the bounding box of all bounds.
func unionSize(list []Info) (float64, float64) {
	if len(list) == 0 {
		return 0, 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, m := range list {
		minX = math.Min(minX, m.Bounds.Left())
		minY = math.Min(minY, m.Bounds.Top())
		maxX = math.Max(maxX, m.Bounds.Right())
		maxY = math.Max(maxY, m.Bounds.Bottom())
	}
	return maxX - minX, maxY - minY
}
