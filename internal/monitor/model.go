// Package monitor describes display geometry and resolves windows to screens.
package monitor

import "github.com/frudas24/multiscreen/internal/geom"

// VirtualScreenName names the synthetic entry spanning every monitor.
const VirtualScreenName = "VirtualScreen"

// Info is a physical monitor as reported by a Platform, in native pixels.
type Info struct {
	Name        string
	Bounds      geom.Rect
	WorkingArea geom.Rect
	Primary     bool
}

// MonitorInfo describes a screen tracked by the registry.
type MonitorInfo struct {
	Name        string    `json:"name"`
	Bounds      geom.Rect `json:"bounds"`
	WorkingArea geom.Rect `json:"workingArea"`
	Primary     bool      `json:"primary"`
}

// IsVirtual reports whether m is the synthetic virtual screen entry.
func (m MonitorInfo) IsVirtual() bool {
	return m.Name == VirtualScreenName
}

// FindByName returns the first monitor with the given name.
func FindByName(list []MonitorInfo, name string) (MonitorInfo, bool) {
	for _, m := range list {
		if m.Name == name {
			return m, true
		}
	}
	return MonitorInfo{}, false
}
