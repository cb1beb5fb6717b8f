package monitor

import "sync/atomic"

// debugResolve controls whether unresolved placements are logged.
var debugResolve atomic.Bool

// SetDebugLogging enables/disables diagnostics for unresolved window placements.
func SetDebugLogging(enabled bool) {
	debugResolve.Store(enabled)
}

// debugEnabled reports whether resolution diagnostics are enabled.
func debugEnabled() bool {
	return debugResolve.Load()
}
