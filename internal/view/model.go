// Package view keeps an observable list of screens for the demo UI.
package view

import (
	"sync"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
)

// Row is one screen as shown to the user.
type Row struct {
	Name        string    `json:"name"`
	Bounds      geom.Rect `json:"bounds"`
	WorkingArea geom.Rect `json:"workingArea"`
	Primary     bool      `json:"primary"`
	// Actual is set on the screen holding the window and on the virtual screen.
	Actual bool `json:"actual"`
}

// Model holds the current rows and notifies subscribers when they change.
type Model struct {
	// notifyMu orders row updates with their delivery to subscribers.
	notifyMu sync.Mutex

	mu     sync.Mutex
	rows   []Row
	nextID int
	subs   map[int]func([]Row)
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{subs: make(map[int]func([]Row))}
}

// Rows returns a copy of the current rows.
func (m *Model) Rows() []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRows(m.rows)
}

// Subscribe registers fn to receive the full row list after every change.
// The returned func removes the subscription.
func (m *Model) Subscribe(fn func([]Row)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// Refresh rebuilds the rows from list, marking actualName and the virtual
// screen as actual. It returns the rows that differ from the previous state
// and notifies subscribers when there is at least one. Concurrent refreshes
// are delivered one at a time in the order their rows were stored, so
// subscribers must not block.
func (m *Model) Refresh(list []monitor.MonitorInfo, actualName string) []Row {
	next := BuildRows(list, actualName)

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	changed := diffRows(m.rows, next)
	m.rows = next
	subs := make([]func([]Row), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if len(changed) > 0 {
		for _, fn := range subs {
			fn(cloneRows(next))
		}
	}
	return changed
}

// BuildRows converts monitor infos into rows.
func BuildRows(list []monitor.MonitorInfo, actualName string) []Row {
	rows := make([]Row, 0, len(list))
	for _, info := range list {
		rows = append(rows, Row{
			Name:        info.Name,
			Bounds:      info.Bounds,
			WorkingArea: info.WorkingArea,
			Primary:     info.Primary,
			Actual:      info.Name == actualName || info.IsVirtual(),
		})
	}
	return rows
}

// diffRows returns rows of next that are new or changed relative to prev.
func diffRows(prev, next []Row) []Row {
	var changed []Row
	for i, row := range next {
		if i < len(prev) && prev[i] == row {
			continue
		}
		changed = append(changed, row)
	}
	return changed
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}
