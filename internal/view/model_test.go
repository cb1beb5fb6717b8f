package view

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
)

// sampleList returns two screens plus the virtual screen.
func sampleList() []monitor.MonitorInfo {
	return []monitor.MonitorInfo{
		{Name: "A", Bounds: geom.Rect{Width: 1920, Height: 1080}, Primary: true},
		{Name: "B", Bounds: geom.Rect{X: 1920, Width: 1920, Height: 1080}},
		{Name: monitor.VirtualScreenName, Bounds: geom.Rect{Width: 3840, Height: 1080}, Primary: true},
	}
}

// TestBuildRows_MarksActualAndVirtual verifies the actual flag placement.
func TestBuildRows_MarksActualAndVirtual(t *testing.T) {
	rows := BuildRows(sampleList(), "B")
	if rows[0].Actual || !rows[1].Actual || !rows[2].Actual {
		t.Fatalf("unexpected actual flags: %+v", rows)
	}
}

// TestRefresh_NotifiesOnChange verifies subscribers receive changed lists only.
func TestRefresh_NotifiesOnChange(t *testing.T) {
	m := NewModel()
	var got [][]Row
	cancel := m.Subscribe(func(rows []Row) { got = append(got, rows) })
	defer cancel()

	if changed := m.Refresh(sampleList(), "A"); len(changed) != 3 {
		t.Fatalf("expected 3 new rows, got %d", len(changed))
	}
	if changed := m.Refresh(sampleList(), "A"); len(changed) != 0 {
		t.Fatalf("expected no changes, got %+v", changed)
	}
	changed := m.Refresh(sampleList(), "B")
	if len(changed) != 2 || changed[0].Name != "A" || changed[1].Name != "B" {
		t.Fatalf("expected A and B to change, got %+v", changed)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if !got[1][1].Actual {
		t.Fatalf("expected B actual in last notification")
	}
}

// TestSubscribe_Cancel verifies cancelled subscribers are not notified.
func TestSubscribe_Cancel(t *testing.T) {
	m := NewModel()
	calls := 0
	cancel := m.Subscribe(func([]Row) { calls++ })
	cancel()
	m.Refresh(sampleList(), "A")
	if calls != 0 {
		t.Fatalf("expected no calls, got %d", calls)
	}
}

// TestRows_ReturnsCopy verifies callers cannot mutate model rows.
func TestRows_ReturnsCopy(t *testing.T) {
	m := NewModel()
	m.Refresh(sampleList(), "A")
	rows := m.Rows()
	rows[0].Name = "changed"
	if m.Rows()[0].Name != "A" {
		t.Fatalf("expected model rows unchanged")
	}
}

// TestRefresh_ConcurrentDeliveryOrdered verifies concurrent refreshes notify one at
// a time and the last notification matches the stored rows.
func TestRefresh_ConcurrentDeliveryOrdered(t *testing.T) {
	m := NewModel()
	var (
		inside  atomic.Bool
		overlap atomic.Bool
		lastMu  sync.Mutex
		last    []Row
	)
	cancel := m.Subscribe(func(rows []Row) {
		if !inside.CompareAndSwap(false, true) {
			overlap.Store(true)
		}
		lastMu.Lock()
		last = rows
		lastMu.Unlock()
		inside.Store(false)
	})
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "A"
			if i%2 == 1 {
				name = "B"
			}
			m.Refresh(sampleList(), name)
		}(i)
	}
	wg.Wait()

	if overlap.Load() {
		t.Fatalf("expected serialized notifications")
	}
	lastMu.Lock()
	defer lastMu.Unlock()
	rows := m.Rows()
	if len(last) != len(rows) {
		t.Fatalf("expected %d rows in last notification, got %d", len(rows), len(last))
	}
	for i := range rows {
		if rows[i] != last[i] {
			t.Fatalf("last notification %+v differs from stored rows %+v", last, rows)
		}
	}
}
