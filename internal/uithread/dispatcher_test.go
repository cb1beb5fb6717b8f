package uithread

import (
	"errors"
	"sync"
	"testing"
)

// TestInvoke_RunsSynchronously verifies Invoke returns after fn completes.
func TestInvoke_RunsSynchronously(t *testing.T) {
	d := New()
	d.Start()
	defer d.Stop()

	value := 0
	if err := d.Invoke(func() { value = 42 }); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if value != 42 {
		t.Fatalf("expected 42, got %d", value)
	}
}

// TestInvoke_SerializesCallers verifies concurrent callers never overlap.
func TestInvoke_SerializesCallers(t *testing.T) {
	d := New()
	d.Start()
	defer d.Stop()

	var (
		wg      sync.WaitGroup
		active  int
		overlap bool
		total   int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Invoke(func() {
				active++
				if active > 1 {
					overlap = true
				}
				total++
				active--
			})
		}()
	}
	wg.Wait()

	if err := d.Invoke(func() {}); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if overlap || total != 50 {
		t.Fatalf("expected 50 serialized calls, got total=%d overlap=%v", total, overlap)
	}
}

// TestInvoke_NotStarted verifies Invoke fails before Start.
func TestInvoke_NotStarted(t *testing.T) {
	d := New()
	if err := d.Invoke(func() {}); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

// TestInvoke_AfterStop verifies Invoke fails once stopped.
func TestInvoke_AfterStop(t *testing.T) {
	d := New()
	d.Start()
	d.Stop()
	d.Stop()
	if err := d.Invoke(func() {}); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
