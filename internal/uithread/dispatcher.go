// Package uithread runs closures on a single OS-locked goroutine.
package uithread

import (
	"errors"
	"runtime"
	"sync"
)

// ErrStopped is returned by Invoke once the dispatcher has stopped.
var ErrStopped = errors.New("dispatcher stopped")

// Dispatcher owns one goroutine pinned to its OS thread. Window geometry
// queries that must run on the UI thread are marshalled through Invoke.
type Dispatcher struct {
	mu      sync.Mutex
	queue   chan call
	done    chan struct{}
	started bool
	stopped bool
}

type call struct {
	fn   func()
	done chan struct{}
}

// New returns a dispatcher that is not yet running.
func New() *Dispatcher {
	return &Dispatcher{
		queue: make(chan call),
		done:  make(chan struct{}),
	}
}

// Start launches the UI goroutine. Calling Start twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	go d.loop()
}

// loop runs queued calls until Stop closes done.
func (d *Dispatcher) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case c := <-d.queue:
			c.fn()
			close(c.done)
		case <-d.done:
			return
		}
	}
}

// Invoke runs fn on the UI goroutine and waits for it to return.
func (d *Dispatcher) Invoke(fn func()) error {
	d.mu.Lock()
	running := d.started && !d.stopped
	d.mu.Unlock()
	if !running {
		return ErrStopped
	}

	c := call{fn: fn, done: make(chan struct{})}
	select {
	case d.queue <- c:
	case <-d.done:
		return ErrStopped
	}
	<-c.done
	return nil
}

// Stop ends the UI goroutine. Calls already accepted finish first.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	close(d.done)
}
