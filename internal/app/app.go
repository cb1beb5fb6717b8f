// Package app wires the registry, demo window and HTTP surface together.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/frudas24/multiscreen/internal/config"
	"github.com/frudas24/multiscreen/internal/monitor"
	"github.com/frudas24/multiscreen/internal/placement"
	"github.com/frudas24/multiscreen/internal/session"
	"github.com/frudas24/multiscreen/internal/uithread"
	"github.com/frudas24/multiscreen/internal/view"
)

// App coordinates the screen registry, the UI thread and the demo window.
type App struct {
	cfg      config.Config
	registry *monitor.Registry
	ui       *uithread.Dispatcher
	window   *session.Window
	view     *view.Model
	feed     *Feed

	// refreshMu keeps resolve and view update of one refresh together.
	refreshMu sync.Mutex
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, registry *monitor.Registry, ui *uithread.Dispatcher, window *session.Window) (*App, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}
	if ui == nil {
		return nil, errors.New("ui dispatcher is required")
	}
	if window == nil {
		return nil, errors.New("window is required")
	}

	a := &App{
		cfg:      cfg,
		registry: registry,
		ui:       ui,
		window:   window,
		view:     view.NewModel(),
	}
	a.feed = NewFeed(a.view)
	return a, nil
}

// Start enumerates monitors, shows the demo window at its saved position and
// builds the initial screen list.
func (a *App) Start() error {
	if err := a.registry.Init(); err != nil {
		return err
	}
	a.ui.Start()
	a.window.SetShown(true)

	saved, ok, err := placement.Load(a.cfg.PlacementPath)
	if err != nil {
		log.Printf("placement: load failed: %v", err)
	}
	if ok {
		if _, err := a.RestorePlacement(saved); err != nil {
			return err
		}
	}

	_, _, err = a.Refresh()
	return err
}

// Stop saves the demo window placement and stops the UI thread.
func (a *App) Stop() error {
	defer a.ui.Stop()
	p, err := a.CapturePlacement()
	if err != nil {
		return err
	}
	return placement.Save(a.cfg.PlacementPath, p)
}

// Refresh resolves the demo window on the UI thread and updates the screen
// list. It returns the resolved screen, or false when the window is hidden.
func (a *App) Refresh() (monitor.MonitorInfo, bool, error) {
	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	info, ok, err := a.registry.InfoOn(a.ui, a.window)
	if err != nil {
		return monitor.MonitorInfo{}, false, fmt.Errorf("refresh: %w", err)
	}
	list := a.registry.Monitors(nil)
	actual := ""
	if ok {
		actual = info.Name
	}
	a.view.Refresh(list, actual)
	return info, ok, nil
}

// ListMonitors re-resolves the demo window and returns every screen.
func (a *App) ListMonitors() ([]monitor.MonitorInfo, error) {
	var list []monitor.MonitorInfo
	if err := a.ui.Invoke(func() {
		list = a.registry.Monitors(a.window)
	}); err != nil {
		return nil, err
	}
	return list, nil
}

// RestorePlacement moves the demo window to a saved placement on the UI thread.
func (a *App) RestorePlacement(saved placement.Placement) (placement.Placement, error) {
	if saved.Width > 0 && saved.Height > 0 {
		r := a.window.Placement()
		r.Width = saved.Width
		r.Height = saved.Height
		a.window.Move(r)
	}
	margins := placement.Margins{X: a.cfg.MarginX, Y: a.cfg.MarginY}
	var out placement.Placement
	err := a.ui.Invoke(func() {
		placement.Restore(a.registry, a.window, saved, margins)
		out = placement.Capture(a.registry, a.window)
	})
	if err != nil {
		return placement.Placement{}, err
	}
	return out, nil
}

// CapturePlacement records the demo window placement on the UI thread.
func (a *App) CapturePlacement() (placement.Placement, error) {
	var p placement.Placement
	if err := a.ui.Invoke(func() {
		p = placement.Capture(a.registry, a.window)
	}); err != nil {
		return placement.Placement{}, err
	}
	return p, nil
}

// View returns the observable screen list.
func (a *App) View() *view.Model {
	return a.view
}

// Feed returns the screens websocket handler.
func (a *App) Feed() *Feed {
	return a.feed
}
