package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
	"github.com/frudas24/multiscreen/internal/placement"
	"github.com/frudas24/multiscreen/internal/session"
	"github.com/frudas24/multiscreen/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/api/monitors", a.handleMonitors)
	mux.HandleFunc("/api/screen", a.handleScreen)
	mux.HandleFunc("/api/screen/first", a.handleFirstScreen)
	mux.HandleFunc("/api/window", a.handleWindow)
	mux.HandleFunc("/api/clamp", a.handleClamp)
	mux.HandleFunc("/api/placement/save", a.handlePlacementSave)
	mux.HandleFunc("/api/placement/restore", a.handlePlacementRestore)
	mux.Handle("/ws/screens", a.Feed())
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type windowRequest struct {
	Left   *float64 `json:"left"`
	Top    *float64 `json:"top"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
	ScaleX float64  `json:"scaleX"`
	ScaleY float64  `json:"scaleY"`
	Shown  *bool    `json:"shown"`
}

type windowResponse struct {
	Window   session.Snapshot     `json:"window"`
	Resolved bool                 `json:"resolved"`
	Screen   *monitor.MonitorInfo `json:"screen,omitempty"`
}

type clampRequest struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	MarginX *float64 `json:"marginX"`
	MarginY *float64 `json:"marginY"`
	Scope   string   `json:"scope"`
}

type clampResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Within bool    `json:"within"`
}

// handleMonitors returns every screen after re-resolving the demo window.
func (a *App) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	list, err := a.ListMonitors()
	if err != nil {
		http.Error(w, "failed to list monitors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

// handleScreen returns the last resolved screen.
func (a *App) handleScreen(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, a.registry.Last())
}

// handleFirstScreen returns the first enumerated screen.
func (a *App) handleFirstScreen(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, a.registry.First())
}

// handleWindow reports or updates the demo window and its resolved screen.
func (a *App) handleWindow(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var req windowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		a.applyWindow(req)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	info, ok, err := a.Refresh()
	if err != nil {
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	resp := windowResponse{Window: a.window.Snapshot(), Resolved: ok}
	if !ok {
		writeJSONStatus(w, http.StatusConflict, resp)
		return
	}
	resp.Screen = &info
	writeJSON(w, resp)
}

// applyWindow copies the provided fields onto the demo window.
func (a *App) applyWindow(req windowRequest) {
	place := a.window.Placement()
	if req.Left != nil {
		place.X = *req.Left
	}
	if req.Top != nil {
		place.Y = *req.Top
	}
	if req.Width != nil {
		place.Width = *req.Width
	}
	if req.Height != nil {
		place.Height = *req.Height
	}
	a.window.Move(geom.Normalize(place))
	a.window.SetScale(req.ScaleX, req.ScaleY)
	if req.Shown != nil {
		a.window.SetShown(*req.Shown)
	}
}

// handleClamp clamps a point to the last resolved screen or to all screens.
func (a *App) handleClamp(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req clampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	mx, my := a.cfg.MarginX, a.cfg.MarginY
	if req.MarginX != nil {
		mx = *req.MarginX
	}
	if req.MarginY != nil {
		my = *req.MarginY
	}

	p := geom.Point{X: req.X, Y: req.Y}
	var out geom.Point
	switch req.Scope {
	case "", "screen":
		out = a.registry.ClampToScreen(p, mx, my)
	case "all":
		out = a.registry.ClampToAllScreens(p, mx, my)
	default:
		http.Error(w, "scope must be screen or all", http.StatusBadRequest)
		return
	}
	writeJSON(w, clampResponse{X: out.X, Y: out.Y, Within: a.registry.IsWithinScreen(p, mx, my)})
}

// handlePlacementSave persists the demo window placement.
func (a *App) handlePlacementSave(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	p, err := a.CapturePlacement()
	if err != nil {
		http.Error(w, "capture failed", http.StatusInternalServerError)
		return
	}
	if err := placement.Save(a.cfg.PlacementPath, p); err != nil {
		log.Printf("placement: save failed: %v", err)
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, p)
}

// handlePlacementRestore moves the demo window back to the saved placement.
func (a *App) handlePlacementRestore(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	saved, ok, err := placement.Load(a.cfg.PlacementPath)
	if err != nil {
		http.Error(w, "load failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no saved placement", http.StatusNotFound)
		return
	}
	p, err := a.RestorePlacement(saved)
	if err != nil {
		http.Error(w, "restore failed", http.StatusInternalServerError)
		return
	}
	if _, _, err := a.Refresh(); err != nil {
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, p)
}

// requireMethod returns false and writes an error for other methods.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// writeJSON encodes v as a 200 response body.
func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

// writeJSONStatus encodes v with the given status code.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
