package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/multiscreen/internal/app"
	"github.com/frudas24/multiscreen/internal/config"
	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/frudas24/multiscreen/internal/monitor"
	"github.com/frudas24/multiscreen/internal/session"
	"github.com/frudas24/multiscreen/internal/uithread"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser demo",
	Long:  `Serve the screen list and a simulated window over HTTP and websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// run wires the application and blocks until shutdown.
func run() error {
	cfg, reg, err := openRegistry()
	if err != nil {
		return err
	}
	logStartup(cfg, reg)

	window := session.New(geom.Rect{X: 100, Y: 100, Width: 800, Height: 600}, cfg.DemoScale)
	appInstance, err := app.New(cfg, reg, uithread.New(), window)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config, reg *monitor.Registry) {
	log.Printf("MultiScreen starting")
	logEnvStatus(cfg)
	log.Printf("platform: %s", cfg.Platform)
	for _, m := range reg.Monitors(nil) {
		log.Printf("screen %s: %v,%v %vx%v primary=%v", m.Name, m.Bounds.X, m.Bounds.Y, m.Bounds.Width, m.Bounds.Height, m.Primary)
	}
	maxX, maxY := reg.Extent()
	log.Printf("desktop extent: %vx%v", maxX, maxY)
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	log.Printf("placement file: %s", cfg.PlacementPath)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
