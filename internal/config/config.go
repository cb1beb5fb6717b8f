// Package config loads environment configuration for MultiScreen.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr   = "127.0.0.1:8788"
	defaultDataDir      = "./data"
	defaultPlatform     = "auto"
	defaultStaticLayout = "0,0,1920,1080;1920,0,1920,1080"
	defaultMargin       = 10
	defaultDemoScale    = 1.0
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr    string
	DataDir       string
	PlacementPath string
	Platform      string
	StaticLayout  string
	MarginX       float64
	MarginY       float64
	DemoScale     float64
	Debug         bool
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:    defaultListenAddr,
		DataDir:       defaultDataDir,
		PlacementPath: filepath.Join(defaultDataDir, "placement.yaml"),
		Platform:      defaultPlatform,
		StaticLayout:  defaultStaticLayout,
		MarginX:       defaultMargin,
		MarginY:       defaultMargin,
		DemoScale:     defaultDemoScale,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.PlacementPath = envString("PLACEMENT_PATH", filepath.Join(cfg.DataDir, "placement.yaml"))
	cfg.StaticLayout = envString("STATIC_LAYOUT", cfg.StaticLayout)
	cfg.Debug = envBool("DEBUG", cfg.Debug)

	platform, err := normalizePlatform(envString("PLATFORM", cfg.Platform))
	if err != nil {
		return Config{}, err
	}
	cfg.Platform = platform

	marginX, err := envFloat("MARGIN_X", cfg.MarginX)
	if err != nil {
		return Config{}, err
	}
	if marginX < 0 {
		return Config{}, fmt.Errorf("MARGIN_X must be >= 0")
	}
	cfg.MarginX = marginX

	marginY, err := envFloat("MARGIN_Y", cfg.MarginY)
	if err != nil {
		return Config{}, err
	}
	if marginY < 0 {
		return Config{}, fmt.Errorf("MARGIN_Y must be >= 0")
	}
	cfg.MarginY = marginY

	scale, err := envFloat("DEMO_SCALE", cfg.DemoScale)
	if err != nil {
		return Config{}, err
	}
	if scale <= 0 {
		return Config{}, errors.New("DEMO_SCALE must be > 0")
	}
	cfg.DemoScale = scale

	return cfg, nil
}

// normalizePlatform validates the monitor platform kind.
func normalizePlatform(value string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "auto", "win32", "x11", "static":
		return v, nil
	default:
		return "", fmt.Errorf("PLATFORM must be auto, win32, x11 or static, got %q", value)
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
