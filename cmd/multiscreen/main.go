// Package main runs the MultiScreen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/frudas24/multiscreen/internal/config"
	"github.com/frudas24/multiscreen/internal/monitor"
	"github.com/spf13/cobra"
)

var debugMode bool

var rootCmd = &cobra.Command{
	Use:   "multiscreen",
	Short: "Multi-monitor layout inspector and window placement helper",
	Long: `MultiScreen enumerates the monitors of the desktop, resolves which screen
a window is on and keeps window positions within valid screen bounds.

Run "multiscreen serve" for the browser demo.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		monitor.SetDebugLogging(debugMode)
	},
}

// main is the entrypoint for the MultiScreen CLI.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Log diagnostics for unresolved window placements")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(clampCmd)
}

// openRegistry loads config and returns an initialized registry.
func openRegistry() (config.Config, *monitor.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if cfg.Debug {
		monitor.SetDebugLogging(true)
	}
	platform, err := monitor.Open(cfg.Platform, cfg.StaticLayout)
	if err != nil {
		return config.Config{}, nil, err
	}
	reg := monitor.NewRegistry(platform)
	if err := reg.Init(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, reg, nil
}
