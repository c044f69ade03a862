// vgapong is a cycle-accurate simulator of a VGA pong circuit. It clocks the
// design tick by tick and shows its video output in the terminal, in a
// window, as PNG captures, or over SSH.
//
// Usage:
//
//	vgapong list              - List available designs
//	vgapong play              - Run in the terminal
//	vgapong window            - Run in a desktop window at full resolution
//	vgapong capture           - Write video frames to PNG files
//	vgapong trace <ticks>     - Print the first system ticks
//	vgapong serve             - Start SSH server for remote viewing
//	vgapong runs              - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Configuration file
//	--design <id>       - Design to run (default: pong)
//	--log-level <lvl>   - debug, info, warn, error
//	--db <path>         - Run database (default: ~/.vgapong/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import designs to register them
	_ "github.com/vovakirdan/vga-pong/internal/games/pong"
)

var (
	// Global flags
	flagConfig   string
	flagDesign   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vgapong",
	Short: "VGA Pong - a clocked pong circuit simulated tick by tick",
	Long: `VGA Pong simulates a synchronous pong circuit that drives a 640x480 VGA
signal. Every system tick updates the game registers; every fourth tick
advances the raster and samples the color pins.

Available commands:
  list     - Show registered designs and the video timing
  play     - Terminal viewer
  window   - Desktop window fed by the reconstructed video signal
  capture  - Headless run that writes PNG frames
  trace    - Print the first system ticks
  serve    - SSH server, one machine per session
  runs     - Recorded runs

Examples:
  vgapong play
  vgapong window --scale 2
  vgapong capture --frames 3 --out ./frames
  vgapong trace 40
  vgapong serve`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDesign, "design", "pong", "Design to run")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
