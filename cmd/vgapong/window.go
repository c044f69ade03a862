package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vga-pong/internal/machine"
	"github.com/vovakirdan/vga-pong/internal/platform/window"
	"github.com/vovakirdan/vga-pong/internal/storage"
)

var (
	flagWindowScale int
	flagOverlay     bool
	flagStatsview   string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the simulator in a desktop window",
	Long: `Run the design on its own goroutine and show the picture rebuilt from
its sync and color outputs at full 640x480 resolution.

Controls:
  W/Up, S/Down  - Paddle, held for as long as the key is down
  R             - Reset while held
  P/Space       - Freeze or release the host clock
  .             - Run one batch while frozen
  +/-           - Faster or slower
  Tab           - Toggle the status overlay
  Esc/Q         - Quit

A gamepad works too: left stick or shoulder buttons move, start resets.

Examples:
  vgapong window
  vgapong window --scale 2
  vgapong window --statsview localhost:12600`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowScale, "scale", 0, "Window scale factor (default from config)")
	windowCmd.Flags().BoolVar(&flagOverlay, "overlay", true, "Show the status overlay")
	windowCmd.Flags().StringVar(&flagStatsview, "statsview", "", "Serve runtime charts on this address, e.g. localhost:12600")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagWindowScale > 0 {
		cfg.Display.Scale = flagWindowScale
	}
	logger := newLogger(cfg, "vgapong")

	if flagStatsview != "" {
		viewer.SetConfiguration(viewer.WithAddr(flagStatsview))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.Info("stats server available", "url", "http://"+flagStatsview+"/debug/statsview")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := newMachine(cfg)
	runner := machine.NewRunner(m, cfg.Runtime(), logger, machine.WithFrames(2))

	store := openStore(cfg, logger)
	started := time.Now()

	err := window.Run(ctx, runner, window.Options{
		Title:   m.Design().Title(),
		Scale:   cfg.Display.Scale,
		Overlay: flagOverlay,
	}, logger)

	st := runner.Status()
	logger.Info("window closed", "system_ticks", st.Stats.SystemTicks, "frames", st.Stats.Frames, "dropped", runner.Dropped())
	saveRun(store, logger, storage.NewRun(runner.DesignID(), "window", st.Stats, time.Since(started)))
	if store != nil {
		store.Close()
	}

	if err != nil {
		fail("%v", err)
	}
}
