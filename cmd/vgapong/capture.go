package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vga-pong/internal/capture"
	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/storage"
)

var (
	flagFrames       int
	flagOutDir       string
	flagCaptureScale int
	flagHold         string
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Write video frames to PNG files",
	Long: `Run the design headless and write the pictures its video output produces.
Each picture is rebuilt from the sync and color pins, one per vertical sync.

Examples:
  vgapong capture
  vgapong capture --frames 5 --out ./frames --scale 2
  vgapong capture --hold up`,
	Run: runCapture,
}

func init() {
	captureCmd.Flags().IntVar(&flagFrames, "frames", 0, "Number of frames (default from config)")
	captureCmd.Flags().StringVar(&flagOutDir, "out", "", "Output directory (default from config)")
	captureCmd.Flags().IntVar(&flagCaptureScale, "scale", 0, "Integer upscale factor (default from config)")
	captureCmd.Flags().StringVar(&flagHold, "hold", "none", "Input held during the capture: up, down, none")
}

// holdInputs parses the --hold flag.
func holdInputs(hold string) (core.Inputs, bool) {
	var in core.Inputs
	switch hold {
	case "none", "":
	case "up":
		in.Set(core.LineMoveUp)
	case "down":
		in.Set(core.LineMoveDown)
	default:
		return 0, false
	}
	return in, true
}

func runCapture(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagFrames > 0 {
		cfg.Capture.Frames = flagFrames
	}
	if flagOutDir != "" {
		cfg.Capture.Dir = flagOutDir
	}
	if flagCaptureScale > 0 {
		cfg.Capture.Scale = flagCaptureScale
	}
	in, ok := holdInputs(flagHold)
	if !ok {
		fail("unknown --hold value %q (want up, down or none)", flagHold)
	}
	logger := newLogger(cfg, "vgapong")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := newMachine(cfg)
	started := time.Now()
	res, err := capture.Run(ctx, m, capture.Options{
		Dir:    cfg.Capture.Dir,
		Prefix: m.Design().ID(),
		Frames: cfg.Capture.Frames,
		Scale:  cfg.Capture.Scale,
		Inputs: in,
	})
	elapsed := time.Since(started)

	for _, f := range res.Files {
		logger.Info("wrote frame", "file", f)
	}
	logger.Info("capture finished",
		"frames", len(res.Files),
		"system_ticks", res.Stats.SystemTicks,
		"left_hits", res.Stats.LeftHits,
		"right_hits", res.Stats.RightHits,
		"wall_bounces", res.Stats.WallBounces,
		"respawns", res.Stats.Respawns,
		"elapsed", elapsed.Round(time.Millisecond),
	)

	store := openStore(cfg, logger)
	saveRun(store, logger, storage.NewRun(m.Design().ID(), "capture", res.Stats, elapsed))
	if store != nil {
		store.Close()
	}

	if err != nil {
		fail("%v", err)
	}
}
