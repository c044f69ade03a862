package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vga-pong/internal/config"
	"github.com/vovakirdan/vga-pong/internal/machine"
	"github.com/vovakirdan/vga-pong/internal/platform/tui"
)

var flagPlaySpeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulator in the terminal",
	Long: `Run the design and show a downscaled view of its picture.

Controls:
  W/Up       - Move the left paddle up
  S/Down     - Move the left paddle down
  R          - Reset
  P/Space    - Freeze or release the host clock
  .          - Run one batch while frozen
  +/-        - Faster or slower
  ?          - More keys
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so a movement line stays asserted
for a few host frames after the last press.

Speed presets (system ticks per host frame):
  step      1
  slow      8
  normal    64
  fast      4096
  realtime  one full video frame

Examples:
  vgapong play
  vgapong play --speed fast
  vgapong play --config ./legacy.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlaySpeed, "speed", "", "Speed preset: step, slow, normal, fast, realtime")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagPlaySpeed != "" {
		if !config.IsSpeedPreset(config.SpeedPreset(flagPlaySpeed)) {
			fail("unknown speed %q", flagPlaySpeed)
		}
		cfg.Display.Speed = flagPlaySpeed
		cfg.Display.TicksPerFrame = 0
	}
	logger := newLogger(cfg, "vgapong")

	rc := cfg.Runtime()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	runner := machine.NewRunner(newMachine(cfg), rc, logger)

	store := openStore(cfg, logger)
	runErr := tui.Run(runner, store, rc, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running simulator: %v", runErr)
	}
}
