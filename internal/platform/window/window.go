// Package window shows a running machine in a desktop window at the full
// 640x480 raster resolution. The machine runs on its own goroutine; the
// window only reads finished pictures and the published status.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/vga-pong/internal/machine"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

// Options configures the window.
type Options struct {
	Title   string
	Scale   int  // Window size multiplier
	Overlay bool // Show the status overlay at start
}

// viewer implements ebiten.Game.
type viewer struct {
	runner  *machine.Runner
	logger  *log.Logger
	screen  *ebiten.Image
	overlay bool
	pads    []ebiten.GamepadID
	quit    atomic.Bool
}

// Run opens the window and drives runner until the window is closed or ctx
// is done. runner must have been created with machine.WithFrames.
func Run(ctx context.Context, runner *machine.Runner, opts Options, logger *log.Logger) error {
	if runner.Frames() == nil {
		return errors.New("window: runner does not produce frames")
	}
	if logger == nil {
		logger = log.Default()
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(vga.HActivePixels*opts.Scale, vga.VActiveLines*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	v := &viewer{
		runner:  runner,
		logger:  logger,
		screen:  ebiten.NewImage(vga.HActivePixels, vga.VActiveLines),
		overlay: opts.Overlay,
	}

	// Closing the window ends RunGame; a cancelled ctx ends Update.
	go func() {
		<-ctx.Done()
		v.quit.Store(true)
	}()

	err := ebiten.RunGame(v)
	cancel()
	if runErr := <-done; runErr != nil && err == nil {
		err = runErr
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update polls input and uploads the newest finished picture.
func (v *viewer) Update() error {
	if v.quit.Load() {
		return ebiten.Termination
	}

	if err := v.input(); err != nil {
		return ebiten.Termination
	}

	// Keep only the newest picture; older ones are already stale.
	var latest *image.NRGBA
	for drained := false; !drained; {
		select {
		case img := <-v.runner.Frames():
			latest = img
		default:
			drained = true
		}
	}
	if latest != nil {
		v.screen.WritePixels(latest.Pix)
	}
	return nil
}

// Draw copies the picture to the window and adds the overlay.
func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.screen, nil)

	if v.overlay {
		st := v.runner.Status()
		msg := fmt.Sprintf("%s\n%s\nx%d  in:%s  tps:%.0f fps:%.0f",
			st.Summary(), st.Design, v.runner.TicksPerFrame(), v.runner.Inputs(),
			ebiten.ActualTPS(), ebiten.ActualFPS())
		if v.runner.Paused() {
			msg += "  FROZEN"
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout fixes the logical screen to the active region.
func (v *viewer) Layout(int, int) (int, int) {
	return vga.HActivePixels, vga.VActiveLines
}
