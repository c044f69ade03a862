// Package capture runs a machine headless and writes the pictures its
// video output produces to PNG files.
package capture

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/machine"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

// Options controls a capture.
type Options struct {
	Dir    string      // Output directory, created if missing
	Prefix string      // File name prefix, usually the design ID
	Frames int         // Pictures to write
	Scale  int         // Integer upscale factor
	Inputs core.Inputs // Lines held for the whole capture
}

// Result describes a finished capture.
type Result struct {
	Files []string
	Stats machine.Stats
}

// checkEvery is how many system ticks run between context checks.
const checkEvery = vga.PixelDivide * vga.HTotal

// Run clocks m until opts.Frames pictures have been written or ctx is done.
// The first picture starts at the first vsync edge the monitor sees.
func Run(ctx context.Context, m *machine.Machine, opts Options) (Result, error) {
	if opts.Frames < 1 {
		return Result{}, fmt.Errorf("capture: frames must be positive, got %d", opts.Frames)
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("capture: cannot create directory %s: %w", opts.Dir, err)
	}

	var res Result
	var writeErr error
	mon := machine.NewMonitor(func(img *image.NRGBA) {
		if writeErr != nil {
			return
		}
		path := filepath.Join(opts.Dir, fmt.Sprintf("%s_%03d.png", opts.Prefix, len(res.Files)))
		if err := WritePNG(path, Scale(img, opts.Scale)); err != nil {
			writeErr = err
			return
		}
		res.Files = append(res.Files, path)
	})

	for len(res.Files) < opts.Frames && writeErr == nil {
		if err := ctx.Err(); err != nil {
			res.Stats = m.Stats()
			return res, err
		}
		m.Run(checkEvery, opts.Inputs, mon.Sample)
	}

	res.Stats = m.Stats()
	return res, writeErr
}

// Scale returns img enlarged by an integer factor with nearest-neighbour
// sampling, so every simulated pixel stays a sharp square.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: cannot create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("capture: cannot encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("capture: cannot write %s: %w", path, err)
	}
	return nil
}
