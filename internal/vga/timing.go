// Package vga models the clocking side of the design: the divider that
// derives the pixel tick from the system tick, and the raster scanner that
// walks the 640x480 timing and produces the sync levels.
package vga

import "fmt"

// 640x480@60 timing in pixel ticks (horizontal) and lines (vertical).
// Back porches are whatever remains of the total period.
const (
	HActivePixels = 640
	HFrontPorch   = 16
	HSyncPulse    = 96
	HTotal        = 800

	VActiveLines = 480
	VFrontPorch  = 10
	VSyncPulse   = 2
	VTotal       = 525
)

// PixelDivide is the number of system ticks per pixel tick.
const PixelDivide = 4

// FrameSystemTicks is the number of system ticks in one complete raster.
const FrameSystemTicks = HTotal * VTotal * PixelDivide

// Timing describes one video mode.
type Timing struct {
	ID          string
	HActive     int
	HFrontPorch int
	HSync       int
	HTotal      int
	VActive     int
	VFrontPorch int
	VSync       int
	VTotal      int
}

// VGA640x480 is the only mode the design drives.
var VGA640x480 = Timing{
	ID:          "640x480",
	HActive:     HActivePixels,
	HFrontPorch: HFrontPorch,
	HSync:       HSyncPulse,
	HTotal:      HTotal,
	VActive:     VActiveLines,
	VFrontPorch: VFrontPorch,
	VSync:       VSyncPulse,
	VTotal:      VTotal,
}

// BackPorchH returns the horizontal back porch in pixels.
func (t Timing) BackPorchH() int {
	return t.HTotal - t.HActive - t.HFrontPorch - t.HSync
}

// BackPorchV returns the vertical back porch in lines.
func (t Timing) BackPorchV() int {
	return t.VTotal - t.VActive - t.VFrontPorch - t.VSync
}

// Validate checks that every window fits in its total period.
func (t Timing) Validate() error {
	if t.BackPorchH() < 0 {
		return fmt.Errorf("vga: %s horizontal windows exceed total %d", t.ID, t.HTotal)
	}
	if t.BackPorchV() < 0 {
		return fmt.Errorf("vga: %s vertical windows exceed total %d", t.ID, t.VTotal)
	}
	return nil
}

// String returns a one-line summary of the mode.
func (t Timing) String() string {
	return fmt.Sprintf("%s h:%d+%d+%d+%d=%d v:%d+%d+%d+%d=%d",
		t.ID,
		t.HActive, t.HFrontPorch, t.HSync, t.BackPorchH(), t.HTotal,
		t.VActive, t.VFrontPorch, t.VSync, t.BackPorchV(), t.VTotal)
}
