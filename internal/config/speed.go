package config

import "github.com/vovakirdan/vga-pong/internal/vga"

// SpeedPreset names how many system ticks the host runs per displayed frame.
type SpeedPreset string

const (
	SpeedStep     SpeedPreset = "step"
	SpeedSlow     SpeedPreset = "slow"
	SpeedNormal   SpeedPreset = "normal"
	SpeedFast     SpeedPreset = "fast"
	SpeedRealtime SpeedPreset = "realtime"
)

// speedOrder lists presets from slowest to fastest.
var speedOrder = []SpeedPreset{SpeedStep, SpeedSlow, SpeedNormal, SpeedFast, SpeedRealtime}

// TicksForPreset returns the batch size for a preset. Unknown names get the
// normal rate.
func TicksForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedStep:
		return 1
	case SpeedSlow:
		return 8
	case SpeedFast:
		return 4096
	case SpeedRealtime:
		// One full raster per frame at 60 frames per second.
		return vga.FrameSystemTicks
	default:
		return 64
	}
}

// IsSpeedPreset reports whether name is a known preset.
func IsSpeedPreset(name SpeedPreset) bool {
	for _, p := range speedOrder {
		if p == name {
			return true
		}
	}
	return false
}

// SpeedNames returns the preset names from slowest to fastest.
func SpeedNames() []string {
	names := make([]string, len(speedOrder))
	for i, p := range speedOrder {
		names[i] = string(p)
	}
	return names
}

// NextSpeed returns the batch size one step faster (delta > 0) or slower
// (delta < 0) than ticks, doubling or halving within [1, FrameSystemTicks].
func NextSpeed(ticks, delta int) int {
	switch {
	case delta > 0:
		ticks *= 2
	case delta < 0:
		ticks /= 2
	}
	return min(max(ticks, 1), vga.FrameSystemTicks)
}
