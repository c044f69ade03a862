// Package config provides YAML-based configuration loading and speed
// presets for the simulator host. Nothing here changes the simulated timing
// or game constants; those are fixed in the design.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

// ErrInvalid is returned by Validate for values the host cannot use.
var ErrInvalid = errors.New("config: invalid value")

// Config is the whole host configuration.
type Config struct {
	Clock   ClockConfig   `yaml:"clock"`
	Display DisplayConfig `yaml:"display"`
	Capture CaptureConfig `yaml:"capture"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// ClockConfig selects the pixel divider variant.
type ClockConfig struct {
	Divider string `yaml:"divider"` // "standard" or "legacy"
}

// Divider variants.
const (
	DividerStandard = "standard"
	DividerLegacy   = "legacy"
)

// DisplayConfig controls the live viewers.
type DisplayConfig struct {
	TickRate      int    `yaml:"tick_rate"`       // Host frames per second
	Speed         string `yaml:"speed"`           // Preset name, see speed.go
	TicksPerFrame int    `yaml:"ticks_per_frame"` // Overrides Speed when > 0
	Scale         int    `yaml:"scale"`           // Window scale factor
}

// CaptureConfig controls PNG capture.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Frames int    `yaml:"frames"`
	Scale  int    `yaml:"scale"`
}

// LogConfig sets the logger level.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig locates the run database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate reports the first unusable value, wrapping ErrInvalid.
func (c Config) Validate() error {
	switch c.Clock.Divider {
	case DividerStandard, DividerLegacy:
	default:
		return fmt.Errorf("%w: clock.divider %q (want %s or %s)", ErrInvalid, c.Clock.Divider, DividerStandard, DividerLegacy)
	}
	if c.Display.TickRate <= 0 || c.Display.TickRate > core.MaxTickRate {
		return fmt.Errorf("%w: display.tick_rate must be in 1..%d, got %d", ErrInvalid, core.MaxTickRate, c.Display.TickRate)
	}
	if c.Display.TicksPerFrame <= 0 && !IsSpeedPreset(SpeedPreset(c.Display.Speed)) {
		return fmt.Errorf("%w: display.speed %q (want one of %s)", ErrInvalid, c.Display.Speed, strings.Join(SpeedNames(), ", "))
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("%w: display.scale must be positive, got %d", ErrInvalid, c.Display.Scale)
	}
	if c.Capture.Scale <= 0 {
		return fmt.Errorf("%w: capture.scale must be positive, got %d", ErrInvalid, c.Capture.Scale)
	}
	if c.Capture.Frames < 0 {
		return fmt.Errorf("%w: capture.frames must not be negative, got %d", ErrInvalid, c.Capture.Frames)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}

// NewDivider builds the divider the clock section asks for.
func (c Config) NewDivider() *vga.Divider {
	if c.Clock.Divider == DividerLegacy {
		return vga.NewLegacyDivider()
	}
	return vga.NewDivider(vga.PixelDivide)
}

// TicksPerFrame resolves the batch size from the override or the preset.
func (c Config) TicksPerFrame() int {
	if c.Display.TicksPerFrame > 0 {
		return c.Display.TicksPerFrame
	}
	return TicksForPreset(SpeedPreset(c.Display.Speed))
}

// Runtime returns the host settings handed to viewers and runners.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.Display.TickRate
	rc.TicksPerFrame = c.TicksPerFrame()
	return rc
}

// LogLevel parses the log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
