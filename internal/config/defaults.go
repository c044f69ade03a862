package config

import (
	_ "embed"
)

//go:embed defaults/vgapong.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It matches the
// embedded defaults/vgapong.yaml.
func DefaultConfig() Config {
	return Config{
		Clock: ClockConfig{
			Divider: DividerStandard,
		},
		Display: DisplayConfig{
			TickRate:      60,
			Speed:         string(SpeedNormal),
			TicksPerFrame: 0,
			Scale:         1,
		},
		Capture: CaptureConfig{
			Dir:    ".",
			Frames: 1,
			Scale:  1,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.vgapong/runs.db",
		},
		Server: ServerConfig{
			Address:            ":2222",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
