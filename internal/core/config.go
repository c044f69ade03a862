package core

// RuntimeConfig contains host-side settings passed to viewers and drivers.
// None of these values reach the simulated design; its timing is fixed.
type RuntimeConfig struct {
	ScreenW       int // Terminal width in characters
	ScreenH       int // Terminal height in characters
	TickRate      int // Host frames per second (default 60)
	TicksPerFrame int // System ticks executed per host frame
}

// MaxTickRate is the fastest host frame rate drivers accept.
const MaxTickRate = 1000

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		TicksPerFrame: 8,
	}
}

// Events records which rules fired during one system tick.
// Events are observations only; they never feed back into the design.
type Events uint8

const (
	EventReset Events = 1 << iota
	EventHitLeft
	EventHitRight
	EventWallBounce
	EventRespawn
)

// Has returns true if all bits of e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// StepResult is returned by Design.Step() after each system tick.
type StepResult struct {
	Events Events
}

// Snapshot is an immutable copy of design state that may be handed to other
// goroutines. Viewers draw from snapshots, never from the live design.
type Snapshot interface {
	IsSnapshot()

	// Render draws a downscaled view of the state into dst.
	Render(dst *Screen)

	// String summarises the state on one line.
	String() string
}
