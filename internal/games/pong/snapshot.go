package pong

import (
	"fmt"

	"github.com/vovakirdan/vga-pong/internal/core"
)

// Snapshot is an immutable copy of the design registers, safe to hand to
// another goroutine.
type Snapshot struct {
	State
}

// IsSnapshot implements the core.Snapshot marker.
func (Snapshot) IsSnapshot() {}

// Ensure Snapshot implements core.Snapshot
var _ core.Snapshot = Snapshot{}

// Snapshot returns the current registers as a Snapshot.
func (g *Game) Snapshot() core.Snapshot {
	return Snapshot{State: g.state}
}

// Render draws the snapshot into dst.
func (s Snapshot) Render(dst *core.Screen) {
	RenderState(dst, s.State)
}

// String summarises the registers on one line.
func (s Snapshot) String() string {
	return fmt.Sprintf("L:%3d R:%3d ball:(%3d,%3d) dir:(%d,%d) color:%#02x",
		s.Left.Y, s.Right.Y, s.Ball.X, s.Ball.Y, s.Ball.DirX, s.Ball.DirY, uint8(s.Ball.Color))
}
