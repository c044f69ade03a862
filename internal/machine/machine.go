// Package machine composes a design with the tick divider and the raster
// scanner into one clocked system, and provides the host-side pieces that
// watch it: a Monitor that turns the video output into pictures and a Runner
// that drives the machine from its own goroutine.
package machine

import (
	"fmt"

	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/registry"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

// Output is one sample of the video pins, taken on a pixel tick.
type Output struct {
	Pos   vga.Position // Probe only: the coordinate that was scanned
	HSync uint8        // Active-low horizontal sync level
	VSync uint8        // Active-low vertical sync level
	Color core.Color   // Packed 3-3-2 color
	R     uint8        // 3-bit red group
	G     uint8        // 3-bit green group
	B     uint8        // 2-bit blue group
}

// String returns the sample as "v/h hs vs color".
func (o Output) String() string {
	return fmt.Sprintf("%s hs=%d vs=%d rgb=%d/%d/%d", o.Pos, o.HSync, o.VSync, o.R, o.G, o.B)
}

// Stats counts what happened since power-on.
type Stats struct {
	SystemTicks uint64
	PixelTicks  uint64
	Frames      uint64
	LeftHits    uint64
	RightHits   uint64
	WallBounces uint64
	Respawns    uint64
	Resets      uint64
}

// Status is an immutable view of the machine between two system ticks.
type Status struct {
	Raster vga.Position
	Stats  Stats
	Design core.Snapshot
}

// Summary returns the status on one line for status bars and overlays.
func (s Status) Summary() string {
	return fmt.Sprintf("raster %s  ticks %d  frames %d  hits L%d R%d  walls %d  respawns %d",
		s.Raster, s.Stats.SystemTicks, s.Stats.Frames,
		s.Stats.LeftHits, s.Stats.RightHits, s.Stats.WallBounces, s.Stats.Respawns)
}

// Machine is the complete clocked system. It is not safe for concurrent use;
// wrap it in a Runner to drive it from another goroutine.
type Machine struct {
	design  registry.Design
	divider *vga.Divider
	scanner *vga.Scanner
	stats   Stats
}

// New builds a machine around design. A nil divider selects the standard
// divide-by-PixelDivide variant.
func New(design registry.Design, divider *vga.Divider) *Machine {
	if divider == nil {
		divider = vga.NewDivider(vga.PixelDivide)
	}
	return &Machine{
		design:  design,
		divider: divider,
		scanner: vga.NewScanner(),
	}
}

// Tick evaluates one system tick. The design commits its whole update first;
// when the divider produces a pixel tick, the video pins are sampled at the
// current raster position against that committed state and the raster then
// advances. ok is false on ticks without a pixel tick.
func (m *Machine) Tick(in core.Inputs) (out Output, ok bool) {
	res := m.design.Step(in)
	m.stats.SystemTicks++
	m.count(res.Events)

	if !m.divider.Tick() {
		return Output{}, false
	}

	pos := m.scanner.Position()
	c := m.design.Pixel(pos.H, pos.V)
	out = Output{
		Pos:   pos,
		HSync: m.scanner.HSync(),
		VSync: m.scanner.VSync(),
		Color: c,
		R:     c.R(),
		G:     c.G(),
		B:     c.B(),
	}

	m.stats.PixelTicks++
	if m.scanner.Advance() {
		m.stats.Frames++
	}
	return out, true
}

// Run executes n system ticks with the input levels held, passing every
// pixel sample to sink. sink may be nil.
func (m *Machine) Run(n int, in core.Inputs, sink func(Output)) {
	for i := 0; i < n; i++ {
		if out, ok := m.Tick(in); ok && sink != nil {
			sink(out)
		}
	}
}

// count folds one tick's events into the statistics.
func (m *Machine) count(ev core.Events) {
	if ev == 0 {
		return
	}
	if ev.Has(core.EventReset) {
		m.stats.Resets++
	}
	if ev.Has(core.EventHitLeft) {
		m.stats.LeftHits++
	}
	if ev.Has(core.EventHitRight) {
		m.stats.RightHits++
	}
	if ev.Has(core.EventWallBounce) {
		m.stats.WallBounces++
	}
	if ev.Has(core.EventRespawn) {
		m.stats.Respawns++
	}
}

// Design returns the design being clocked.
func (m *Machine) Design() registry.Design {
	return m.design
}

// DividerPeriod returns the system ticks per pixel tick.
func (m *Machine) DividerPeriod() int {
	return m.divider.Period()
}

// Raster returns the coordinate the scanner will sample next.
func (m *Machine) Raster() vga.Position {
	return m.scanner.Position()
}

// Stats returns the counters since power-on.
func (m *Machine) Stats() Stats {
	return m.stats
}

// Status returns a consistent copy of the machine state.
func (m *Machine) Status() Status {
	return Status{
		Raster: m.scanner.Position(),
		Stats:  m.stats,
		Design: m.design.Snapshot(),
	}
}
