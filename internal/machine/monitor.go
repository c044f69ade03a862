package machine

import (
	"image"

	"github.com/vovakirdan/vga-pong/internal/vga"
)

// Monitor reconstructs pictures from the video pins the way a display does:
// it starts a frame on the falling edge of vsync and a line on the falling
// edge of hsync, and counts pixel samples in between. It never looks at the
// probe position carried in Output.
type Monitor struct {
	// FrameDone receives each finished picture. The monitor does not touch
	// a picture after handing it over.
	FrameDone func(*image.NRGBA)

	picture *image.NRGBA
	x, y    int
	prevH   uint8
	prevV   uint8
	locked  bool
	frames  int
}

// NewMonitor creates a monitor that reports pictures to frameDone.
func NewMonitor(frameDone func(*image.NRGBA)) *Monitor {
	return &Monitor{
		FrameDone: frameDone,
		picture:   newPicture(),
		prevH:     1,
		prevV:     1,
	}
}

func newPicture() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, vga.HActivePixels, vga.VActiveLines))
}

// Sample feeds one pixel-tick sample into the monitor.
func (m *Monitor) Sample(o Output) {
	vFall := m.prevV == 1 && o.VSync == 0
	hFall := m.prevH == 1 && o.HSync == 0
	m.prevH, m.prevV = o.HSync, o.VSync

	switch {
	case vFall:
		if m.locked {
			m.emit()
		}
		m.locked = true
		m.x, m.y = 0, 0
	case hFall:
		m.x = 0
		m.y++
	}

	if m.locked && m.x < vga.HActivePixels && m.y < vga.VActiveLines {
		m.picture.SetNRGBA(m.x, m.y, o.Color.NRGBA())
	}
	m.x++
}

// emit hands the current picture over and starts a fresh one.
func (m *Monitor) emit() {
	m.frames++
	done := m.picture
	m.picture = newPicture()
	if m.FrameDone != nil {
		m.FrameDone(done)
	}
}

// Frames returns the number of pictures emitted so far.
func (m *Monitor) Frames() int {
	return m.frames
}

// Locked reports whether the monitor has seen a vsync edge.
func (m *Monitor) Locked() bool {
	return m.locked
}
