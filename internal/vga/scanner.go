package vga

import "fmt"

// Position is a raster coordinate: H in [0, HTotal), V in [0, VTotal).
type Position struct {
	H, V int
}

// String returns the position as "v/h".
func (p Position) String() string {
	return fmt.Sprintf("%03d/%03d", p.V, p.H)
}

// Scanner holds the horizontal and vertical counters. The counters free-run;
// nothing but wraparound ever resets them.
type Scanner struct {
	pos Position
}

// NewScanner returns a scanner at (0, 0).
func NewScanner() *Scanner {
	return &Scanner{}
}

// Position returns the coordinate currently being scanned.
func (s *Scanner) Position() Position {
	return s.pos
}

// Advance moves the raster on by one pixel tick. It returns true when the
// raster wrapped back to (0, 0).
func (s *Scanner) Advance() bool {
	if s.pos.H < HTotal-1 {
		s.pos.H++
		return false
	}
	s.pos.H = 0
	if s.pos.V < VTotal-1 {
		s.pos.V++
		return false
	}
	s.pos.V = 0
	return true
}

// HSyncActive reports whether the horizontal sync pulse is being driven.
func (s *Scanner) HSyncActive() bool {
	return s.pos.H < HSyncPulse
}

// VSyncActive reports whether the vertical sync pulse is being driven.
func (s *Scanner) VSyncActive() bool {
	return s.pos.V < VSyncPulse
}

// HSync returns the active-low horizontal sync level.
func (s *Scanner) HSync() uint8 {
	return level(s.HSyncActive())
}

// VSync returns the active-low vertical sync level.
func (s *Scanner) VSync() uint8 {
	return level(s.VSyncActive())
}

// Active reports whether the current coordinate is in the drawable region.
func (s *Scanner) Active() bool {
	return IsActive(s.pos.H, s.pos.V)
}

// IsActive reports whether (h, v) lies in the drawable region.
func IsActive(h, v int) bool {
	return h < HActivePixels && v < VActiveLines
}

// level converts an active flag into an active-low output level.
func level(active bool) uint8 {
	if active {
		return 0
	}
	return 1
}
