package core

import "strings"

// Line is one externally driven level signal, polled once per system tick.
type Line uint8

const (
	LineReset    Line = 1 << iota // Forces the power-on state
	LineMoveUp                    // Left paddle up
	LineMoveDown                  // Left paddle down
	LinePause                     // Reserved; no logic reads it
)

// String returns a human-readable name for the line.
func (l Line) String() string {
	switch l {
	case LineReset:
		return "Reset"
	case LineMoveUp:
		return "Up"
	case LineMoveDown:
		return "Down"
	case LinePause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Inputs is the set of asserted lines for one system tick.
type Inputs uint8

// Set asserts a line.
func (in *Inputs) Set(l Line) {
	*in |= Inputs(l)
}

// Unset deasserts a line.
func (in *Inputs) Unset(l Line) {
	*in &^= Inputs(l)
}

// Has returns true if the line is asserted.
func (in Inputs) Has(l Line) bool {
	return in&Inputs(l) != 0
}

// Clear deasserts every line.
func (in *Inputs) Clear() {
	*in = 0
}

// String lists asserted lines, e.g. "Reset|Up", or "-" when idle.
func (in Inputs) String() string {
	if in == 0 {
		return "-"
	}
	var names []string
	for _, l := range []Line{LineReset, LineMoveUp, LineMoveDown, LinePause} {
		if in.Has(l) {
			names = append(names, l.String())
		}
	}
	return strings.Join(names, "|")
}
