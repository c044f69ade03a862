package pong

import (
	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

// Object identifies what occupies a raster coordinate. Lower values are
// drawn on top.
type Object uint8

const (
	ObjectBall Object = iota
	ObjectLeftPaddle
	ObjectRightPaddle
	ObjectNone
)

// String returns the object name.
func (o Object) String() string {
	switch o {
	case ObjectBall:
		return "ball"
	case ObjectLeftPaddle:
		return "left"
	case ObjectRightPaddle:
		return "right"
	default:
		return "none"
	}
}

// Classify returns the topmost object at (h, v). Coordinates outside the
// active region never hold an object.
func Classify(h, v int, s State) Object {
	switch {
	case !vga.IsActive(h, v):
		return ObjectNone
	case s.Ball.Rect().Contains(h, v):
		return ObjectBall
	case s.Left.Rect().Contains(h, v):
		return ObjectLeftPaddle
	case s.Right.Rect().Contains(h, v):
		return ObjectRightPaddle
	default:
		return ObjectNone
	}
}

// Resolve returns the color driven at (h, v) for state s.
func Resolve(h, v int, s State) core.Color {
	return s.colorOf(Classify(h, v, s))
}

// colorOf maps an object to its current color.
func (s State) colorOf(o Object) core.Color {
	switch o {
	case ObjectBall:
		return s.Ball.Color
	case ObjectLeftPaddle:
		return ColorLeftPaddle
	case ObjectRightPaddle:
		return ColorRightPaddle
	default:
		return ColorBackground
	}
}
