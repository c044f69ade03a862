// Package pong implements the two-paddle ball design as a synchronous state
// machine evaluated once per system tick, plus the pixel resolver that turns
// the live object positions into a color for any raster coordinate.
//
// Only the left paddle is wired to input. The right paddle holds its reset
// position for as long as the design runs.
package pong

import (
	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/registry"
)

// Field and object geometry in pixels.
const (
	FieldWidth  = 640
	FieldHeight = 480

	PaddleHeight    = 80
	PaddleWidth     = 10
	BallSize        = 10
	PaddleMoveSpeed = 1
	BallSpeedX      = 1
	BallSpeedY      = 1

	LeftPaddleX  = 50
	RightPaddleX = 580
)

// Derived reset positions.
const (
	PaddleCenterY = (FieldHeight - PaddleHeight) / 2 // 200
	PaddleMaxY    = FieldHeight - PaddleHeight       // 400
	BallCenterX   = (FieldWidth - BallSize) / 2      // 315
	BallCenterY   = (FieldHeight - BallSize) / 2     // 235
)

// Colors driven by the design.
const (
	ColorIdle        = core.ColorYellow
	ColorHitLeft     = core.ColorRed
	ColorHitRight    = core.ColorBlue
	ColorLeftPaddle  = core.ColorRed
	ColorRightPaddle = core.ColorBlue
	ColorBackground  = core.ColorBlack
)

// Direction flag values.
const (
	DirIncreasing uint8 = 0 // right or down
	DirDecreasing uint8 = 1 // left or up
)

// Paddle is a vertical bar with a fixed column.
type Paddle struct {
	X, Y int
}

// Rect returns the paddle's drawn rectangle.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, PaddleWidth, PaddleHeight)
}

// Ball is the moving square and its color indicator.
type Ball struct {
	X, Y       int
	DirX, DirY uint8
	Color      core.Color
}

// Rect returns the ball's drawn square.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, BallSize, BallSize)
}

// State is every register the design holds.
type State struct {
	Left  Paddle
	Right Paddle
	Ball  Ball
}

// ResetState returns the state the reset line forces.
func ResetState() State {
	return State{
		Left:  Paddle{X: LeftPaddleX, Y: PaddleCenterY},
		Right: Paddle{X: RightPaddleX, Y: PaddleCenterY},
		Ball: Ball{
			X:     BallCenterX,
			Y:     BallCenterY,
			DirX:  DirIncreasing,
			DirY:  DirIncreasing,
			Color: ColorIdle,
		},
	}
}

// Next computes the state after one system tick. Every rule reads cur, the
// state as it was before the tick, and writes into next; a later rule
// overwrites an earlier rule's write to the same register.
func Next(cur State, in core.Inputs) (State, core.Events) {
	if in.Has(core.LineReset) {
		return ResetState(), core.EventReset
	}

	next := cur
	var ev core.Events

	// Paddle input. Up wins when both lines are asserted and the paddle
	// can still move up.
	if in.Has(core.LineMoveUp) && cur.Left.Y > 0 {
		next.Left.Y = cur.Left.Y - PaddleMoveSpeed
	} else if in.Has(core.LineMoveDown) && cur.Left.Y < PaddleMaxY {
		next.Left.Y = cur.Left.Y + PaddleMoveSpeed
	}

	// Ball translation
	if cur.Ball.DirX == DirIncreasing {
		next.Ball.X = cur.Ball.X + BallSpeedX
	} else {
		next.Ball.X = cur.Ball.X - BallSpeedX
	}
	if cur.Ball.DirY == DirIncreasing {
		next.Ball.Y = cur.Ball.Y + BallSpeedY
	} else {
		next.Ball.Y = cur.Ball.Y - BallSpeedY
	}

	// Left paddle. No check on the direction of travel, so this fires on
	// every tick the overlap lasts.
	if cur.Ball.X <= cur.Left.X+PaddleWidth &&
		cur.Ball.Y >= cur.Left.Y && cur.Ball.Y <= cur.Left.Y+PaddleHeight {
		next.Ball.DirX = DirIncreasing
		next.Ball.Color = ColorHitLeft
		ev |= core.EventHitLeft
	}

	// Right paddle, same over-trigger.
	if cur.Ball.X+BallSize >= cur.Right.X &&
		cur.Ball.Y >= cur.Right.Y && cur.Ball.Y <= cur.Right.Y+PaddleHeight {
		next.Ball.DirX = DirDecreasing
		next.Ball.Color = ColorHitRight
		ev |= core.EventHitRight
	}

	// Top and bottom walls
	if cur.Ball.Y <= 0 || cur.Ball.Y+BallSize >= FieldHeight {
		next.Ball.DirY = cur.Ball.DirY ^ 1
		ev |= core.EventWallBounce
	}

	// Left and right edges respawn the ball; there is no score. The test
	// reads the pre-tick position, so the ball is drawn on the edge for one
	// tick and respawns on the following one.
	if cur.Ball.X <= 0 || cur.Ball.X+BallSize >= FieldWidth {
		next.Ball = ResetState().Ball
		ev |= core.EventRespawn
	}

	return next, ev
}

// Game wraps State as a registry.Design.
type Game struct {
	state State
}

// New creates a design instance in its power-on state.
func New() *Game {
	return &Game{state: ResetState()}
}

// ID returns the unique identifier for this design.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this design.
func (g *Game) Title() string {
	return "VGA Pong"
}

// Reset returns every register to its power-on value.
func (g *Game) Reset() {
	g.state = ResetState()
}

// Step advances the design by one system tick.
func (g *Game) Step(in core.Inputs) core.StepResult {
	next, ev := Next(g.state, in)
	g.state = next
	return core.StepResult{Events: ev}
}

// State returns a copy of the current registers.
func (g *Game) State() State {
	return g.state
}

// SetState loads registers directly. Used by tests and trace tooling to
// start from an arbitrary position.
func (g *Game) SetState(s State) {
	g.state = s
}

// Pixel resolves the color for (h, v) against the current registers.
func (g *Game) Pixel(h, v int) core.Color {
	return Resolve(h, v, g.state)
}

func init() {
	registry.Register("pong", func() registry.Design {
		return New()
	})
}
