package pong

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/vovakirdan/vga-pong/internal/core"
)

func inputs(lines ...core.Line) core.Inputs {
	var in core.Inputs
	for _, l := range lines {
		in.Set(l)
	}
	return in
}

func TestResetState(t *testing.T) {
	s := ResetState()

	if s.Left.Y != 200 || s.Right.Y != 200 {
		t.Errorf("paddle Y = (%d, %d), expected (200, 200)", s.Left.Y, s.Right.Y)
	}
	if s.Left.X != 50 || s.Right.X != 580 {
		t.Errorf("paddle X = (%d, %d), expected (50, 580)", s.Left.X, s.Right.X)
	}
	if s.Ball.X != 315 || s.Ball.Y != 235 {
		t.Errorf("ball = (%d, %d), expected (315, 235)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.DirX != 0 || s.Ball.DirY != 0 {
		t.Errorf("ball dir = (%d, %d), expected (0, 0)", s.Ball.DirX, s.Ball.DirY)
	}
	if s.Ball.Color != ColorIdle {
		t.Errorf("ball color = %#02x, expected idle", uint8(s.Ball.Color))
	}
}

func TestResetOverridesEverything(t *testing.T) {
	messy := State{
		Left:  Paddle{X: LeftPaddleX, Y: 0},
		Right: Paddle{X: RightPaddleX, Y: 200},
		Ball:  Ball{X: 3, Y: 471, DirX: 1, DirY: 1, Color: ColorHitRight},
	}

	for _, in := range []core.Inputs{
		inputs(core.LineReset),
		inputs(core.LineReset, core.LineMoveUp),
		inputs(core.LineReset, core.LineMoveDown, core.LinePause),
		inputs(core.LineReset, core.LineMoveUp, core.LineMoveDown, core.LinePause),
	} {
		next, ev := Next(messy, in)
		if diff := deep.Equal(next, ResetState()); diff != nil {
			t.Errorf("inputs %v: %v", in, diff)
		}
		if ev != core.EventReset {
			t.Errorf("inputs %v: events = %b, expected only reset", in, ev)
		}
	}
}

func TestFiftyIdleTicks(t *testing.T) {
	g := New()
	for i := 0; i < 50; i++ {
		res := g.Step(0)
		if res.Events != 0 {
			t.Fatalf("tick %d: unexpected events %b", i, res.Events)
		}
	}

	s := g.State()
	if s.Ball.X != 365 || s.Ball.Y != 285 {
		t.Errorf("ball = (%d, %d), expected (365, 285)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.DirX != 0 || s.Ball.DirY != 0 {
		t.Errorf("ball dir = (%d, %d), expected unchanged", s.Ball.DirX, s.Ball.DirY)
	}
	if s.Ball.Color != ColorIdle {
		t.Errorf("ball color = %#02x, expected idle", uint8(s.Ball.Color))
	}
	if s.Left.Y != 200 || s.Right.Y != 200 {
		t.Errorf("paddles moved without input: (%d, %d)", s.Left.Y, s.Right.Y)
	}
}

func TestResetThenMoveUp(t *testing.T) {
	g := New()
	g.SetState(State{Left: Paddle{X: LeftPaddleX, Y: 37}, Right: Paddle{X: RightPaddleX, Y: 200}, Ball: ResetState().Ball})

	g.Step(inputs(core.LineReset))
	if g.State().Left.Y != 200 {
		t.Fatalf("after reset paddle Y = %d, expected 200", g.State().Left.Y)
	}

	up := inputs(core.LineMoveUp)
	for i := 1; i <= 250; i++ {
		g.Step(up)
		expected := max(200-i, 0)
		if got := g.State().Left.Y; got != expected {
			t.Fatalf("after %d up ticks paddle Y = %d, expected %d", i, got, expected)
		}
		if i == 100 && g.State().Left.Y != 100 {
			t.Errorf("after 100 up ticks paddle Y = %d, expected 100", g.State().Left.Y)
		}
	}
	if g.State().Right.Y != 200 {
		t.Errorf("right paddle moved to %d; it has no input", g.State().Right.Y)
	}
}

func TestPaddleClamp(t *testing.T) {
	tests := []struct {
		name     string
		startY   int
		in       core.Inputs
		expected int
	}{
		{"up at top", 0, inputs(core.LineMoveUp), 0},
		{"down at bottom", 400, inputs(core.LineMoveDown), 400},
		{"up mid", 10, inputs(core.LineMoveUp), 9},
		{"down mid", 10, inputs(core.LineMoveDown), 11},
		{"up wins", 10, inputs(core.LineMoveUp, core.LineMoveDown), 9},
		{"down when up is blocked", 0, inputs(core.LineMoveUp, core.LineMoveDown), 1},
		{"pause is ignored", 10, inputs(core.LinePause), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ResetState()
			s.Left.Y = tc.startY
			next, _ := Next(s, tc.in)
			if next.Left.Y != tc.expected {
				t.Errorf("paddle Y = %d, expected %d", next.Left.Y, tc.expected)
			}
		})
	}
}

func TestLeftCollisionReadsPreTickPosition(t *testing.T) {
	s := ResetState()
	s.Ball = Ball{X: 61, Y: 240, DirX: DirDecreasing, DirY: DirIncreasing, Color: ColorIdle}

	// Pre-tick X=61 is right of the paddle edge: no hit yet.
	s, ev := Next(s, 0)
	if ev.Has(core.EventHitLeft) || s.Ball.X != 60 || s.Ball.DirX != DirDecreasing {
		t.Fatalf("first tick: events=%b ball=%+v", ev, s.Ball)
	}

	// Pre-tick X=60 touches the edge: the ball still moves left this tick.
	s, ev = Next(s, 0)
	if !ev.Has(core.EventHitLeft) {
		t.Fatalf("second tick should hit the left paddle, events=%b", ev)
	}
	if s.Ball.X != 59 || s.Ball.DirX != DirIncreasing || s.Ball.Color != ColorHitLeft {
		t.Errorf("second tick ball = %+v, expected X=59 dir right red", s.Ball)
	}

	// Overlap persists, so the hit fires again while moving away.
	s, ev = Next(s, 0)
	if !ev.Has(core.EventHitLeft) || s.Ball.X != 60 {
		t.Errorf("third tick: events=%b ball=%+v, expected re-trigger at X=60", ev, s.Ball)
	}
}

func TestRightCollision(t *testing.T) {
	s := ResetState()
	s.Ball = Ball{X: 570, Y: 280, DirX: DirIncreasing, DirY: DirIncreasing, Color: ColorIdle}

	next, ev := Next(s, 0)
	if !ev.Has(core.EventHitRight) {
		t.Fatalf("expected right hit, events=%b", ev)
	}
	if next.Ball.DirX != DirDecreasing || next.Ball.Color != ColorHitRight {
		t.Errorf("ball = %+v, expected dir left blue", next.Ball)
	}

	// Just below the paddle span misses.
	s.Ball.Y = 281
	if _, ev := Next(s, 0); ev.Has(core.EventHitRight) {
		t.Error("ball below the paddle span should not hit")
	}
}

func TestRespawnWinsOverCollision(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		events core.Events
	}{
		{
			name:   "left edge inside paddle span",
			ball:   Ball{X: 0, Y: 230, DirX: DirDecreasing, DirY: DirIncreasing, Color: ColorHitLeft},
			events: core.EventHitLeft | core.EventRespawn,
		},
		{
			name:   "right edge inside paddle span",
			ball:   Ball{X: 630, Y: 220, DirX: DirIncreasing, DirY: DirDecreasing, Color: ColorIdle},
			events: core.EventHitRight | core.EventRespawn,
		},
		{
			name:   "right edge outside paddle span",
			ball:   Ball{X: 630, Y: 20, DirX: DirIncreasing, DirY: DirDecreasing, Color: ColorHitLeft},
			events: core.EventRespawn,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ResetState()
			s.Ball = tc.ball
			next, ev := Next(s, 0)
			if ev != tc.events {
				t.Errorf("events = %b, expected %b", ev, tc.events)
			}
			if diff := deep.Equal(next.Ball, ResetState().Ball); diff != nil {
				t.Errorf("ball not respawned: %v", diff)
			}
		})
	}
}

func TestRespawnLagsEdgeByOneTick(t *testing.T) {
	tests := []struct {
		name  string
		ball  Ball
		edgeX int
	}{
		{"left edge", Ball{X: 1, Y: 20, DirX: DirDecreasing, DirY: DirIncreasing, Color: ColorIdle}, 0},
		{"right edge", Ball{X: 629, Y: 20, DirX: DirIncreasing, DirY: DirIncreasing, Color: ColorIdle}, 630},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ResetState()
			s.Ball = tc.ball

			onEdge, ev := Next(s, 0)
			if ev.Has(core.EventRespawn) {
				t.Fatalf("respawned on the tick that reached the edge: %s", spew.Sdump(onEdge.Ball))
			}
			if onEdge.Ball.X != tc.edgeX || onEdge.Ball.Y != 21 {
				t.Errorf("ball at (%d, %d), expected (%d, 21)", onEdge.Ball.X, onEdge.Ball.Y, tc.edgeX)
			}

			respawned, ev := Next(onEdge, 0)
			if ev != core.EventRespawn {
				t.Errorf("events = %b, expected respawn only", ev)
			}
			if diff := deep.Equal(respawned.Ball, ResetState().Ball); diff != nil {
				t.Errorf("ball not respawned: %v", diff)
			}
		})
	}
}

func TestWallFlip(t *testing.T) {
	tests := []struct {
		name         string
		y            int
		dirY         uint8
		expectedY    int
		expectedDirY uint8
		bounce       bool
	}{
		{"top boundary", 0, DirDecreasing, -1, DirIncreasing, true},
		{"above top", -1, DirIncreasing, 0, DirDecreasing, true},
		{"near top", 1, DirDecreasing, 0, DirDecreasing, false},
		{"bottom boundary", 470, DirIncreasing, 471, DirDecreasing, true},
		{"near bottom", 469, DirIncreasing, 470, DirIncreasing, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ResetState()
			s.Ball.Y = tc.y
			s.Ball.DirY = tc.dirY
			next, ev := Next(s, 0)
			if ev.Has(core.EventWallBounce) != tc.bounce {
				t.Errorf("wall bounce = %v, expected %v", ev.Has(core.EventWallBounce), tc.bounce)
			}
			if next.Ball.Y != tc.expectedY || next.Ball.DirY != tc.expectedDirY {
				t.Errorf("ball y=%d dir=%d, expected y=%d dir=%d", next.Ball.Y, next.Ball.DirY, tc.expectedY, tc.expectedDirY)
			}
		})
	}
}

func TestRegistersStayBounded(t *testing.T) {
	g := New()
	for i := 0; i < 200_000; i++ {
		// Cycle through every input combination, reset only occasionally.
		in := core.Inputs(i % 16)
		if in.Has(core.LineReset) && i%1024 != 0 {
			in.Unset(core.LineReset)
		}
		g.Step(in)

		s := g.State()
		if s.Left.Y < 0 || s.Left.Y > PaddleMaxY {
			t.Fatalf("tick %d: left paddle Y = %d\n%s", i, s.Left.Y, spew.Sdump(s))
		}
		if s.Ball.X < 0 || s.Ball.X > FieldWidth-BallSize {
			t.Fatalf("tick %d: ball X = %d\n%s", i, s.Ball.X, spew.Sdump(s))
		}
		if s.Ball.Y < -1 || s.Ball.Y > FieldHeight-BallSize+1 {
			t.Fatalf("tick %d: ball Y = %d\n%s", i, s.Ball.Y, spew.Sdump(s))
		}
		if s.Ball.DirX > 1 || s.Ball.DirY > 1 {
			t.Fatalf("tick %d: direction flags out of range\n%s", i, spew.Sdump(s))
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() State {
		g := New()
		for i := 0; i < 5000; i++ {
			var in core.Inputs
			if i%7 == 0 {
				in.Set(core.LineMoveDown)
			}
			if i%11 == 0 {
				in.Set(core.LineMoveUp)
			}
			g.Step(in)
		}
		return g.State()
	}

	if diff := deep.Equal(run(), run()); diff != nil {
		t.Errorf("Determinism failed: %v", diff)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New()
	snap := g.Snapshot().(Snapshot)
	g.Step(inputs(core.LineMoveUp))

	if snap.Left.Y != 200 {
		t.Errorf("snapshot changed after Step: left Y = %d", snap.Left.Y)
	}
	if g.State().Left.Y != 199 {
		t.Errorf("game left Y = %d, expected 199", g.State().Left.Y)
	}
	if snap.String() == "" {
		t.Error("Snapshot String() should not be empty")
	}
}
