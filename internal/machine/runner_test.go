package machine

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/games/pong"
	"github.com/vovakirdan/vga-pong/internal/vga"
)

func newPongRunner(ticksPerFrame int, opts ...RunnerOption) *Runner {
	cfg := core.DefaultConfig()
	cfg.TickRate = 1000
	cfg.TicksPerFrame = ticksPerFrame
	return NewRunner(New(pong.New(), nil), cfg, nil, opts...)
}

func TestRunnerStepPublishesStatus(t *testing.T) {
	r := newPongRunner(50)
	if r.Status().Stats.SystemTicks != 0 {
		t.Fatal("initial status should be at power-on")
	}

	r.Step()
	st := r.Status()
	if st.Stats.SystemTicks != 50 {
		t.Errorf("SystemTicks = %d, expected 50", st.Stats.SystemTicks)
	}
	snap := st.Design.(pong.Snapshot)
	if snap.Ball.X != 365 || snap.Ball.Y != 285 {
		t.Errorf("ball = (%d, %d), expected (365, 285)", snap.Ball.X, snap.Ball.Y)
	}
}

func TestRunnerInputsAreLatched(t *testing.T) {
	r := newPongRunner(10)

	var in core.Inputs
	in.Set(core.LineMoveUp)
	r.SetInputs(in)
	r.Step()

	snap := r.Status().Design.(pong.Snapshot)
	if snap.Left.Y != pong.PaddleCenterY-10 {
		t.Errorf("left paddle y = %d, expected %d", snap.Left.Y, pong.PaddleCenterY-10)
	}
	if r.Inputs() != in {
		t.Errorf("Inputs() = %s, expected %s", r.Inputs(), in)
	}
}

func TestRunnerPauseFreezesHostClock(t *testing.T) {
	r := newPongRunner(10)
	r.Pause(true)
	r.Step()
	if !r.Paused() || r.Status().Stats.SystemTicks != 0 {
		t.Errorf("paused runner advanced to %d ticks", r.Status().Stats.SystemTicks)
	}

	// Single-stepping still works while frozen.
	r.Advance(1)
	if r.Status().Stats.SystemTicks != 1 {
		t.Errorf("Advance(1) while paused gave %d ticks", r.Status().Stats.SystemTicks)
	}

	r.Pause(false)
	r.Step()
	if r.Status().Stats.SystemTicks != 11 {
		t.Errorf("SystemTicks = %d, expected 11", r.Status().Stats.SystemTicks)
	}
}

func TestRunnerTicksPerFrameFloor(t *testing.T) {
	r := newPongRunner(0)
	if r.TicksPerFrame() != 1 {
		t.Errorf("TicksPerFrame() = %d, expected 1", r.TicksPerFrame())
	}
	r.SetTicksPerFrame(-5)
	if r.TicksPerFrame() != 1 {
		t.Errorf("TicksPerFrame() = %d after negative set, expected 1", r.TicksPerFrame())
	}
}

func TestRunnerFrames(t *testing.T) {
	r := newPongRunner(1, WithFrames(1))
	if r.Frames() == nil {
		t.Fatal("Frames() is nil with WithFrames")
	}

	// Two pictures complete after the first lock; one fits in the buffer
	// and the other is dropped.
	r.Advance(2*vga.FrameSystemTicks + vga.PixelDivide)
	select {
	case img := <-r.Frames():
		if img.Bounds().Dx() != vga.HActivePixels {
			t.Errorf("picture width = %d", img.Bounds().Dx())
		}
	default:
		t.Fatal("expected a picture on the channel")
	}
	if r.Dropped() != 1 {
		t.Errorf("Dropped() = %d, expected 1", r.Dropped())
	}
}

func TestRunnerWithoutFrames(t *testing.T) {
	r := newPongRunner(1)
	if r.Frames() != nil {
		t.Error("Frames() should be nil without WithFrames")
	}
}

func TestRunnerTickRateBounds(t *testing.T) {
	tests := []struct {
		rate     int
		expected int
	}{
		{0, core.DefaultConfig().TickRate},
		{-5, core.DefaultConfig().TickRate},
		{30, 30},
		{core.MaxTickRate, core.MaxTickRate},
		{2_000_000_000, core.MaxTickRate},
	}

	for _, tc := range tests {
		cfg := core.DefaultConfig()
		cfg.TickRate = tc.rate
		r := NewRunner(New(pong.New(), nil), cfg, nil)
		if got := r.TickRate(); got != tc.expected {
			t.Errorf("TickRate() for %d = %d, expected %d", tc.rate, got, tc.expected)
		}
	}
}

func TestRunnerRunWithHugeTickRate(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.TickRate = 2_000_000_000
	r := NewRunner(New(pong.New(), nil), cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Errorf("Run() = %v, expected nil", err)
	}
}

func TestRunnerRunStopsOnCancel(t *testing.T) {
	r := newPongRunner(100)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for r.Status().Stats.SystemTicks == 0 {
		select {
		case <-deadline:
			t.Fatal("runner never ticked")
		case <-time.After(time.Millisecond):
		}
	}

	// Readers on this goroutine see whole batches only.
	if n := r.Status().Stats.SystemTicks; n%100 != 0 {
		t.Errorf("observed a partial batch: %d ticks", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
